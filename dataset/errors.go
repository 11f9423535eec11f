package dataset

import "fmt"

// ErrorKind classifies why an input batch was rejected.
type ErrorKind uint8

const (
	// KindBadNumber means a field failed to parse as a finite real number.
	KindBadNumber ErrorKind = iota + 1
	// KindColumnMismatch means a row did not yield exactly two fields, or the
	// time and concentration columns have unequal lengths.
	KindColumnMismatch
	// KindNegativeTime means a row carries a time value below zero.
	KindNegativeTime
)

func (k ErrorKind) String() string {
	switch k {
	case KindBadNumber:
		return "bad number"
	case KindColumnMismatch:
		return "column mismatch"
	case KindNegativeTime:
		return "negative time"
	default:
		return "unknown"
	}
}

// ParseError reports the first defect found in a raw input batch.
//
// A single malformed row indicates a structural input error (wrong delimiter,
// wrong column count), so the whole batch is rejected rather than partially
// accepted; the caller is expected to surface Row and Text verbatim so the
// user can correct and resubmit the input.
type ParseError struct {
	// Row is the 1-based row number of the offending input, 0 when the
	// defect is not tied to a single row (unequal column lengths).
	Row int
	// Text is the raw offending text.
	Text string
	// Kind classifies the defect.
	Kind ErrorKind
	// Err is the underlying cause, if any.
	Err error
}

func (e *ParseError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Text)
	}

	if e.Err != nil {
		return fmt.Sprintf("row %d: %s in %q: %v", e.Row, e.Kind, e.Text, e.Err)
	}

	return fmt.Sprintf("row %d: %s in %q", e.Row, e.Kind, e.Text)
}

// Unwrap returns the underlying cause, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}
