package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/reactionlab/ratelaw/internal/options"
)

// ParseConfig holds configuration for parsing raw dataset text.
type ParseConfig struct {
	// Delimiter is the field separator. Zero means any run of whitespace.
	Delimiter rune
	// Comment marks lines to skip when it is the first non-blank character.
	// Zero disables comment handling. Defaults to '#'.
	Comment rune
	// Header is the number of leading lines to skip before data rows.
	Header int
}

// defaultParseConfig returns the default config (whitespace fields, '#'
// comments, no header).
func defaultParseConfig() ParseConfig {
	return ParseConfig{Delimiter: 0, Comment: '#', Header: 0}
}

// ParseOption is a functional option for ParseConfig.
type ParseOption = options.Option[*ParseConfig]

// WithDelimiter sets the field delimiter, e.g. ',' for CSV or '\t' for TSV.
func WithDelimiter(d rune) ParseOption {
	return options.NoError(func(cfg *ParseConfig) {
		cfg.Delimiter = d
	})
}

// WithComment sets the comment marker. Zero disables comment handling.
func WithComment(c rune) ParseOption {
	return options.NoError(func(cfg *ParseConfig) {
		cfg.Comment = c
	})
}

// WithHeader sets the number of leading header lines to skip.
func WithHeader(lines int) ParseOption {
	return options.NoError(func(cfg *ParseConfig) {
		cfg.Header = lines
	})
}

// Parse converts raw line-oriented text into a time-ordered SampleSet.
//
// Each data line must yield exactly two fields, time then concentration, both
// parsing as finite real numbers with time >= 0. Blank lines and comment
// lines are skipped. The first defective line rejects the whole batch with a
// *ParseError carrying its 1-based row number and raw text; there is no
// partial acceptance.
//
// Accepted samples are stably sorted ascending by time. Repeated time values
// are kept as-is.
//
// Example:
//
//	set, err := dataset.Parse("0 1.0\n10 0.82\n20 0.67\n")
//	if err != nil {
//	    var perr *dataset.ParseError
//	    if errors.As(err, &perr) {
//	        fmt.Printf("bad input on row %d: %s\n", perr.Row, perr.Text)
//	    }
//	    return err
//	}
func Parse(text string, opts ...ParseOption) (SampleSet, error) {
	cfg := defaultParseConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, fmt.Errorf("invalid parse option: %w", err)
	}

	lines := strings.Split(text, "\n")
	set := make(SampleSet, 0, len(lines))

	for i, line := range lines {
		if i < cfg.Header {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if cfg.Comment != 0 && strings.HasPrefix(line, string(cfg.Comment)) {
			continue
		}

		sample, err := parseRow(i+1, line, cfg.Delimiter)
		if err != nil {
			return nil, err
		}

		set = append(set, sample)
	}

	set.sortByTime()

	return set, nil
}

// FromPairs converts raw (time, concentration) string pairs into a SampleSet.
// This is the entry point for presentation layers that already split the
// input into fields (e.g. a two-column table widget).
func FromPairs(pairs [][2]string) (SampleSet, error) {
	set := make(SampleSet, 0, len(pairs))

	for i, pair := range pairs {
		row := i + 1
		raw := pair[0] + " " + pair[1]

		t, err := parseField(row, raw, pair[0])
		if err != nil {
			return nil, err
		}
		c, err := parseField(row, raw, pair[1])
		if err != nil {
			return nil, err
		}
		if t < 0 {
			return nil, &ParseError{Row: row, Text: raw, Kind: KindNegativeTime}
		}

		set = append(set, Sample{Time: t, Conc: c})
	}

	set.sortByTime()

	return set, nil
}

// FromColumns builds a SampleSet from parallel numeric columns.
//
// Unequal column lengths reject the input with a column-mismatch *ParseError.
// Non-finite values and negative times are rejected with the 1-based index of
// the offending pair.
func FromColumns(times, concs []float64) (SampleSet, error) {
	if len(times) != len(concs) {
		return nil, &ParseError{
			Kind: KindColumnMismatch,
			Text: fmt.Sprintf("%d time values vs %d concentration values", len(times), len(concs)),
		}
	}

	set := make(SampleSet, 0, len(times))

	for i := range times {
		row := i + 1
		raw := fmt.Sprintf("%g %g", times[i], concs[i])

		if !isFinite(times[i]) || !isFinite(concs[i]) {
			return nil, &ParseError{Row: row, Text: raw, Kind: KindBadNumber}
		}
		if times[i] < 0 {
			return nil, &ParseError{Row: row, Text: raw, Kind: KindNegativeTime}
		}

		set = append(set, Sample{Time: times[i], Conc: concs[i]})
	}

	set.sortByTime()

	return set, nil
}

// parseRow parses one data line into a sample.
func parseRow(row int, line string, delimiter rune) (Sample, error) {
	fields := splitFields(line, delimiter)
	if len(fields) != 2 {
		return Sample{}, &ParseError{Row: row, Text: line, Kind: KindColumnMismatch}
	}

	t, err := parseField(row, line, fields[0])
	if err != nil {
		return Sample{}, err
	}
	c, err := parseField(row, line, fields[1])
	if err != nil {
		return Sample{}, err
	}
	if t < 0 {
		return Sample{}, &ParseError{Row: row, Text: line, Kind: KindNegativeTime}
	}

	return Sample{Time: t, Conc: c}, nil
}

// splitFields splits a line on the configured delimiter. A zero delimiter
// splits on any run of whitespace.
func splitFields(line string, delimiter rune) []string {
	if delimiter == 0 {
		return strings.Fields(line)
	}

	fields := strings.Split(line, string(delimiter))
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}

	return fields
}

// parseField parses a single numeric field, requiring a finite value.
func parseField(row int, raw, field string) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, &ParseError{Row: row, Text: raw, Kind: KindBadNumber, Err: err}
	}
	if !isFinite(v) {
		return 0, &ParseError{Row: row, Text: raw, Kind: KindBadNumber}
	}

	return v, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
