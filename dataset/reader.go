package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reactionlab/ratelaw/compress"
	"github.com/reactionlab/ratelaw/format"
)

// ReadFile loads a dataset file and parses it into a SampleSet.
//
// Compressed archives are decompressed transparently based on the file
// extension (.zst, .s2, .lz4, .gz); anything else is read as plain text.
// The field delimiter defaults from the inner extension (.csv is
// comma-separated, .tsv is tab-separated, everything else is whitespace)
// and can be overridden with WithDelimiter.
//
// Example:
//
//	set, err := dataset.ReadFile("run42.csv.zst")
//	if err != nil {
//	    return err
//	}
func ReadFile(path string, opts ...ParseOption) (SampleSet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	compression := format.DetectCompression(path)
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	text, err := codec.Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress dataset file %q: %w", path, err)
	}

	// Caller options are applied after the extension default, so an explicit
	// WithDelimiter always wins.
	if d, ok := delimiterForFile(path, compression); ok {
		opts = append([]ParseOption{WithDelimiter(d)}, opts...)
	}

	return Parse(string(text), opts...)
}

// delimiterForFile infers the field delimiter from the file name, looking at
// the extension underneath any compression suffix.
func delimiterForFile(path string, compression format.CompressionType) (rune, bool) {
	name := path
	if compression != format.CompressionNone {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return ',', true
	case ".tsv":
		return '\t', true
	default:
		return 0, false
	}
}
