package format

import (
	"path/filepath"
	"strings"
)

// CompressionType identifies the compression applied to a dataset archive.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionGzip CompressionType = 0x5 // CompressionGzip represents gzip compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionGzip:
		return "Gzip"
	default:
		return "Unknown"
	}
}

// compressionExtensions maps dataset file extensions to compression types.
var compressionExtensions = map[string]CompressionType{
	".zst": CompressionZstd,
	".s2":  CompressionS2,
	".lz4": CompressionLZ4,
	".gz":  CompressionGzip,
}

// DetectCompression infers the compression type of a dataset file from its
// extension. Files without a recognized compression suffix (plain .csv, .txt,
// .tsv and so on) are reported as CompressionNone.
func DetectCompression(filename string) CompressionType {
	ext := strings.ToLower(filepath.Ext(filename))
	if ct, ok := compressionExtensions[ext]; ok {
		return ct
	}

	return CompressionNone
}
