package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of raw dataset bytes. Two inputs with the
// same fingerprint are treated as the same dataset for memoization purposes.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// FingerprintString computes the xxHash64 of a raw dataset string without
// copying it to a byte slice.
func FingerprintString(data string) uint64 {
	return xxhash.Sum64String(data)
}
