package util

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Checksum returns the hex BLAKE2b-256 digest of payload.
func Checksum(payload []byte) string {
	sum := blake2b.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

// VerifyChecksum reports whether sum matches payload. An empty sum is
// accepted so rows written before checksums existed still load.
func VerifyChecksum(payload []byte, sum string) bool {
	if sum == "" {
		return true
	}
	return Checksum(payload) == sum
}
