// Package crypto provides the cryptographic primitives behind s33d:
// the BIP-39 checksum digest, OS-backed entropy and secret wiping.
package crypto

import (
	"crypto/sha256"
	"encoding/binary"
)

// HashSize is the length of a digest in bytes.
const HashSize = sha256.Size

// Hash computes the SHA-256 digest of data.
func Hash(data []byte) [HashSize]byte {
	return sha256.Sum256(data)
}

// ChecksumBitCount returns the number of checksum bits BIP-39 assigns to an
// entropy of n bytes (one bit per 32 bits of entropy).
func ChecksumBitCount(n int) int {
	return n * 8 / 32
}

// ChecksumBits returns the leading ChecksumBitCount(len(entropy)) bits of
// Hash(entropy), right-aligned in value.
//
// Entropy longer than 1024 bits would need more than 32 checksum bits and
// is truncated to the first 32; BIP-39 entropy never exceeds 256 bits.
func ChecksumBits(entropy []byte) (value uint32, count int) {
	count = ChecksumBitCount(len(entropy))
	if count == 0 {
		return 0, 0
	}
	if count > 32 {
		count = 32
	}

	digest := Hash(entropy)
	defer Wipe(digest[:])

	lead := binary.BigEndian.Uint32(digest[:4])
	return lead >> (32 - uint(count)), count
}
