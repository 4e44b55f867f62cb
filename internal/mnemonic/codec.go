package mnemonic

import (
	"crypto/subtle"
	"fmt"

	"github.com/Klingon-tech/s33d/internal/wordlist"
	"github.com/Klingon-tech/s33d/pkg/crypto"
)

// EncodeIndices converts entropy into BIP-39 word indices: the entropy
// bits followed by the checksum bits, split into 11-bit groups.
func EncodeIndices(entropy []byte) ([]uint16, error) {
	if !ValidEntropyBytes(len(entropy)) {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidStrength, len(entropy))
	}

	entBits := len(entropy) * 8
	cs, csBits := crypto.ChecksumBits(entropy)
	total := entBits + csBits
	indices := make([]uint16, total/wordBits)

	err := crypto.WithSecret(bitBufferLen(total), func(buf []byte) error {
		copy(buf, entropy)
		writeBits(buf, entBits, csBits, cs)
		for i := range indices {
			indices[i] = uint16(readBits(buf, i*wordBits, wordBits))
		}
		return nil
	})
	if err != nil {
		crypto.Wipe(indices)
		return nil, err
	}
	return indices, nil
}

// DecodeIndices rebuilds entropy from word indices and verifies the
// checksum in constant time. The returned entropy belongs to the caller.
func DecodeIndices(indices []uint16) (Entropy, error) {
	n := len(indices)
	entBits := EntropyBitsForWords(n)
	if entBits == 0 {
		return nil, fmt.Errorf("%w: got %d, want 12, 15, 18, 21 or 24", ErrInvalidWordCount, n)
	}
	csBits := crypto.ChecksumBitCount(entBits / 8)

	var entropy Entropy
	err := crypto.WithSecret(bitBufferLen(n*wordBits), func(buf []byte) error {
		for i, idx := range indices {
			if int(idx) >= wordlist.Size {
				return fmt.Errorf("%w: index %d at position %d", ErrUnknownWord, idx, i+1)
			}
			writeBits(buf, i*wordBits, wordBits, uint32(idx))
		}

		supplied := readBits(buf, entBits, csBits)
		entropy = make(Entropy, entBits/8)
		copy(entropy, buf)

		want, _ := crypto.ChecksumBits(entropy)
		if subtle.ConstantTimeEq(int32(supplied), int32(want)) != 1 {
			entropy.Wipe()
			entropy = nil
			return ErrChecksumMismatch
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entropy, nil
}
