package mnemonic

import (
	"encoding/hex"
	"fmt"
	"io"

	klog "github.com/Klingon-tech/s33d/internal/log"
	"github.com/Klingon-tech/s33d/pkg/crypto"
)

// Entropy limits in bits.
const (
	MinEntropyBits  = 128
	MaxEntropyBits  = 256
	EntropyBitsStep = 32
)

// Bits per word index.
const wordBits = 11

// Entropy is the secret random input of a mnemonic. The owner must call
// Wipe once it is no longer needed.
type Entropy []byte

// Bits returns the entropy length in bits.
func (e Entropy) Bits() int {
	return len(e) * 8
}

// Hex returns the lowercase hex encoding with no prefix or separators.
func (e Entropy) Hex() string {
	return hex.EncodeToString(e)
}

// String describes the entropy without revealing it.
func (e Entropy) String() string {
	return fmt.Sprintf("entropy(%d bits)", e.Bits())
}

// Wipe zeroes the entropy in place.
func (e Entropy) Wipe() {
	crypto.Wipe(e)
}

// ValidEntropyBits reports whether bits is a BIP-39 entropy size.
func ValidEntropyBits(bits int) bool {
	return bits >= MinEntropyBits && bits <= MaxEntropyBits && bits%EntropyBitsStep == 0
}

// ValidEntropyBytes reports whether n bytes is a BIP-39 entropy size.
func ValidEntropyBytes(n int) bool {
	return ValidEntropyBits(n * 8)
}

// WordCount returns the number of words produced from entropyBits of
// entropy, or 0 when the size is invalid.
func WordCount(entropyBits int) int {
	if !ValidEntropyBits(entropyBits) {
		return 0
	}
	return (entropyBits + crypto.ChecksumBitCount(entropyBits/8)) / wordBits
}

// EntropyBitsForWords returns the entropy size a phrase of n words
// carries, or 0 when n is not a valid word count.
func EntropyBitsForWords(n int) int {
	if n < 12 || n > 24 || n%3 != 0 {
		return 0
	}
	// total = ENT + ENT/32 = 33*ENT/32
	return n * wordBits * 32 / 33
}

// NewEntropy draws byteLength bytes from src (crypto.DefaultSource when nil).
// The length is checked before any randomness is consumed.
func NewEntropy(src io.Reader, byteLength int) (Entropy, error) {
	if !ValidEntropyBytes(byteLength) {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidStrength, byteLength)
	}
	b, err := crypto.RandomBytes(src, byteLength)
	if err != nil {
		klog.Entropy.Error().Err(err).Int("bytes", byteLength).Msg("Entropy source failed")
		return nil, err
	}

	klog.Entropy.Debug().Int("bits", byteLength*8).Msg("Entropy drawn")
	return Entropy(b), nil
}

// NewEntropyBits is NewEntropy with the size given in bits.
func NewEntropyBits(src io.Reader, bits int) (Entropy, error) {
	if !ValidEntropyBits(bits) {
		return nil, fmt.Errorf("%w: %d bits", ErrInvalidStrength, bits)
	}
	return NewEntropy(src, bits/8)
}
