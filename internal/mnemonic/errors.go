package mnemonic

import (
	"errors"
	"fmt"

	"github.com/Klingon-tech/s33d/internal/wordlist"
	"github.com/Klingon-tech/s33d/pkg/crypto"
)

var (
	// ErrInvalidStrength is returned for entropy sizes outside 128..256 bits
	// in 32-bit steps.
	ErrInvalidStrength = errors.New("invalid entropy strength")

	// ErrEntropySourceUnavailable is returned when the random source fails.
	ErrEntropySourceUnavailable = crypto.ErrEntropySourceUnavailable

	// ErrUnsupportedLanguage is returned for unknown language tags.
	ErrUnsupportedLanguage = wordlist.ErrUnsupportedLanguage

	// ErrInvalidWordCount is returned when a phrase is not 12, 15, 18, 21
	// or 24 words long.
	ErrInvalidWordCount = errors.New("invalid word count")

	// ErrUnknownWord is matched by every *UnknownWordError.
	ErrUnknownWord = errors.New("unknown word")

	// ErrChecksumMismatch is returned when the checksum bits carried by a
	// phrase disagree with the digest of its entropy.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// UnknownWordError reports a phrase word missing from the wordlist.
// Position is 1-based.
type UnknownWordError struct {
	Position int
	Word     string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("unknown word at position %d: %q", e.Position, e.Word)
}

// Unwrap lets errors.Is match ErrUnknownWord.
func (e *UnknownWordError) Unwrap() error {
	return ErrUnknownWord
}
