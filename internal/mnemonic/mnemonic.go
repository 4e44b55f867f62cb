// Package mnemonic implements BIP-39 mnemonic phrases: converting entropy
// to words and back with checksum verification, and deriving seeds.
package mnemonic

import (
	"fmt"
	"io"
	"slices"
	"strings"

	klog "github.com/Klingon-tech/s33d/internal/log"
	"github.com/Klingon-tech/s33d/internal/wordlist"
	"github.com/Klingon-tech/s33d/pkg/crypto"
)

// Mnemonic is an ordered BIP-39 phrase in a single language.
type Mnemonic struct {
	words []string
	lang  wordlist.Language
}

// Words returns a copy of the phrase words in order.
func (m Mnemonic) Words() []string {
	return slices.Clone(m.words)
}

// Len returns the number of words.
func (m Mnemonic) Len() int {
	return len(m.words)
}

// Language returns the wordlist language of the phrase.
func (m Mnemonic) Language() wordlist.Language {
	return m.lang
}

// String joins the words with a single ASCII space.
func (m Mnemonic) String() string {
	return strings.Join(m.words, " ")
}

// IsZero reports whether m holds no phrase.
func (m Mnemonic) IsZero() bool {
	return len(m.words) == 0
}

// FromEntropy encodes entropy as a phrase using wl.
func FromEntropy(entropy []byte, wl *wordlist.Wordlist) (Mnemonic, error) {
	indices, err := EncodeIndices(entropy)
	if err != nil {
		return Mnemonic{}, err
	}
	defer crypto.Wipe(indices)

	words := make([]string, len(indices))
	for i, idx := range indices {
		words[i] = wl.WordAt(idx)
	}
	return Mnemonic{words: words, lang: wl.Language()}, nil
}

// New draws bits of entropy from src and encodes it with wl. The entropy
// is wiped before returning.
func New(src io.Reader, bits int, wl *wordlist.Wordlist) (Mnemonic, error) {
	entropy, err := NewEntropyBits(src, bits)
	if err != nil {
		return Mnemonic{}, err
	}
	defer entropy.Wipe()

	return FromEntropy(entropy, wl)
}

// Decode recovers the entropy behind words. The word count is checked
// first, then every word is looked up, then the checksum is verified.
func Decode(words []string, wl *wordlist.Wordlist) (Entropy, error) {
	if EntropyBitsForWords(len(words)) == 0 {
		return nil, fmt.Errorf("%w: got %d, want 12, 15, 18, 21 or 24", ErrInvalidWordCount, len(words))
	}

	indices := make([]uint16, len(words))
	defer crypto.Wipe(indices)

	for i, w := range words {
		idx, ok := wl.IndexOf(w)
		if !ok {
			klog.Mnemonic.Debug().Int("position", i+1).Str("language", string(wl.Language())).Msg("Unknown word")
			return nil, &UnknownWordError{Position: i + 1, Word: w}
		}
		indices[i] = idx
	}

	entropy, err := DecodeIndices(indices)
	if err != nil {
		klog.Mnemonic.Debug().Err(err).Int("words", len(words)).Msg("Phrase rejected")
		return nil, err
	}
	return entropy, nil
}

// DecodeString is Decode on a whitespace separated phrase.
func DecodeString(phrase string, wl *wordlist.Wordlist) (Entropy, error) {
	return Decode(strings.Fields(phrase), wl)
}

// Validate reports whether words form a valid phrase in wl.
func Validate(words []string, wl *wordlist.Wordlist) error {
	entropy, err := Decode(words, wl)
	if err != nil {
		return err
	}
	entropy.Wipe()
	return nil
}

// Parse validates phrase and returns it with every word in the
// wordlist's canonical spelling.
func Parse(phrase string, wl *wordlist.Wordlist) (Mnemonic, error) {
	entropy, err := DecodeString(phrase, wl)
	if err != nil {
		return Mnemonic{}, err
	}
	defer entropy.Wipe()

	return FromEntropy(entropy, wl)
}

// SupportedLanguages lists every language a Codec can encode to.
func SupportedLanguages() []wordlist.Language {
	return wordlist.SupportedLanguages()
}

// Codec binds encoding and decoding to a wordlist registry and an
// entropy source. The zero value uses wordlist.Default and
// crypto.DefaultSource.
type Codec struct {
	Registry *wordlist.Registry
	Source   io.Reader
}

// Encode generates a fresh phrase of strengthBits entropy in language.
func (c Codec) Encode(strengthBits int, language string) (Mnemonic, error) {
	if !ValidEntropyBits(strengthBits) {
		return Mnemonic{}, fmt.Errorf("%w: %d bits", ErrInvalidStrength, strengthBits)
	}
	wl, err := c.load(language)
	if err != nil {
		return Mnemonic{}, err
	}
	return New(c.Source, strengthBits, wl)
}

// Decode recovers the entropy of words in language.
func (c Codec) Decode(words []string, language string) (Entropy, error) {
	wl, err := c.load(language)
	if err != nil {
		return nil, err
	}
	return Decode(words, wl)
}

func (c Codec) load(language string) (*wordlist.Wordlist, error) {
	reg := c.Registry
	if reg == nil {
		var err error
		if reg, err = wordlist.Default(); err != nil {
			return nil, fmt.Errorf("load wordlists: %w", err)
		}
	}
	return reg.Load(language)
}
