// Package wordlist holds the BIP-39 word tables, one per supported
// language, and the registry that hands them out.
//
// Tables are built once and never mutated, so a *Wordlist and a *Registry
// can be shared freely between goroutines.
package wordlist

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Size is the number of words in every BIP-39 wordlist.
const Size = 2048

// Normalize returns the lookup key for word: surrounding whitespace trimmed,
// lowercased, then converted to Unicode NFKD. Wordlists index their words
// under the same key, so lookups are exact matches after normalization.
func Normalize(word string) string {
	return norm.NFKD.String(strings.ToLower(strings.TrimSpace(word)))
}

// Wordlist is an immutable 2048-word table with its inverse index.
type Wordlist struct {
	lang  Language
	words []string
	index map[string]uint16
}

func newWordlist(lang Language, words []string) (*Wordlist, error) {
	if len(words) != Size {
		return nil, fmt.Errorf("%s wordlist: expected %d words, got %d", lang, Size, len(words))
	}

	wl := &Wordlist{
		lang:  lang,
		words: slices.Clone(words),
		index: make(map[string]uint16, Size),
	}
	for i, w := range wl.words {
		key := Normalize(w)
		if key == "" {
			return nil, fmt.Errorf("%s wordlist: empty word at index %d", lang, i)
		}
		if prev, dup := wl.index[key]; dup {
			return nil, fmt.Errorf("%s wordlist: duplicate word %q at index %d and %d", lang, w, prev, i)
		}
		wl.index[key] = uint16(i)
	}
	return wl, nil
}

// Language returns the table's language tag.
func (w *Wordlist) Language() Language {
	return w.lang
}

// Len returns the number of words (always Size).
func (w *Wordlist) Len() int {
	return len(w.words)
}

// IndexOf returns the index of word after normalization.
func (w *Wordlist) IndexOf(word string) (uint16, bool) {
	i, ok := w.index[Normalize(word)]
	return i, ok
}

// WordAt returns the word at index i, or "" when i is out of range.
func (w *Wordlist) WordAt(i uint16) string {
	if int(i) >= len(w.words) {
		return ""
	}
	return w.words[i]
}
