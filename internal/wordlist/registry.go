package wordlist

import (
	"fmt"
	"slices"
	"sync"

	klog "github.com/Klingon-tech/s33d/internal/log"
)

// Registry maps languages to their wordlists.
type Registry struct {
	lists map[Language]*Wordlist
	order []Language
}

// NewRegistry builds and validates the wordlists for langs. With no
// arguments every supported language is loaded.
func NewRegistry(langs ...Language) (*Registry, error) {
	defer klog.Benchmark("wordlist.NewRegistry")()

	if len(langs) == 0 {
		langs = languages
	}

	r := &Registry{
		lists: make(map[Language]*Wordlist, len(langs)),
		order: make([]Language, 0, len(langs)),
	}
	for _, lang := range langs {
		if _, seen := r.lists[lang]; seen {
			continue
		}
		words, ok := sourceWords(lang)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
		}
		wl, err := newWordlist(lang, words)
		if err != nil {
			return nil, err
		}
		r.lists[lang] = wl
		r.order = append(r.order, lang)
	}

	klog.Wordlist.Debug().
		Int("languages", len(r.order)).
		Msg("Wordlists loaded")

	return r, nil
}

// Default returns the process-wide registry holding every supported
// language. It is built on first use.
var Default = sync.OnceValues(func() (*Registry, error) {
	return NewRegistry()
})

// Load returns the wordlist for a language tag or alias.
func (r *Registry) Load(tag string) (*Wordlist, error) {
	lang, err := ParseLanguage(tag)
	if err != nil {
		return nil, err
	}
	wl, ok := r.lists[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q not loaded", ErrUnsupportedLanguage, lang)
	}
	return wl, nil
}

// Languages returns the registry's languages in load order.
func (r *Registry) Languages() []Language {
	return slices.Clone(r.order)
}
