package wordlist

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// ErrUnsupportedLanguage is returned for language tags without a wordlist.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Language is a canonical wordlist language tag.
type Language string

const (
	English            Language = "english"
	ChineseSimplified  Language = "chinese-simplified"
	ChineseTraditional Language = "chinese-traditional"
	French             Language = "french"
	Italian            Language = "italian"
	Japanese           Language = "japanese"
	Korean             Language = "korean"
	Spanish            Language = "spanish"
	Czech              Language = "czech"
)

// languages is the display order.
var languages = []Language{
	English,
	ChineseSimplified,
	ChineseTraditional,
	French,
	Italian,
	Japanese,
	Korean,
	Spanish,
	Czech,
}

var aliases = map[string]Language{
	"en":    English,
	"cn":    ChineseSimplified,
	"zh-cn": ChineseSimplified,
	"tw":    ChineseTraditional,
	"zh-tw": ChineseTraditional,
	"fr":    French,
	"it":    Italian,
	"ja":    Japanese,
	"jp":    Japanese,
	"ko":    Korean,
	"kr":    Korean,
	"es":    Spanish,
	"cs":    Czech,
}

// sourceWords returns the upstream BIP-39 word data for lang. The upstream
// package verifies each list's CRC32 against the published files at init.
func sourceWords(lang Language) ([]string, bool) {
	switch lang {
	case English:
		return wordlists.English, true
	case ChineseSimplified:
		return wordlists.ChineseSimplified, true
	case ChineseTraditional:
		return wordlists.ChineseTraditional, true
	case French:
		return wordlists.French, true
	case Italian:
		return wordlists.Italian, true
	case Japanese:
		return wordlists.Japanese, true
	case Korean:
		return wordlists.Korean, true
	case Spanish:
		return wordlists.Spanish, true
	case Czech:
		return wordlists.Czech, true
	}
	return nil, false
}

// ParseLanguage resolves a canonical tag or short alias ("en", "ja", ...)
// case-insensitively.
func ParseLanguage(tag string) (Language, error) {
	t := strings.ToLower(strings.TrimSpace(tag))
	if lang, ok := aliases[t]; ok {
		return lang, nil
	}
	if _, ok := sourceWords(Language(t)); ok {
		return Language(t), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, tag)
}

// SupportedLanguages returns every language with a wordlist, in display order.
func SupportedLanguages() []Language {
	return slices.Clone(languages)
}

// Aliases returns the short aliases accepted for lang, sorted.
func Aliases(lang Language) []string {
	var out []string
	for alias, l := range aliases {
		if l == lang {
			out = append(out, alias)
		}
	}
	slices.Sort(out)
	return out
}
