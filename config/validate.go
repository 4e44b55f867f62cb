package config

import (
	"fmt"

	klog "github.com/Klingon-tech/s33d/internal/log"
	"github.com/Klingon-tech/s33d/internal/mnemonic"
	"github.com/Klingon-tech/s33d/internal/wordlist"
)

// Validate checks the config for operator mistakes. The language is
// rewritten to its canonical name.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	switch {
	case cfg.Strength != 0 && cfg.Words != 0:
		return fmt.Errorf("strength and words are mutually exclusive")
	case cfg.Words != 0:
		if mnemonic.EntropyBitsForWords(cfg.Words) == 0 {
			return fmt.Errorf("words must be 12, 15, 18, 21 or 24, got %d", cfg.Words)
		}
	case !mnemonic.ValidEntropyBits(cfg.Strength):
		return fmt.Errorf("%w: strength must be 128, 160, 192, 224 or 256, got %d",
			mnemonic.ErrInvalidStrength, cfg.Strength)
	}

	lang, err := wordlist.ParseLanguage(cfg.Language)
	if err != nil {
		return fmt.Errorf("language: %w (see --list)", err)
	}
	cfg.Language = string(lang)

	if cfg.Log.Level == "" {
		cfg.Log.Level = klog.DefaultLevel
	}
	if !klog.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn or error")
	}

	return nil
}
