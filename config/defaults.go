package config

import (
	klog "github.com/Klingon-tech/s33d/internal/log"
	"github.com/Klingon-tech/s33d/internal/wordlist"
)

// DefaultStrength is the entropy size used when neither strength nor words
// is configured.
const DefaultStrength = 128

// Default returns the built-in configuration: a 12-word English phrase
// with the standard panels and warn-level logging.
func Default() *Config {
	return &Config{
		Strength: DefaultStrength,
		Language: string(wordlist.English),
		Log: LogConfig{
			Level: klog.DefaultLevel,
			JSON:  false,
		},
	}
}
