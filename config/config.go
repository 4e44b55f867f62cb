// Package config handles s33d configuration.
//
// Settings are layered, lowest precedence first:
//   - Built-in defaults
//   - The s33d.conf file (optional, never created by s33d)
//   - Command-line flags
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/Klingon-tech/s33d/internal/mnemonic"
)

// Config holds the settings for one s33d run.
type Config struct {
	// Phrase size. At most one of Strength and Words is non-zero after
	// layering; a layer that sets one clears the other.
	Strength int `conf:"strength"` // entropy bits
	Words    int `conf:"words"`    // word count

	Language string `conf:"language"`

	// What gets printed
	Output OutputConfig

	// Logging
	Log LogConfig
}

// OutputConfig selects the panels and artifacts printed after generation.
type OutputConfig struct {
	Details    bool `conf:"details"`
	Clean      bool `conf:"clean"`
	QR         bool `conf:"qr"`
	Hex        bool `conf:"hex"`
	Seed       bool `conf:"seed"`
	Passphrase bool `conf:"passphrase"` // prompt for a BIP-39 passphrase
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// EntropyBits returns the entropy size the config asks for.
func (c *Config) EntropyBits() int {
	if c.Words != 0 {
		return mnemonic.EntropyBitsForWords(c.Words)
	}
	return c.Strength
}

// WordCount returns the phrase length the config asks for.
func (c *Config) WordCount() int {
	return mnemonic.WordCount(c.EntropyBits())
}

// DefaultDir returns the platform-specific s33d directory.
//
//	Linux:   ~/.s33d
//	macOS:   ~/Library/Application Support/s33d
//	Windows: %APPDATA%\s33d
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".s33d"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "s33d")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "s33d")
		}
		return filepath.Join(home, "AppData", "Roaming", "s33d")
	default:
		return filepath.Join(home, ".s33d")
	}
}

// DefaultConfigFile returns the config file read when --config is not given.
func DefaultConfigFile() string {
	return filepath.Join(DefaultDir(), "s33d.conf")
}
