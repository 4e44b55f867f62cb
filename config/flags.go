package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// ErrUsage marks command-line mistakes.
var ErrUsage = errors.New("usage error")

// Flags holds parsed command-line flags.
type Flags struct {
	// Commands
	Help        bool
	Version     bool
	List        bool
	Check       bool
	PrintConfig bool

	// Phrase
	Words    int
	Bits     int
	Language string

	// Output
	Details    bool
	Clean      bool
	QR         bool
	Hex        bool
	Passphrase bool
	Seed       bool

	// Config file
	Config string

	// Logging
	LogLevel string
	LogFile  string
	LogJSON  bool

	// Remaining args
	Args []string

	// Explicitly-set flags (for true/false overrides of file values).
	SetWords      bool
	SetBits       bool
	SetDetails    bool
	SetClean      bool
	SetQR         bool
	SetHex        bool
	SetPassphrase bool
	SetSeed       bool
	SetLogJSON    bool
}

// ParseFlags parses command-line flags (without the program name).
// Errors wrap ErrUsage.
func ParseFlags(args []string) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet("s33d", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	// Commands
	fs.BoolVar(&f.Help, "help", false, "Show help message")
	fs.BoolVar(&f.Help, "h", false, "Show help message (shorthand)")
	fs.BoolVar(&f.Version, "version", false, "Show version information")
	fs.BoolVar(&f.List, "list", false, "List supported languages")
	fs.BoolVar(&f.Check, "check", false, "Validate a phrase read from stdin")
	fs.BoolVar(&f.PrintConfig, "print-config", false, "Print a sample config file")

	// Phrase
	fs.IntVar(&f.Words, "w", 0, "Number of words (12, 15, 18, 21, 24)")
	fs.IntVar(&f.Bits, "b", 0, "Entropy bits (128, 160, 192, 224, 256)")
	fs.StringVar(&f.Language, "l", "", "Wordlist language")

	// Output
	fs.BoolVar(&f.Details, "e", false, "Show technical details")
	fs.BoolVar(&f.Clean, "c", false, "Clean mode: only print the phrase")
	fs.BoolVar(&f.QR, "q", false, "Print a QR code of the phrase")
	fs.BoolVar(&f.Hex, "x", false, "Show entropy as hex")
	fs.BoolVar(&f.Hex, "hex", false, "Show entropy as hex")
	fs.BoolVar(&f.Passphrase, "p", false, "Prompt for a BIP-39 passphrase")
	fs.BoolVar(&f.Passphrase, "passphrase", false, "Prompt for a BIP-39 passphrase")
	fs.BoolVar(&f.Seed, "s", false, "Show the derived 64-byte seed")
	fs.BoolVar(&f.Seed, "seed", false, "Show the derived 64-byte seed")

	// Config file
	fs.StringVar(&f.Config, "config", "", "Config file path")

	// Logging
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			f.Help = true
			return f, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	f.Args = fs.Args()
	if len(f.Args) > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUsage, f.Args[0])
	}

	f.SetWords = isFlagSet(fs, "w")
	f.SetBits = isFlagSet(fs, "b")
	if f.SetWords && f.SetBits {
		return nil, fmt.Errorf("%w: -w and -b cannot be used together", ErrUsage)
	}
	f.SetDetails = isFlagSet(fs, "e")
	f.SetClean = isFlagSet(fs, "c")
	f.SetQR = isFlagSet(fs, "q")
	f.SetHex = isFlagSet(fs, "x", "hex")
	f.SetPassphrase = isFlagSet(fs, "p", "passphrase")
	f.SetSeed = isFlagSet(fs, "s", "seed")
	f.SetLogJSON = isFlagSet(fs, "log-json")

	return f, nil
}

// ApplyFlags applies command-line flags to a Config struct.
func ApplyFlags(cfg *Config, f *Flags) {
	// Phrase
	if f.SetWords {
		cfg.Words = f.Words
		cfg.Strength = 0
	}
	if f.SetBits {
		cfg.Strength = f.Bits
		cfg.Words = 0
	}
	if f.Language != "" {
		cfg.Language = f.Language
	}

	// Output
	if f.SetDetails {
		cfg.Output.Details = f.Details
	}
	if f.SetClean {
		cfg.Output.Clean = f.Clean
	}
	if f.SetQR {
		cfg.Output.QR = f.QR
	}
	if f.SetHex {
		cfg.Output.Hex = f.Hex
	}
	if f.SetPassphrase {
		cfg.Output.Passphrase = f.Passphrase
	}
	if f.SetSeed {
		cfg.Output.Seed = f.Seed
	}

	// Logging
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
}

// isFlagSet checks if any of names was explicitly set.
func isFlagSet(fs *flag.FlagSet, names ...string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		for _, name := range names {
			if f.Name == name {
				found = true
			}
		}
	})
	return found
}

// PrintUsage writes the help text to w.
func PrintUsage(w io.Writer) {
	usage := `s33d - BIP-39 mnemonic generator

Usage:
  s33d [options]
  s33d --check < phrase.txt
  s33d --list

Commands:
  --help, -h        Show this help message
  --version         Show version information
  --list            List supported languages
  --check           Read a phrase from stdin and validate it
  --print-config    Print a sample config file

Phrase Options:
  -w <n>            Number of words: 12 (default), 15, 18, 21 or 24
  -b <n>            Entropy bits: 128, 160, 192, 224 or 256
  -l <lang>         Language or alias (default: english)

Output Options:
  -e                Show technical details
  -c                Clean mode: only print the phrase
  -q                Print a QR code for mobile import
  -x, --hex         Show entropy as hexadecimal
  -p, --passphrase  Prompt for an optional BIP-39 passphrase
  -s, --seed        Show the derived 64-byte seed as hexadecimal

Config Options:
  --config <path>   Config file path (default: ` + DefaultConfigFile() + `)

Logging Options:
  --log-level       Log level: debug, info, warn, error (default: warn)
  --log-file        Log file path (JSON)
  --log-json        Output logs as JSON

Examples:
  # 24-word English phrase
  s33d -w 24

  # Japanese phrase with technical details and a QR code
  s33d -l ja -e -q

  # Phrase and seed only, for scripting
  s33d -c -s

Note:
  Logs go to stderr. Anyone holding the phrase controls the funds it
  protects: write it down on paper and never store it digitally.
`
	fmt.Fprint(w, usage)
}

// Load builds the configuration with the following precedence:
// 1. Default values
// 2. Config file (--config, or the default path when it exists)
// 3. Command-line flags
func Load(f *Flags) (*Config, error) {
	cfg := Default()

	configPath := f.Config
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
	} else {
		configPath = DefaultConfigFile()
	}

	fileValues, err := LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config file: %w", err)
	}
	if err := ApplyFileConfig(cfg, fileValues); err != nil {
		return nil, fmt.Errorf("applying config file: %w", err)
	}

	// Flags have the highest precedence
	ApplyFlags(cfg, f)
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
