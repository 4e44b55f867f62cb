package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadFile loads configuration from a .conf file.
// Format: key = value (one per line, # for comments)
// A missing file yields an empty map.
func LoadFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}
	defer file.Close()

	return parseFile(file)
}

// parseFile reads "key = value" lines. Blank lines and lines starting
// with # are skipped, and one pair of matching quotes around a value is
// dropped. A later key overrides an earlier one.
func parseFile(r io.Reader) (map[string]string, error) {
	values := make(map[string]string)
	scanner := bufio.NewScanner(r)

	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: invalid format (expected key = value)", n)
		}
		values[strings.TrimSpace(key)] = unquote(strings.TrimSpace(value))
	}
	return values, scanner.Err()
}

func unquote(v string) string {
	if len(v) < 2 {
		return v
	}
	if q := v[0]; (q == '"' || q == '\'') && v[len(v)-1] == q {
		return v[1 : len(v)-1]
	}
	return v
}

// ApplyFileConfig applies file configuration to a Config struct.
func ApplyFileConfig(cfg *Config, values map[string]string) error {
	_, hasStrength := values["strength"]
	_, hasWords := values["words"]
	if hasStrength && hasWords {
		return fmt.Errorf("strength and words are mutually exclusive")
	}

	for key, value := range values {
		if err := setConfigValue(cfg, key, value); err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
	}
	return nil
}

// setConfigValue sets a config value by key.
func setConfigValue(cfg *Config, key, value string) error {
	var err error
	switch key {
	// Phrase
	case "strength":
		var n int
		if n, err = strconv.Atoi(value); err == nil {
			cfg.Strength = n
			cfg.Words = 0
		}
	case "words":
		var n int
		if n, err = strconv.Atoi(value); err == nil {
			cfg.Words = n
			cfg.Strength = 0
		}
	case "language":
		cfg.Language = value

	// Output
	case "details":
		cfg.Output.Details, err = parseBool(value)
	case "clean":
		cfg.Output.Clean, err = parseBool(value)
	case "qr":
		cfg.Output.QR, err = parseBool(value)
	case "hex":
		cfg.Output.Hex, err = parseBool(value)
	case "seed":
		cfg.Output.Seed, err = parseBool(value)
	case "passphrase":
		cfg.Output.Passphrase, err = parseBool(value)

	// Logging
	case "log.level":
		cfg.Log.Level = value
	case "log.file":
		cfg.Log.File = value
	case "log.json":
		cfg.Log.JSON, err = parseBool(value)

	default:
		// Unknown keys are ignored
	}
	return err
}

// parseBool parses a boolean value.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

// WriteDefaultConfig writes a commented sample configuration to w.
// s33d never writes it to disk itself.
func WriteDefaultConfig(w io.Writer) error {
	content := `# s33d configuration
#
# Place this file at ` + DefaultConfigFile() + `
# or pass --config <path>. Command-line flags override every value here.

# ============================================================================
# Phrase
# ============================================================================

# Entropy bits: 128, 160, 192, 224 or 256
strength = ` + strconv.Itoa(DefaultStrength) + `

# Or a word count: 12, 15, 18, 21 or 24 (do not set both)
# words = 24

# Wordlist language or alias (run s33d --list)
language = english

# ============================================================================
# Output
# ============================================================================

# details = false
# clean = false
# qr = false
# hex = false
# seed = false
# passphrase = false

# ============================================================================
# Logging
# ============================================================================

log.level = warn
# log.file =
log.json = false
`
	_, err := io.WriteString(w, content)
	return err
}
