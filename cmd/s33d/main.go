// s33d generates and checks BIP-39 mnemonic phrases.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Klingon-tech/s33d/config"
	klog "github.com/Klingon-tech/s33d/internal/log"
	"github.com/Klingon-tech/s33d/internal/mnemonic"
	"github.com/Klingon-tech/s33d/internal/wordlist"
	"github.com/Klingon-tech/s33d/pkg/crypto"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// maxLineInput bounds a line read from stdin.
const maxLineInput = 4096

// entropySource feeds generation. Nil means crypto.DefaultSource.
var entropySource io.Reader

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// app carries one invocation's configuration and streams.
type app struct {
	cfg    *config.Config
	stdin  io.Reader
	in     *bufio.Reader
	stdout io.Writer
	stderr io.Writer
	codec  mnemonic.Codec
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags, err := config.ParseFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintln(stderr, "Run 's33d --help' for usage.")
		return exitUsage
	}

	switch {
	case flags.Help:
		config.PrintUsage(stdout)
		return exitOK
	case flags.Version:
		fmt.Fprintf(stdout, "s33d version %s\n", version)
		return exitOK
	case flags.PrintConfig:
		if err := config.WriteDefaultConfig(stdout); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
		return exitOK
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}

	klog.SetOutput(stderr, cfg.Log.Level, cfg.Log.JSON)
	if cfg.Log.File != "" {
		if err := klog.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
			fmt.Fprintf(stderr, "Error: open log file: %v\n", err)
			return exitError
		}
	}

	reg, err := wordlist.Default()
	if err != nil {
		fmt.Fprintf(stderr, "Error: load wordlists: %v\n", err)
		return exitError
	}

	a := &app{
		cfg:    cfg,
		stdin:  stdin,
		in:     bufio.NewReaderSize(stdin, maxLineInput),
		stdout: stdout,
		stderr: stderr,
		codec:  mnemonic.Codec{Registry: reg, Source: entropySource},
	}

	switch {
	case flags.List:
		printLanguages(stdout)
		return exitOK
	case flags.Check:
		return a.check()
	default:
		return a.generate()
	}
}

// fail prints an error line and returns code.
func (a *app) fail(code int, format string, args ...interface{}) int {
	fmt.Fprintf(a.stderr, "Error: "+format+"\n", args...)
	return code
}

func (a *app) generate() int {
	cfg := a.cfg

	if !cfg.Output.Clean {
		for _, warning := range crypto.CheckEntropySource() {
			klog.Entropy.Warn().Msg(warning)
		}
	}

	wl, err := a.codec.Registry.Load(cfg.Language)
	if err != nil {
		return a.fail(exitUsage, "%v", err)
	}

	entropy, err := mnemonic.NewEntropyBits(a.codec.Source, cfg.EntropyBits())
	if err != nil {
		return a.fail(exitError, "generate entropy: %v", err)
	}
	defer entropy.Wipe()

	m, err := mnemonic.FromEntropy(entropy, wl)
	if err != nil {
		return a.fail(exitError, "generate mnemonic: %v", err)
	}

	klog.CLI.Info().
		Int("bits", entropy.Bits()).
		Int("words", m.Len()).
		Str("language", string(m.Language())).
		Msg("Phrase generated")

	seed, code := a.seed(m)
	if code != exitOK {
		return code
	}
	defer crypto.Wipe(seed)

	out := output{
		mnemonic: m,
		entropy:  entropy,
		seed:     seed,
	}
	if cfg.Output.Clean {
		a.renderClean(out)
	} else {
		a.renderFull(out)
	}
	return exitOK
}

// seed prompts for the passphrase when asked to and derives the seed when
// it will be shown. A nil seed means none was requested.
func (a *app) seed(m mnemonic.Mnemonic) ([]byte, int) {
	var passphrase []byte
	if a.cfg.Output.Passphrase {
		var code int
		passphrase, code = a.promptPassphrase()
		if code != exitOK {
			return nil, code
		}
		defer crypto.Wipe(passphrase)
	}
	if !a.cfg.Output.Seed {
		return nil, exitOK
	}
	return mnemonic.NewSeed(m, passphrase), exitOK
}

func (a *app) promptPassphrase() ([]byte, int) {
	pass, err := readPassword(a, "enter passphrase (leave blank for none): ")
	if err != nil {
		return nil, a.fail(exitError, "read passphrase: %v", err)
	}
	if len(pass) == 0 {
		return pass, exitOK
	}

	confirm, err := readPassword(a, "confirm passphrase: ")
	if err != nil {
		crypto.Wipe(pass)
		return nil, a.fail(exitError, "read passphrase: %v", err)
	}
	defer crypto.Wipe(confirm)

	if string(pass) != string(confirm) {
		crypto.Wipe(pass)
		return nil, a.fail(exitUsage, "passphrases do not match")
	}
	return pass, exitOK
}

// check validates a phrase read from the first line of stdin.
func (a *app) check() int {
	data, err := readLine(a.in)
	if err != nil {
		return a.fail(exitError, "read phrase: %v", err)
	}
	defer crypto.Wipe(data)

	words := strings.Fields(string(data))
	entropy, err := a.codec.Decode(words, a.cfg.Language)
	if err != nil {
		klog.CLI.Info().Int("words", len(words)).Msg("Phrase check failed")
		return a.fail(exitError, "invalid phrase: %v", err)
	}
	defer entropy.Wipe()

	wl, err := a.codec.Registry.Load(a.cfg.Language)
	if err != nil {
		return a.fail(exitUsage, "%v", err)
	}
	m, err := mnemonic.FromEntropy(entropy, wl)
	if err != nil {
		return a.fail(exitError, "%v", err)
	}

	seed, code := a.seed(m)
	if code != exitOK {
		return code
	}
	defer crypto.Wipe(seed)

	a.renderCheck(output{mnemonic: m, entropy: entropy, seed: seed})
	return exitOK
}
