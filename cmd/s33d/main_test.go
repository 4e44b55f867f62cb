package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rivo/uniseg"
	"github.com/tyler-smith/go-bip39"

	"github.com/Klingon-tech/s33d/internal/mnemonic"
	"github.com/Klingon-tech/s33d/internal/wordlist"
)

const (
	zeroPhrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	armyHex    = "0c1e24e5917779d297e14d45f14e1a1a"
	armyPhrase = "army van defense carry jealous true garbage claim echo media make crunch"
	trezorSeed = "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04"
)

// withSource makes generation draw from the given hex bytes.
func withSource(t *testing.T, hexEntropy string) {
	t.Helper()
	b, err := hex.DecodeString(hexEntropy)
	if err != nil {
		t.Fatalf("bad hex: %v", err)
	}
	entropySource = bytes.NewReader(b)
	t.Cleanup(func() { entropySource = nil })
}

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestRun_Clean(t *testing.T) {
	withSource(t, strings.Repeat("00", 16))

	r := runCLI(t, "", "-c")
	if r.code != exitOK {
		t.Fatalf("exit = %d, stderr: %s", r.code, r.stderr)
	}
	if r.stdout != zeroPhrase+"\n" {
		t.Errorf("stdout = %q, want %q", r.stdout, zeroPhrase+"\n")
	}
}

func TestRun_CleanHexSeed(t *testing.T) {
	withSource(t, armyHex)

	r := runCLI(t, "", "-c", "--hex", "-s")
	if r.code != exitOK {
		t.Fatalf("exit = %d, stderr: %s", r.code, r.stderr)
	}

	want := fmt.Sprintf("%s\nhex: %s\nseed: %x\n", armyPhrase, armyHex, bip39.NewSeed(armyPhrase, ""))
	if r.stdout != want {
		t.Errorf("stdout = %q, want %q", r.stdout, want)
	}
}

func TestRun_PassphraseSeed(t *testing.T) {
	withSource(t, strings.Repeat("00", 16))

	r := runCLI(t, "TREZOR\nTREZOR\n", "-c", "-p", "-s")
	if r.code != exitOK {
		t.Fatalf("exit = %d, stderr: %s", r.code, r.stderr)
	}
	if !strings.Contains(r.stdout, "seed: "+trezorSeed) {
		t.Errorf("stdout missing TREZOR seed: %q", r.stdout)
	}
	if !strings.Contains(r.stderr, "confirm passphrase") {
		t.Errorf("stderr missing confirmation prompt: %q", r.stderr)
	}
	if strings.Contains(r.stdout, "TREZOR") || strings.Contains(r.stderr, "TREZOR") {
		t.Error("passphrase echoed")
	}
}

func TestRun_EmptyPassphraseSkipsConfirm(t *testing.T) {
	withSource(t, armyHex)

	r := runCLI(t, "\n", "-c", "--passphrase", "--seed")
	if r.code != exitOK {
		t.Fatalf("exit = %d, stderr: %s", r.code, r.stderr)
	}
	if strings.Contains(r.stderr, "confirm passphrase") {
		t.Error("empty passphrase should not be confirmed")
	}
	if !strings.Contains(r.stdout, fmt.Sprintf("seed: %x", bip39.NewSeed(armyPhrase, ""))) {
		t.Errorf("stdout = %q", r.stdout)
	}
}

func TestRun_PassphraseMismatch(t *testing.T) {
	withSource(t, strings.Repeat("00", 16))

	r := runCLI(t, "one\ntwo\n", "-c", "-p", "-s")
	if r.code != exitUsage {
		t.Fatalf("exit = %d, want %d", r.code, exitUsage)
	}
	if !strings.Contains(r.stderr, "passphrases do not match") {
		t.Errorf("stderr = %q", r.stderr)
	}
	if r.stdout != "" {
		t.Errorf("nothing should be printed on mismatch, got %q", r.stdout)
	}
}

func TestRun_PassphraseMissingInput(t *testing.T) {
	withSource(t, strings.Repeat("00", 16))

	r := runCLI(t, "", "-c", "-p")
	if r.code != exitError {
		t.Fatalf("exit = %d, want %d", r.code, exitError)
	}
}

func TestRun_WordCounts(t *testing.T) {
	tests := []struct {
		args  []string
		words int
	}{
		{nil, 12},
		{[]string{"-w", "15"}, 15},
		{[]string{"-w", "18"}, 18},
		{[]string{"-w", "21"}, 21},
		{[]string{"-w", "24"}, 24},
		{[]string{"-b", "160"}, 15},
		{[]string{"-b", "256"}, 24},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			r := runCLI(t, "", append([]string{"-c"}, tt.args...)...)
			if r.code != exitOK {
				t.Fatalf("exit = %d, stderr: %s", r.code, r.stderr)
			}
			if got := len(strings.Fields(r.stdout)); got != tt.words {
				t.Errorf("got %d words, want %d", got, tt.words)
			}
		})
	}
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"words and bits", []string{"-w", "24", "-b", "256"}},
		{"bad strength", []string{"-b", "100"}},
		{"bad word count", []string{"-w", "13"}},
		{"portuguese", []string{"-l", "pt"}},
		{"unknown language", []string{"-l", "klingon"}},
		{"unknown flag", []string{"--testnet"}},
		{"positional", []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runCLI(t, "", tt.args...)
			if r.code != exitUsage {
				t.Errorf("exit = %d, want %d (stderr: %s)", r.code, exitUsage, r.stderr)
			}
			if !strings.HasPrefix(r.stderr, "Error: ") {
				t.Errorf("stderr = %q, want Error: prefix", r.stderr)
			}
			if r.stdout != "" {
				t.Errorf("stdout = %q, want empty", r.stdout)
			}
		})
	}
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errors.New("no entropy")
}

func TestRun_EntropySourceFailure(t *testing.T) {
	entropySource = brokenReader{}
	t.Cleanup(func() { entropySource = nil })

	r := runCLI(t, "", "-c")
	if r.code != exitError {
		t.Fatalf("exit = %d, want %d", r.code, exitError)
	}
	if r.stdout != "" {
		t.Errorf("stdout = %q, want empty", r.stdout)
	}
}

func TestRun_Languages(t *testing.T) {
	for _, lang := range mnemonic.SupportedLanguages() {
		t.Run(string(lang), func(t *testing.T) {
			r := runCLI(t, "", "-c", "-l", string(lang))
			if r.code != exitOK {
				t.Fatalf("exit = %d, stderr: %s", r.code, r.stderr)
			}

			reg, err := wordlist.Default()
			if err != nil {
				t.Fatal(err)
			}
			wl, err := reg.Load(string(lang))
			if err != nil {
				t.Fatal(err)
			}
			if _, err := mnemonic.DecodeString(strings.TrimSpace(r.stdout), wl); err != nil {
				t.Errorf("printed phrase does not decode: %v", err)
			}
		})
	}
}

func TestRun_FullOutput(t *testing.T) {
	withSource(t, strings.Repeat("00", 16))

	r := runCLI(t, "", "-e", "-x")
	if r.code != exitOK {
		t.Fatalf("exit = %d, stderr: %s", r.code, r.stderr)
	}

	for _, want := range []string{
		"s33d: bip39 mnemonic generator",
		"technical details",
		"entropy bits    : 128 bits",
		"checksum bits   :   4 bits",
		"word count      :  12 words",
		"language        : english",
		"entropy (hexadecimal)",
		strings.Repeat("0", 32),
		"your 12 word seed phrase",
		"1. abandon",
		"12. about",
		"security warnings",
		"generation status",
	} {
		if !strings.Contains(r.stdout, want) {
			t.Errorf("stdout missing %q", want)
		}
	}
	if strings.Contains(r.stdout, "master seed") {
		t.Error("seed panel printed without -s")
	}
}

func TestRun_FullOutputKorean(t *testing.T) {
	r := runCLI(t, "", "-l", "ko")
	if r.code != exitOK {
		t.Fatalf("exit = %d, stderr: %s", r.code, r.stderr)
	}
	if !strings.Contains(r.stdout, "your 12 word seed phrase\n\n1. ") {
		t.Errorf("korean phrase should be a plain list:\n%s", r.stdout)
	}
	if strings.Contains(r.stdout, "┌─ your 12 word seed phrase") {
		t.Error("korean phrase should not be boxed")
	}
}

func TestRun_QR(t *testing.T) {
	withSource(t, strings.Repeat("00", 16))

	r := runCLI(t, "", "-c", "-q")
	if r.code != exitOK {
		t.Fatalf("exit = %d, stderr: %s", r.code, r.stderr)
	}
	if !strings.HasPrefix(r.stdout, zeroPhrase+"\n") {
		t.Errorf("phrase should come first: %q", r.stdout)
	}
	if !strings.Contains(r.stdout, "qr code for mobile import") || !strings.ContainsAny(r.stdout, "█▀▄") {
		t.Error("QR code not rendered")
	}
}

func TestRun_List(t *testing.T) {
	r := runCLI(t, "", "--list")
	if r.code != exitOK {
		t.Fatalf("exit = %d", r.code)
	}
	for _, lang := range mnemonic.SupportedLanguages() {
		if !strings.Contains(r.stdout, string(lang)) {
			t.Errorf("--list missing %s", lang)
		}
	}
	if strings.Contains(r.stdout, "portuguese") {
		t.Error("--list shows an unsupported language")
	}
	if !strings.Contains(r.stdout, "compatibility note") {
		t.Error("--list missing compatibility note")
	}
}

func TestRun_Check(t *testing.T) {
	r := runCLI(t, "  Legal winner thank year wave sausage worth useful legal winner thank YELLOW \n", "--check", "-c", "-x")
	if r.code != exitOK {
		t.Fatalf("exit = %d, stderr: %s", r.code, r.stderr)
	}
	want := "valid 12-word english phrase\nhex: " + strings.Repeat("7f", 16) + "\n"
	if r.stdout != want {
		t.Errorf("stdout = %q, want %q", r.stdout, want)
	}
}

func TestRun_CheckBoxed(t *testing.T) {
	r := runCLI(t, armyPhrase+"\n", "--check")
	if r.code != exitOK {
		t.Fatalf("exit = %d, stderr: %s", r.code, r.stderr)
	}
	if !strings.Contains(r.stdout, "phrase check") || !strings.Contains(r.stdout, "128 bits of entropy") {
		t.Errorf("stdout = %q", r.stdout)
	}
}

func TestRun_CheckSeedWithPassphrase(t *testing.T) {
	r := runCLI(t, zeroPhrase+"\nTREZOR\nTREZOR\n", "--check", "-c", "-p", "-s")
	if r.code != exitOK {
		t.Fatalf("exit = %d, stderr: %s", r.code, r.stderr)
	}
	if !strings.Contains(r.stdout, "seed: "+trezorSeed) {
		t.Errorf("stdout = %q", r.stdout)
	}
}

func TestRun_CheckErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"checksum", strings.Repeat("abandon ", 12) + "\n", "checksum mismatch"},
		{"unknown word", "abandon abandon abandon abandon klingon abandon abandon abandon abandon abandon abandon about\n", "position 5"},
		{"word count", "abandon about\n", "invalid word count"},
		{"empty", "", "EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := runCLI(t, tt.input, "--check")
			if r.code != exitError {
				t.Fatalf("exit = %d, want %d", r.code, exitError)
			}
			if !strings.Contains(r.stderr, tt.want) {
				t.Errorf("stderr = %q, want %q", r.stderr, tt.want)
			}
		})
	}
}

func TestRun_CheckOtherLanguage(t *testing.T) {
	withSource(t, armyHex)
	gen := runCLI(t, "", "-c", "-l", "es")
	if gen.code != exitOK {
		t.Fatalf("generate exit = %d", gen.code)
	}

	r := runCLI(t, gen.stdout, "--check", "-c", "-l", "spanish", "-x")
	if r.code != exitOK {
		t.Fatalf("check exit = %d, stderr: %s", r.code, r.stderr)
	}
	if !strings.Contains(r.stdout, "hex: "+armyHex) {
		t.Errorf("stdout = %q", r.stdout)
	}
}

func TestRun_HelpVersionConfig(t *testing.T) {
	r := runCLI(t, "", "--help")
	if r.code != exitOK || !strings.Contains(r.stdout, "Usage:") {
		t.Errorf("--help: exit %d, stdout %q", r.code, r.stdout)
	}

	r = runCLI(t, "", "--version")
	if r.code != exitOK || r.stdout != "s33d version "+version+"\n" {
		t.Errorf("--version: exit %d, stdout %q", r.code, r.stdout)
	}

	r = runCLI(t, "", "--print-config")
	if r.code != exitOK || !strings.Contains(r.stdout, "strength = 128") {
		t.Errorf("--print-config: exit %d, stdout %q", r.code, r.stdout)
	}
}

func TestRun_ConfigFile(t *testing.T) {
	withSource(t, strings.Repeat("00", 32))

	path := filepath.Join(t.TempDir(), "s33d.conf")
	if err := os.WriteFile(path, []byte("words = 24\nclean = true\n"), 0600); err != nil {
		t.Fatal(err)
	}

	r := runCLI(t, "", "--config", path)
	if r.code != exitOK {
		t.Fatalf("exit = %d, stderr: %s", r.code, r.stderr)
	}
	want := strings.Repeat("abandon ", 23) + "art\n"
	if r.stdout != want {
		t.Errorf("stdout = %q, want %q", r.stdout, want)
	}
}

func TestRun_LogsStayOffStdout(t *testing.T) {
	withSource(t, strings.Repeat("00", 16))

	r := runCLI(t, "", "-c", "--log-level=info", "--log-json")
	if r.code != exitOK {
		t.Fatalf("exit = %d, stderr: %s", r.code, r.stderr)
	}
	if r.stdout != zeroPhrase+"\n" {
		t.Errorf("stdout = %q", r.stdout)
	}
	if !strings.Contains(r.stderr, `"component":"cli"`) || !strings.Contains(r.stderr, "Phrase generated") {
		t.Errorf("stderr missing log event: %q", r.stderr)
	}
	if strings.Contains(r.stderr, "abandon") {
		t.Error("phrase leaked into logs")
	}
}

func TestRun_LogFile(t *testing.T) {
	withSource(t, strings.Repeat("00", 16))
	path := filepath.Join(t.TempDir(), "s33d.log")

	r := runCLI(t, "", "-c", "--log-level=debug", "--log-file", path)
	if r.code != exitOK {
		t.Fatalf("exit = %d, stderr: %s", r.code, r.stderr)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !bytes.Contains(data, []byte("Phrase generated")) {
		t.Errorf("log file = %q", data)
	}
}

func TestWordGrid_Aligned(t *testing.T) {
	reg, err := wordlist.Default()
	if err != nil {
		t.Fatal(err)
	}

	for _, lang := range []string{"english", "chinese-simplified", "japanese", "spanish", "czech"} {
		t.Run(lang, func(t *testing.T) {
			wl, err := reg.Load(lang)
			if err != nil {
				t.Fatal(err)
			}
			m, err := mnemonic.New(nil, 256, wl)
			if err != nil {
				t.Fatal(err)
			}

			lines := wordGrid(m.Words())
			if len(lines) != 6+2 {
				t.Fatalf("got %d lines, want 8", len(lines))
			}
			want := uniseg.StringWidth(lines[0])
			if want < boxWidth+4 {
				t.Errorf("grid width %d narrower than panel", want)
			}
			for i, l := range lines {
				if got := uniseg.StringWidth(l); got != want {
					t.Errorf("line %d width %d, want %d: %q", i, got, want, l)
				}
			}
		})
	}
}

func TestWordGrid_ColumnMajor(t *testing.T) {
	words := strings.Fields(zeroPhrase)
	lines := wordGrid(words)

	// Rows hold 1,4,7,10 / 2,5,8,11 / 3,6,9,12.
	first := lines[1]
	for _, want := range []string{"1. abandon", "4. abandon", "7. abandon", "10. abandon"} {
		if !strings.Contains(first, want) {
			t.Errorf("first row %q missing %q", first, want)
		}
	}
	if !strings.Contains(lines[3], "12. about") {
		t.Errorf("last row %q missing 12. about", lines[3])
	}
}

func TestWriteBox_Widths(t *testing.T) {
	var buf bytes.Buffer
	writeBox(&buf, "title", "short", strings.Repeat("x", 80))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := uniseg.StringWidth(lines[0])
	if want != 80+4 {
		t.Errorf("box width %d, want 84", want)
	}
	for _, l := range lines {
		if uniseg.StringWidth(l) != want {
			t.Errorf("line %q width %d, want %d", l, uniseg.StringWidth(l), want)
		}
	}
}

func TestChunk(t *testing.T) {
	got := chunk(strings.Repeat("a", 70), hexLineChars)
	if len(got) != 3 || len(got[0]) != 32 || len(got[2]) != 6 {
		t.Errorf("chunk() = %v", got)
	}
	if chunk("", 32) != nil {
		t.Error("chunk(\"\") should be empty")
	}
}

func TestQRLines(t *testing.T) {
	bitmap := make([][]bool, 21)
	for y := range bitmap {
		bitmap[y] = make([]bool, 21)
	}
	bitmap[0][0] = true // top of first text row after the quiet zone
	bitmap[1][0] = true

	lines := qrLines(bitmap)
	full := 21 + 2*qrQuietZone
	if len(lines) != (full+1)/2 {
		t.Fatalf("got %d lines, want %d", len(lines), (full+1)/2)
	}
	for _, l := range lines {
		if n := len([]rune(l)); n != full {
			t.Fatalf("line width %d, want %d", n, full)
		}
	}
	if strings.TrimSpace(lines[0]) != "" {
		t.Errorf("quiet zone row not blank: %q", lines[0])
	}
	if got := []rune(lines[1])[qrQuietZone]; got != '█' {
		t.Errorf("module (0,0)-(0,1) = %q, want full block", got)
	}
}

func TestWriteQR(t *testing.T) {
	var buf bytes.Buffer
	if err := writeQR(&buf, zeroPhrase); err != nil {
		t.Fatalf("writeQR() error: %v", err)
	}
	lines := strings.Split(strings.Trim(buf.String(), "\n"), "\n")
	want := len([]rune(lines[0]))
	for _, l := range lines {
		if n := len([]rune(l)); n != want {
			t.Errorf("QR box line has %d runes, want %d", n, want)
		}
	}
}

func newLineReader(s string) *bufio.Reader {
	return bufio.NewReaderSize(strings.NewReader(s), maxLineInput)
}

func TestReadLine(t *testing.T) {
	in := newLineReader("first line\r\nsecond")
	got, err := readLine(in)
	if err != nil || string(got) != "first line" {
		t.Fatalf("readLine() = %q, %v", got, err)
	}
	got, err = readLine(in)
	if err != nil || string(got) != "second" {
		t.Fatalf("readLine() = %q, %v", got, err)
	}
	if _, err := readLine(in); !errors.Is(err, io.EOF) {
		t.Errorf("readLine() at end error = %v, want EOF", err)
	}

	long := newLineReader(strings.Repeat("x", maxLineInput+10) + "\n")
	if _, err := readLine(long); !errors.Is(err, errLineTooLong) {
		t.Errorf("readLine(long) error = %v, want errLineTooLong", err)
	}
}
