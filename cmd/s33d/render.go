package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/Klingon-tech/s33d/internal/mnemonic"
	"github.com/Klingon-tech/s33d/internal/wordlist"
)

// Layout constants.
const (
	boxWidth     = 63 // inner width of every panel
	gridColumns  = 4
	gridSpacing  = "   "
	hexLineChars = 32
)

// output is what one run prints.
type output struct {
	mnemonic mnemonic.Mnemonic
	entropy  mnemonic.Entropy
	seed     []byte // nil when not requested
}

// languageNotes are shown next to each language by --list.
var languageNotes = map[wordlist.Language]string{
	wordlist.English:            "default, widely supported",
	wordlist.ChineseSimplified:  "简体中文",
	wordlist.ChineseTraditional: "繁體中文",
	wordlist.French:             "français",
	wordlist.Italian:            "italiano",
	wordlist.Japanese:           "日本語",
	wordlist.Korean:             "한국어",
	wordlist.Spanish:            "español",
	wordlist.Czech:              "čeština",
}

func boxTop(title string, width int) string {
	head := "┌─ " + title + " "
	fill := width + 3 - uniseg.StringWidth(head)
	if fill < 0 {
		fill = 0
	}
	return head + strings.Repeat("─", fill) + "┐"
}

func boxLine(content string, width int) string {
	pad := width - uniseg.StringWidth(content)
	if pad < 0 {
		pad = 0
	}
	return "│ " + content + strings.Repeat(" ", pad) + " │"
}

func boxBottom(width int) string {
	return "└" + strings.Repeat("─", width+2) + "┘"
}

// writeBox prints a titled panel, widening it to fit the longest line.
func writeBox(w io.Writer, title string, lines ...string) {
	width := boxWidth
	for _, l := range lines {
		width = max(width, uniseg.StringWidth(l))
	}

	fmt.Fprintln(w, boxTop(title, width))
	for _, l := range lines {
		fmt.Fprintln(w, boxLine(l, width))
	}
	fmt.Fprintln(w, boxBottom(width))
}

// chunk splits s into pieces of at most n bytes.
func chunk(s string, n int) []string {
	var out []string
	for len(s) > n {
		out = append(out, s[:n])
		s = s[n:]
	}
	if s != "" {
		out = append(out, s)
	}
	return out
}

func (a *app) renderClean(out output) {
	w := a.stdout
	phrase := out.mnemonic.String()
	fmt.Fprintln(w, phrase)
	if a.cfg.Output.Hex {
		fmt.Fprintf(w, "hex: %s\n", out.entropy.Hex())
	}
	if out.seed != nil {
		fmt.Fprintf(w, "seed: %x\n", out.seed)
	}
	if a.cfg.Output.QR {
		a.renderQR(phrase)
	}
}

func (a *app) renderFull(out output) {
	w := a.stdout

	fmt.Fprintln(w)
	writeBox(w, "s33d: bip39 mnemonic generator",
		"cryptographically secure seed phrase generation")

	a.renderPanels(out)

	fmt.Fprintln(w)
	writeWords(w, out.mnemonic)

	fmt.Fprintln(w)
	writeBox(w, "security warnings",
		"▲ critical: write this phrase on paper - NEVER store digitally",
		"▲ keep in a secure location away from others",
		"▲ anyone with this phrase can access your cryptocurrency",
		"▲ verify the first few words before final storage",
		"▲ never enter this phrase on websites or untrusted devices",
		"▲ consider hardware wallets for significant amounts",
	)

	fmt.Fprintln(w)
	writeBox(w, "generation status",
		"✓ phrase generated using cryptographically secure entropy",
		"✓ bip39 standard compliance verified",
		"✓ checksum validation passed",
	)
	fmt.Fprintln(w)

	if a.cfg.Output.QR {
		a.renderQR(out.mnemonic.String())
	}
}

func (a *app) renderCheck(out output) {
	w := a.stdout
	m := out.mnemonic

	if a.cfg.Output.Clean {
		fmt.Fprintf(w, "valid %d-word %s phrase\n", m.Len(), m.Language())
		if a.cfg.Output.Hex {
			fmt.Fprintf(w, "hex: %s\n", out.entropy.Hex())
		}
		if out.seed != nil {
			fmt.Fprintf(w, "seed: %x\n", out.seed)
		}
		return
	}

	fmt.Fprintln(w)
	writeBox(w, "phrase check",
		fmt.Sprintf("✓ %d words found in the %s wordlist", m.Len(), m.Language()),
		"✓ checksum validation passed",
		fmt.Sprintf("✓ carries %d bits of entropy", out.entropy.Bits()),
	)
	a.renderPanels(out)
	fmt.Fprintln(w)
}

// renderPanels prints the optional details, hex and seed panels.
func (a *app) renderPanels(out output) {
	w := a.stdout
	bits := out.entropy.Bits()
	csBits := bits / 32

	if a.cfg.Output.Details {
		fmt.Fprintln(w)
		writeBox(w, "technical details",
			fmt.Sprintf("▪ entropy bits    : %3d bits", bits),
			fmt.Sprintf("▪ checksum bits   : %3d bits", csBits),
			fmt.Sprintf("▪ total bits      : %3d bits", bits+csBits),
			fmt.Sprintf("▪ word count      : %3d words", out.mnemonic.Len()),
			fmt.Sprintf("▪ language        : %s", out.mnemonic.Language()),
		)
	}

	if a.cfg.Output.Hex {
		fmt.Fprintln(w)
		writeBox(w, "entropy (hexadecimal)", chunk(out.entropy.Hex(), hexLineChars)...)
	}

	if out.seed != nil {
		fmt.Fprintln(w)
		writeBox(w, "master seed (hexadecimal)", chunk(fmt.Sprintf("%x", out.seed), hexLineChars)...)
	}
}

// writeWords prints the numbered phrase. Words run down the columns of a
// four-column grid. Korean is printed as a plain list because its jamo
// sequences render with unpredictable widths.
func writeWords(w io.Writer, m mnemonic.Mnemonic) {
	words := m.Words()
	title := fmt.Sprintf("your %d word seed phrase", len(words))

	if m.Language() == wordlist.Korean {
		fmt.Fprintln(w, title)
		fmt.Fprintln(w)
		for i, word := range words {
			fmt.Fprintf(w, "%d. %s\n", i+1, word)
		}
		return
	}

	for _, line := range wordGrid(words) {
		fmt.Fprintln(w, line)
	}
}

// wordGrid lays words out column-major and boxes the result.
func wordGrid(words []string) []string {
	rows := (len(words) + gridColumns - 1) / gridColumns

	cell := func(row, col int) string {
		i := row + col*rows
		if i >= len(words) {
			return ""
		}
		return fmt.Sprintf("%d. %s", i+1, words[i])
	}

	colWidths := make([]int, gridColumns)
	for col := range colWidths {
		for row := 0; row < rows; row++ {
			colWidths[col] = max(colWidths[col], uniseg.StringWidth(cell(row, col)))
		}
	}

	// Spread any slack across the separators so the grid fills the panel.
	required := (gridColumns - 1) * len(gridSpacing)
	for _, cw := range colWidths {
		required += cw
	}
	width := max(required, boxWidth)
	slack := width - required
	seps := make([]string, gridColumns-1)
	for i := range seps {
		extra := slack / len(seps)
		if i < slack%len(seps) {
			extra++
		}
		seps[i] = gridSpacing + strings.Repeat(" ", extra)
	}

	lines := []string{boxTop(fmt.Sprintf("your %d word seed phrase", len(words)), width)}
	for row := 0; row < rows; row++ {
		var b strings.Builder
		for col := 0; col < gridColumns; col++ {
			c := cell(row, col)
			b.WriteString(c)
			b.WriteString(strings.Repeat(" ", colWidths[col]-uniseg.StringWidth(c)))
			if col < len(seps) {
				b.WriteString(seps[col])
			}
		}
		lines = append(lines, boxLine(b.String(), width))
	}
	return append(lines, boxBottom(width))
}

// printLanguages writes the --list table.
func printLanguages(w io.Writer) {
	langs := mnemonic.SupportedLanguages()

	nameWidth, aliasWidth := 0, 0
	aliases := make([]string, len(langs))
	for i, lang := range langs {
		aliases[i] = "(" + strings.Join(wordlist.Aliases(lang), ", ") + ")"
		nameWidth = max(nameWidth, uniseg.StringWidth(string(lang)))
		aliasWidth = max(aliasWidth, uniseg.StringWidth(aliases[i]))
	}

	lines := make([]string, len(langs))
	for i, lang := range langs {
		name := string(lang)
		lines[i] = name + strings.Repeat(" ", nameWidth-uniseg.StringWidth(name)) + "  " +
			aliases[i] + strings.Repeat(" ", aliasWidth-uniseg.StringWidth(aliases[i])) + "  " +
			"- " + languageNotes[lang]
	}

	fmt.Fprintln(w)
	writeBox(w, "supported languages", lines...)
	fmt.Fprintln(w)
	writeBox(w, "compatibility note",
		"▪ english is the most widely supported language",
		"▪ other languages may have limited wallet support",
		"▪ when in doubt, use english",
	)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "usage:")
	fmt.Fprintln(w, "  s33d -l english")
	fmt.Fprintln(w, "  s33d -l ja -w 24")
	fmt.Fprintln(w)
}
