package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/skip2/go-qrcode"

	klog "github.com/Klingon-tech/s33d/internal/log"
)

// qrQuietZone is the blank margin around the symbol, in modules.
const qrQuietZone = 2

// renderQR prints the phrase as a QR code. Each text row packs two module
// rows using half-block characters.
func (a *app) renderQR(phrase string) {
	if err := writeQR(a.stdout, phrase); err != nil {
		klog.CLI.Error().Err(err).Msg("QR rendering failed")
		fmt.Fprintf(a.stderr, "Error: failed to generate QR code: %v\n", err)
	}
}

func writeQR(w io.Writer, content string) error {
	code, err := qrcode.New(content, qrcode.Low)
	if err != nil {
		return err
	}
	code.DisableBorder = true
	lines := qrLines(code.Bitmap())

	qrWidth := 0
	if len(lines) > 0 {
		qrWidth = len([]rune(lines[0]))
	}
	width := max(boxWidth, qrWidth)
	left := (width - qrWidth) / 2
	right := width - qrWidth - left

	fmt.Fprintln(w)
	fmt.Fprintln(w, boxTop("qr code for mobile import", width))
	for _, l := range lines {
		fmt.Fprintln(w, "│ "+strings.Repeat(" ", left)+l+strings.Repeat(" ", right)+" │")
	}
	fmt.Fprintln(w, boxBottom(width))
	return nil
}

// qrLines converts a module bitmap into half-block text with a quiet zone
// of qrQuietZone modules on every side.
func qrLines(bitmap [][]bool) []string {
	size := len(bitmap)
	if size == 0 {
		return nil
	}

	dark := func(x, y int) bool {
		x -= qrQuietZone
		y -= qrQuietZone
		if x < 0 || y < 0 || x >= size || y >= size {
			return false
		}
		return bitmap[y][x]
	}

	full := size + 2*qrQuietZone
	lines := make([]string, 0, (full+1)/2)
	for y := 0; y < full; y += 2 {
		var b strings.Builder
		for x := 0; x < full; x++ {
			top, bottom := dark(x, y), dark(x, y+1)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}
