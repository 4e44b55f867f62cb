package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/Klingon-tech/s33d/pkg/crypto"
)

var errLineTooLong = errors.New("input line too long")

// readPassword prompts on stderr and reads one line. Echo is disabled when
// stdin is a terminal. Tests replace it.
var readPassword = func(a *app, prompt string) ([]byte, error) {
	fmt.Fprint(a.stderr, prompt)

	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.stderr) // newline after hidden input
		if err != nil {
			return nil, err
		}
		return password, nil
	}

	line, err := readLine(a.in)
	fmt.Fprintln(a.stderr)
	return line, err
}

// readLine returns the next line of r without its line ending. The bytes
// left in r's buffer are wiped.
func readLine(r *bufio.Reader) ([]byte, error) {
	raw, err := r.ReadSlice('\n')
	defer crypto.Wipe(raw)

	switch {
	case errors.Is(err, bufio.ErrBufferFull):
		return nil, errLineTooLong
	case errors.Is(err, io.EOF) && len(raw) > 0:
	case err != nil:
		return nil, err
	}

	return bytes.Clone(bytes.TrimRight(raw, "\r\n")), nil
}
