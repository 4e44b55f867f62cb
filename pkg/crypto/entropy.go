package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// ErrEntropySourceUnavailable is returned when the entropy source fails or
// returns fewer bytes than requested.
var ErrEntropySourceUnavailable = errors.New("entropy source unavailable")

// DefaultSource is the OS-backed CSPRNG.
var DefaultSource io.Reader = rand.Reader

// RandomBytes reads exactly n bytes from src. A nil src means DefaultSource.
// On failure the partial buffer is wiped and nil is returned.
func RandomBytes(src io.Reader, n int) ([]byte, error) {
	if src == nil {
		src = DefaultSource
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(src, buf); err != nil {
		Wipe(buf)
		return nil, fmt.Errorf("%w: %v", ErrEntropySourceUnavailable, err)
	}
	return buf, nil
}
