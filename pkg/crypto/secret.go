package crypto

import "runtime"

// Wipe overwrites every element of s with its zero value.
func Wipe[S ~[]E, E any](s S) {
	clear(s)
	runtime.KeepAlive(s)
}

// WithSecret allocates an n-byte buffer, passes it to fn and wipes it when
// fn returns, whether it returns an error or panics. fn must not retain buf.
func WithSecret(n int, fn func(buf []byte) error) error {
	buf := make([]byte, n)
	defer Wipe(buf)
	return fn(buf)
}
