//go:build !unix

package crypto

// CheckEntropySource reports problems with the host's entropy devices.
// Non-Unix platforms expose no device files to inspect.
func CheckEntropySource() []string {
	return nil
}
