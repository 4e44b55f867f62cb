//go:build unix

package crypto

import "os"

var (
	urandomPath = "/dev/urandom"
	randomPath  = "/dev/random"
)

// CheckEntropySource reports problems with the host's entropy devices.
// An empty result means nothing looked wrong.
func CheckEntropySource() []string {
	if _, err := os.Stat(urandomPath); err != nil {
		return []string{"system entropy source (" + urandomPath + ") not found, entropy quality may be compromised"}
	}
	if _, err := os.Stat(randomPath); err != nil {
		return []string{"high quality entropy source (" + randomPath + ") not available, using " + urandomPath}
	}
	return nil
}
