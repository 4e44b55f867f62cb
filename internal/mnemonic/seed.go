package mnemonic

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"

	klog "github.com/Klingon-tech/s33d/internal/log"
	"github.com/Klingon-tech/s33d/internal/wordlist"
	"github.com/Klingon-tech/s33d/pkg/crypto"
)

// SeedSize is the length of a BIP-39 seed in bytes.
const SeedSize = 64

const (
	seedIterations = 2048
	seedSaltPrefix = "mnemonic"
)

// NewSeed derives the BIP-39 seed for m using PBKDF2-HMAC-SHA512. The
// phrase and passphrase are NFKD normalized first. The caller owns the
// returned seed and should wipe it after use.
func NewSeed(m Mnemonic, passphrase []byte) []byte {
	defer klog.Benchmark("mnemonic.NewSeed")()

	sentence := norm.NFKD.AppendString(nil, m.String())
	defer crypto.Wipe(sentence)

	salt := norm.NFKD.Append([]byte(seedSaltPrefix), passphrase...)
	defer crypto.Wipe(salt)

	return pbkdf2.Key(sentence, salt, seedIterations, SeedSize, sha512.New)
}

// SeedFromPhrase validates phrase against wl and derives its seed.
func SeedFromPhrase(phrase string, passphrase []byte, wl *wordlist.Wordlist) ([]byte, error) {
	m, err := Parse(phrase, wl)
	if err != nil {
		return nil, err
	}
	return NewSeed(m, passphrase), nil
}
