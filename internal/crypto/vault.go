package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Record is one sealed secret. It is immutable once written.
type Record struct {
	KDFVersion int
	Cipher     string
	Salt       []byte
	Nonce      []byte
	CipherText []byte // includes the AEAD tag
}

// Vault seals and opens secrets with a password.
// It keeps no state between calls apart from its injected capabilities.
type Vault struct {
	random  io.Reader
	cipher  AEADCipher
	ciphers map[string]AEADCipher
}

// Option configures a Vault.
type Option func(*Vault)

// WithRandom sets the secure random source used for salts and nonces.
func WithRandom(r io.Reader) Option {
	return func(v *Vault) {
		v.random = r
	}
}

// WithCipher sets the cipher used by Encrypt and registers it for Decrypt.
func WithCipher(c AEADCipher) Option {
	return func(v *Vault) {
		v.cipher = c
		v.ciphers[c.Name()] = c
	}
}

// NewVault creates a Vault backed by crypto/rand and AES-256-GCM unless overridden.
func NewVault(opts ...Option) *Vault {
	v := &Vault{
		random: rand.Reader,
		cipher: AESGCM(),
		ciphers: map[string]AEADCipher{
			CipherAES256GCM:        AESGCM(),
			CipherChaCha20Poly1305: ChaCha20Poly1305(),
		},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// CipherName returns the cipher new records are sealed with.
func (v *Vault) CipherName() string {
	return v.cipher.Name()
}

func (v *Vault) readRandom(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(v.random, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSourceUnavailable, err)
	}
	return b, nil
}
