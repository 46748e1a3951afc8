package crypto

import (
	"fmt"
)

// Encrypt seals plaintext under a key derived from password.
// Salt and nonce are fresh on every call, so sealing the same input twice never
// produces the same record.
// password must be []byte for security (caller should zero it after use)
func (v *Vault) Encrypt(password, plaintext []byte) (*Record, error) {
	// Generate salt and nonce
	salt, err := v.readRandom(SaltSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce, err := v.readRandom(NonceSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Derive key from password
	key, err := DeriveKey(password, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key) // wipe derived key from memory

	aead, err := v.cipher.New(key)
	if err != nil {
		return nil, err
	}
	if aead.NonceSize() != NonceSize {
		return nil, fmt.Errorf("cipher %s uses %d-byte nonces, want %d", v.cipher.Name(), aead.NonceSize(), NonceSize)
	}

	return &Record{
		KDFVersion: CurrentKDFVersion,
		Cipher:     v.cipher.Name(),
		Salt:       salt,
		Nonce:      nonce,
		CipherText: aead.Seal(nil, nonce, plaintext, nil),
	}, nil
}
