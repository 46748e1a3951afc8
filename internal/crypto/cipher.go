package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

const (
	CipherAES256GCM        = "aes-256-gcm"
	CipherChaCha20Poly1305 = "chacha20-poly1305"

	NonceSize = 12
)

// AEADCipher builds an authenticated cipher from a derived key.
// Name is persisted in the record so decryption picks the same construction.
type AEADCipher interface {
	Name() string
	New(key []byte) (cipher.AEAD, error)
}

type aesGCM struct{}

// AESGCM returns the AES-256-GCM cipher (default).
func AESGCM() AEADCipher { return aesGCM{} }

func (aesGCM) Name() string { return CipherAES256GCM }

func (aesGCM) New(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("aes-256-gcm requires a %d-byte key", KeySize)
	}

	// Create AES cipher
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	// Create GCM
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aead, nil
}

type chachaPoly struct{}

// ChaCha20Poly1305 returns the IETF ChaCha20-Poly1305 cipher with a 12-byte nonce.
func ChaCha20Poly1305() AEADCipher { return chachaPoly{} }

func (chachaPoly) Name() string { return CipherChaCha20Poly1305 }

func (chachaPoly) New(key []byte) (cipher.AEAD, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create chacha20-poly1305: %w", err)
	}
	return aead, nil
}
