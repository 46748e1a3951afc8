package crypto

import (
	"fmt"
)

// Decrypt opens a record with password and returns the original plaintext bytes.
// A malformed record fails with ErrCorruptedRecord before any key is derived.
// A wrong password and a tampered record both fail with ErrDecryption.
// password must be []byte for security (caller should zero it and the plaintext after use)
func (v *Vault) Decrypt(password []byte, rec *Record) ([]byte, error) {
	c, err := v.validate(rec)
	if err != nil {
		return nil, err
	}

	// Derive key from password
	key, err := DeriveKeyVersion(rec.KDFVersion, password, rec.Salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key) // wipe derived key from memory

	aead, err := c.New(key)
	if err != nil {
		return nil, err
	}

	// Decrypt
	plaintext, err := aead.Open(nil, rec.Nonce, rec.CipherText, nil)
	if err != nil {
		return nil, ErrDecryption
	}
	return plaintext, nil
}

func (v *Vault) validate(rec *Record) (AEADCipher, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: record is missing", ErrCorruptedRecord)
	}
	if _, ok := KDFVersionParams(rec.KDFVersion); !ok {
		return nil, fmt.Errorf("%w: unsupported kdf version %d", ErrCorruptedRecord, rec.KDFVersion)
	}
	c, ok := v.ciphers[rec.Cipher]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported cipher %q", ErrCorruptedRecord, rec.Cipher)
	}

	switch {
	case len(rec.Salt) != SaltSize:
		return nil, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrCorruptedRecord, SaltSize, len(rec.Salt))
	case len(rec.Nonce) != NonceSize:
		return nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", ErrCorruptedRecord, NonceSize, len(rec.Nonce))
	case len(rec.CipherText) == 0:
		return nil, fmt.Errorf("%w: ciphertext is empty", ErrCorruptedRecord)
	}
	return c, nil
}
