package crypto

import (
	"crypto/sha256"
	"fmt"
	"hash"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KDFVersion1 is PBKDF2-HMAC-SHA256 with 100,000 iterations and a 256-bit key.
	// Records written with it must stay decryptable, so its parameters never change.
	KDFVersion1 = 1

	// CurrentKDFVersion is used for every new record.
	CurrentKDFVersion = KDFVersion1

	SaltSize = 16
	KeySize  = 32
)

// KDFParams describes one versioned password-based key derivation.
type KDFParams struct {
	Iterations int
	KeyLen     int
	Hash       func() hash.Hash
}

var kdfVersions = map[int]KDFParams{
	KDFVersion1: {
		Iterations: 100_000,
		KeyLen:     KeySize,
		Hash:       sha256.New,
	},
}

// KDFVersionParams returns parameters for a known version.
func KDFVersionParams(version int) (KDFParams, bool) {
	p, ok := kdfVersions[version]
	return p, ok
}

// DeriveKey derives an encryption key from password and salt with the current KDF version.
// password must be []byte for security (caller should zero it and the returned key after use)
func DeriveKey(password, salt []byte) ([]byte, error) {
	return DeriveKeyVersion(CurrentKDFVersion, password, salt)
}

// DeriveKeyVersion derives a key with the parameters of the given KDF version.
// Empty passwords are accepted; password policy is enforced by callers.
func DeriveKeyVersion(version int, password, salt []byte) ([]byte, error) {
	params, ok := kdfVersions[version]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported kdf version %d", ErrCorruptedRecord, version)
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: salt must be %d bytes, got %d", ErrCorruptedRecord, SaltSize, len(salt))
	}

	return pbkdf2.Key(password, salt, params.Iterations, params.KeyLen, params.Hash), nil
}
