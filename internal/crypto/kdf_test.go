package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := bytes.Repeat([]byte{0x01}, SaltSize)

	k1, err := DeriveKey([]byte("password"), salt)
	require.NoError(t, err)
	k2, err := DeriveKey([]byte("password"), salt)
	require.NoError(t, err)

	assert.Len(t, k1, KeySize)
	assert.Equal(t, k1, k2)
}

func TestDeriveKey_DependsOnPasswordAndSalt(t *testing.T) {
	salt1 := bytes.Repeat([]byte{0x01}, SaltSize)
	salt2 := bytes.Repeat([]byte{0x02}, SaltSize)

	base, err := DeriveKey([]byte("password"), salt1)
	require.NoError(t, err)
	otherSalt, err := DeriveKey([]byte("password"), salt2)
	require.NoError(t, err)
	otherPassword, err := DeriveKey([]byte("Password"), salt1)
	require.NoError(t, err)

	assert.NotEqual(t, base, otherSalt)
	assert.NotEqual(t, base, otherPassword)
}

func TestDeriveKey_EmptyPasswordAccepted(t *testing.T) {
	key, err := DeriveKey(nil, make([]byte, SaltSize))
	require.NoError(t, err)
	assert.Len(t, key, KeySize)
}

func TestDeriveKeyVersion_Errors(t *testing.T) {
	_, err := DeriveKeyVersion(99, []byte("pw"), make([]byte, SaltSize))
	assert.ErrorIs(t, err, ErrCorruptedRecord)

	_, err = DeriveKey([]byte("pw"), make([]byte, 8))
	assert.ErrorIs(t, err, ErrCorruptedRecord)
}

func TestKDFVersion1_Parameters(t *testing.T) {
	p, ok := KDFVersionParams(KDFVersion1)
	require.True(t, ok)
	assert.Equal(t, 100_000, p.Iterations)
	assert.Equal(t, 32, p.KeyLen)
	assert.Equal(t, 32, p.Hash().Size())
}

func TestDeriveKey_KnownAnswer(t *testing.T) {
	salt := make([]byte, SaltSize)
	for i := range salt {
		salt[i] = byte(i)
	}

	key, err := DeriveKeyVersion(KDFVersion1, []byte("correct-horse-battery-staple"), salt)
	require.NoError(t, err)
	assert.Equal(t, "074ca47d1f67efe76642863fb039d88757c2b8d95f526ea9715a38f5bb48be1f", hex.EncodeToString(key))

	key, err = DeriveKeyVersion(KDFVersion1, nil, make([]byte, SaltSize))
	require.NoError(t, err)
	assert.Equal(t, "6ee86febb06531c5d2a4b2c83d34ea22364298c185656fdd12150276743e0d4d", hex.EncodeToString(key))
}
