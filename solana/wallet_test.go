package solana

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/AlexZinkM/seed-wallet/internal/crypto"
	"github.com/AlexZinkM/seed-wallet/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	st, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func answersFor(words []string) []string {
	out := make([]string, 0, len(verifyIndices))
	for _, i := range verifyIndices {
		out = append(out, words[i])
	}
	return out
}

func TestCreateAndUnlock(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	v := crypto.NewVault()
	password := []byte("correct-horse-battery-staple")

	pending, err := StartCreate(12, password)
	require.NoError(t, err)
	words := pending.Words()
	require.Len(t, words, 12)

	created, err := pending.Finish(ctx, st, v, answersFor(words), 0)
	require.NoError(t, err)

	expected, err := DeriveKeypair([]byte(strings.Join(words, " ")), 0)
	require.NoError(t, err)
	assert.Equal(t, expected.PublicKey(), created.PublicKey())

	exists, err := Exists(ctx, st)
	require.NoError(t, err)
	assert.True(t, exists)

	unlocked, err := Unlock(ctx, st, v, password, 0)
	require.NoError(t, err)
	assert.Equal(t, created.Address(), unlocked.Address())

	other, err := Unlock(ctx, st, v, password, 1)
	require.NoError(t, err)
	assert.NotEqual(t, created.Address(), other.Address())
	assert.Equal(t, uint32(1), other.AccountIndex())
}

func TestFinish_VerificationMismatchKeepsPending(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	v := crypto.NewVault()

	pending, err := StartCreate(12, []byte("correct-horse-battery-staple"))
	require.NoError(t, err)
	words := pending.Words()

	_, err = pending.Finish(ctx, st, v, []string{"wrong", "words", "here"}, 0)
	assert.ErrorIs(t, err, ErrVerificationFailed)

	exists, err := Exists(ctx, st)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.Equal(t, words, pending.Words())
	_, err = pending.Finish(ctx, st, v, answersFor(words), 0)
	require.NoError(t, err)

	// Finished wallets cannot be finished twice
	_, err = pending.Finish(ctx, st, v, answersFor(words), 0)
	assert.Error(t, err)
}

func TestFinish_InvalidAccountIndexPersistsNothing(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	pending, err := StartCreate(12, []byte("correct-horse-battery-staple"))
	require.NoError(t, err)

	_, err = pending.Finish(ctx, st, crypto.NewVault(), answersFor(pending.Words()), 1<<31)
	assert.ErrorIs(t, err, ErrInvalidAccountIndex)

	exists, err := Exists(ctx, st)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFinish_ExistingWallet(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	v := crypto.NewVault()

	first, err := StartCreate(12, []byte("correct-horse-battery-staple"))
	require.NoError(t, err)
	_, err = first.Finish(ctx, st, v, answersFor(first.Words()), 0)
	require.NoError(t, err)

	second, err := StartCreate(12, []byte("correct-horse-battery-staple"))
	require.NoError(t, err)
	_, err = second.Finish(ctx, st, v, answersFor(second.Words()), 0)
	assert.ErrorIs(t, err, store.ErrExists)
}

func TestDiscard(t *testing.T) {
	pending, err := StartCreate(12, []byte("correct-horse-battery-staple"))
	require.NoError(t, err)

	pending.Discard()
	assert.Empty(t, pending.Words())

	_, err = pending.Finish(context.Background(), newTestStore(t), crypto.NewVault(), nil, 0)
	assert.Error(t, err)
}

func TestUnlock_WrongPassword(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	v := crypto.NewVault()

	pending, err := StartCreate(12, []byte("correct-horse-battery-staple"))
	require.NoError(t, err)
	_, err = pending.Finish(ctx, st, v, answersFor(pending.Words()), 0)
	require.NoError(t, err)

	_, err = Unlock(ctx, st, v, []byte("wrong-password"), 0)
	assert.ErrorIs(t, err, crypto.ErrDecryption)
}

func TestUnlock_NoWallet(t *testing.T) {
	_, err := Unlock(context.Background(), newTestStore(t), crypto.NewVault(), []byte("x"), 0)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUnlock_CorruptedRecord(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	require.NoError(t, st.Set(ctx, store.WalletDataKey, []byte(`{"kdfVersion":1,"cipher":"aes-256-gcm"}`)))

	_, err := Unlock(ctx, st, crypto.NewVault(), []byte("x"), 0)
	assert.ErrorIs(t, err, crypto.ErrCorruptedRecord)
}

func TestUnlock_LegacyRecord(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	v := crypto.NewVault()
	password := []byte("correct-horse-battery-staple")

	rec, err := v.Encrypt(password, []byte(abandonMnemonic))
	require.NoError(t, err)
	require.NoError(t, st.Set(ctx, store.WalletDataKey, legacyJSON(rec)))

	w, err := Unlock(ctx, st, v, password, 0)
	require.NoError(t, err)
	assert.Equal(t, "HAgk14JpMQLgt6rVgv7cBQFJWFto5Dqxi472uT3DKpqk", w.Address())
}

func legacyJSON(rec *crypto.Record) []byte {
	ints := func(b []byte) string {
		parts := make([]string, len(b))
		for i, x := range b {
			parts[i] = strconv.Itoa(int(x))
		}
		return "[" + strings.Join(parts, ",") + "]"
	}
	return []byte(`{"salt":` + ints(rec.Salt) + `,"iv":` + ints(rec.Nonce) + `,"encryptedContent":` + ints(rec.CipherText) + `}`)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	v := crypto.NewVault()

	pending, err := StartCreate(12, []byte("correct-horse-battery-staple"))
	require.NoError(t, err)
	_, err = pending.Finish(ctx, st, v, answersFor(pending.Words()), 0)
	require.NoError(t, err)

	require.NoError(t, Reset(ctx, st))

	exists, err := Exists(ctx, st)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, Reset(ctx, st), "reset is idempotent")
}

func TestAddressQR(t *testing.T) {
	qr, err := AddressQR("HAgk14JpMQLgt6rVgv7cBQFJWFto5Dqxi472uT3DKpqk")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(qr, "iVBORw0KGgo")) // base64 PNG signature
}

func TestUnlock_BrowserRecord(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	require.NoError(t, st.Set(ctx, store.WalletDataKey, []byte(`{"salt":[0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15],"iv":[100,101,102,103,104,105,106,107,108,109,110,111],"encryptedContent":[79,217,234,107,39,165,35,74,244,156,216,146,154,183,247,194,100,27,236,8,6,179,4,195,193,224,50,235,148,33,224,33,113,3,24,229,196,41,47,74,132,214,201,224,126,181,167,253,84,124,55,72,175,140,248,18,51,130,159,123,73,71,145,104,47,228,43,203,143,184,168,99,244,186,43,8,133,122,54,138,129,124,12,201,195,140,117,238,139,215,76,39,171,241,232,55,238,159,4,99,191,227,28,47,242,99,129,235,182]}`)))

	w, err := Unlock(ctx, st, crypto.NewVault(), []byte("correct-horse-battery-staple"), 0)
	require.NoError(t, err)
	assert.Equal(t, "HAgk14JpMQLgt6rVgv7cBQFJWFto5Dqxi472uT3DKpqk", w.Address())
}
