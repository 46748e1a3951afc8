package solana

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlexZinkM/seed-wallet/internal/crypto"
	"github.com/AlexZinkM/seed-wallet/internal/session"
	"github.com/AlexZinkM/seed-wallet/internal/store"
)

// Unlock loads the sealed mnemonic, opens it with password and derives the account keypair.
// The recovered mnemonic is wiped before returning.
// password must be []byte for security (caller should zero it after use)
func Unlock(ctx context.Context, st store.Store, v *crypto.Vault, password []byte, accountIndex uint32) (*session.Wallet, error) {
	data, err := st.Get(ctx, store.WalletDataKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet: %w", err)
	}

	rec, err := crypto.ParseRecord(data)
	if err != nil {
		return nil, err
	}

	mnemonic, err := v.Decrypt(password, rec)
	if err != nil {
		return nil, err
	}
	defer clear(mnemonic) // wipe decrypted bytes from memory

	key, err := DeriveKeypair(mnemonic, accountIndex)
	if err != nil {
		return nil, err
	}
	defer clear(key)

	return session.New(key, accountIndex), nil
}

// Exists reports whether a sealed wallet is stored.
func Exists(ctx context.Context, st store.Store) (bool, error) {
	_, err := st.Get(ctx, store.WalletDataKey)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// Reset deletes the sealed wallet if there is one. The mnemonic backup is the only way back.
func Reset(ctx context.Context, st store.Store) error {
	if err := st.Delete(ctx, store.WalletDataKey); err != nil {
		return fmt.Errorf("failed to reset wallet: %w", err)
	}
	return nil
}
