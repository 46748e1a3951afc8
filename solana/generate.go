package solana

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/AlexZinkM/seed-wallet/internal/crypto"
	"github.com/AlexZinkM/seed-wallet/internal/session"
	"github.com/AlexZinkM/seed-wallet/internal/store"

	"github.com/skip2/go-qrcode"
)

var errDiscarded = errors.New("wallet creation was discarded")

// PendingWallet owns a freshly generated mnemonic between showing it to the user
// and the user confirming the backup. Nothing is persisted until Finish succeeds.
type PendingWallet struct {
	mu       sync.Mutex
	mnemonic []byte
	password []byte
}

// StartCreate generates a new mnemonic for a wallet that will be sealed with password.
// The password is copied; the caller should zero its own copy.
func StartCreate(words int, password []byte) (*PendingWallet, error) {
	mnemonic, err := NewMnemonic(words)
	if err != nil {
		return nil, err
	}
	return &PendingWallet{
		mnemonic: mnemonic,
		password: bytes.Clone(password),
	}, nil
}

// Words returns the phrase for one-time display.
func (p *PendingWallet) Words() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return strings.Fields(string(p.mnemonic))
}

// Finish checks the re-entered words, seals and persists the mnemonic, and derives the
// account keypair. On a verification mismatch the pending state is kept for another try.
func (p *PendingWallet) Finish(ctx context.Context, st store.Store, v *crypto.Vault, answers []string, accountIndex uint32) (*session.Wallet, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.mnemonic == nil {
		return nil, errDiscarded
	}
	if !verifyWords(p.mnemonic, answers) {
		return nil, ErrVerificationFailed
	}

	// Derive before persisting: a bad index must not leave a record behind
	key, err := DeriveKeypair(p.mnemonic, accountIndex)
	if err != nil {
		return nil, err
	}
	defer clear(key)

	// Encrypt and persist
	rec, err := v.Encrypt(p.password, p.mnemonic)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt wallet: %w", err)
	}
	data, err := crypto.MarshalRecord(rec)
	if err != nil {
		return nil, err
	}
	if err := st.Set(ctx, store.WalletDataKey, data); err != nil {
		return nil, fmt.Errorf("failed to save wallet: %w", err)
	}

	p.discard()
	return session.New(key, accountIndex), nil
}

// Discard wipes the pending mnemonic and password without persisting anything.
func (p *PendingWallet) Discard() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.discard()
}

func (p *PendingWallet) discard() {
	clear(p.mnemonic)
	clear(p.password)
	p.mnemonic = nil
	p.password = nil
}

// AddressQR generates QR code of address in base64
func AddressQR(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	// Get PNG image
	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	// Encode to base64
	return base64.StdEncoding.EncodeToString(png), nil
}
