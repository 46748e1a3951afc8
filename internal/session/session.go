// Package session holds the unlocked wallet. The private key never leaves this
// package: the rest of the application sees the public key and a signing capability.
package session

import (
	"errors"
	"sync"

	"github.com/gagliardetto/solana-go"
)

// ErrLocked is returned when no wallet is unlocked or the wallet was locked.
var ErrLocked = errors.New("wallet is locked")

// Wallet is an unlocked account.
type Wallet struct {
	mu           sync.Mutex
	publicKey    solana.PublicKey
	privateKey   solana.PrivateKey
	accountIndex uint32
}

// New takes a copy of key; the caller should zero its own copy.
func New(key solana.PrivateKey, accountIndex uint32) *Wallet {
	pk := make(solana.PrivateKey, len(key))
	copy(pk, key)
	return &Wallet{
		publicKey:    pk.PublicKey(),
		privateKey:   pk,
		accountIndex: accountIndex,
	}
}

func (w *Wallet) PublicKey() solana.PublicKey { return w.publicKey }

// Address returns the base58 public key.
func (w *Wallet) Address() string { return w.publicKey.String() }

func (w *Wallet) AccountIndex() uint32 { return w.accountIndex }

// SignTransaction adds this wallet's signature to tx.
func (w *Wallet) SignTransaction(tx *solana.Transaction) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.privateKey == nil {
		return ErrLocked
	}
	_, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if w.publicKey.Equals(key) {
			return &w.privateKey
		}
		return nil
	})
	return err
}

// Lock wipes the private key. Signing afterwards fails with ErrLocked.
func (w *Wallet) Lock() {
	w.mu.Lock()
	defer w.mu.Unlock()

	clear(w.privateKey)
	w.privateKey = nil
}

// Locked reports whether the key has been wiped.
func (w *Wallet) Locked() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.privateKey == nil
}

// Holder keeps the single active wallet.
type Holder struct {
	mu      sync.RWMutex
	current *Wallet
}

func NewHolder() *Holder {
	return &Holder{}
}

// Login makes w the active wallet, locking the previous one.
func (h *Holder) Login(w *Wallet) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current != nil && h.current != w {
		h.current.Lock()
	}
	h.current = w
}

// Current returns the active wallet or ErrLocked.
func (h *Holder) Current() (*Wallet, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.current == nil || h.current.Locked() {
		return nil, ErrLocked
	}
	return h.current, nil
}

// Logout locks and forgets the active wallet. It reports whether one was active.
func (h *Holder) Logout() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.current == nil {
		return false
	}
	h.current.Lock()
	h.current = nil
	return true
}
