package solana

import (
	"fmt"
	"strings"

	"github.com/anyproto/go-slip10"
	"github.com/gagliardetto/solana-go"
	"github.com/tyler-smith/go-bip39"
)

const (
	hardenedOffset = 0x80000000
	solanaCoinType = 501
)

// DerivationPath returns the path used by Solana wallets for an account.
func DerivationPath(accountIndex uint32) string {
	return fmt.Sprintf("m/44'/%d'/%d'/0'", solanaCoinType, accountIndex)
}

// DeriveKeypair derives the account keypair from a mnemonic along m/44'/501'/index'/0'.
// The same mnemonic and index always give the same key, which is what makes a
// backup phrase restorable in any wallet following the path convention.
// mnemonic must be []byte for security (caller should zero it after use)
func DeriveKeypair(mnemonic []byte, accountIndex uint32) (solana.PrivateKey, error) {
	if accountIndex >= hardenedOffset {
		return nil, ErrInvalidAccountIndex
	}

	seed, err := SeedFromMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}
	defer clear(seed)

	return deriveForPath(DerivationPath(accountIndex), seed)
}

// SeedFromMnemonic validates the phrase and returns its 64-byte BIP-39 seed
// (no passphrase).
func SeedFromMnemonic(mnemonic []byte) ([]byte, error) {
	phrase := NormalizeMnemonic(string(mnemonic))
	if phrase == "" {
		return nil, fmt.Errorf("%w: mnemonic required", ErrInvalidMnemonic)
	}

	seed, err := bip39.NewSeedWithErrorChecking(phrase, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	return seed, nil
}

// NormalizeMnemonic lower-cases the phrase and collapses whitespace to single spaces.
func NormalizeMnemonic(phrase string) string {
	return strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
}

// deriveForPath walks a hardened SLIP-10 ed25519 path and returns the keypair at its end.
func deriveForPath(path string, seed []byte) (solana.PrivateKey, error) {
	node, err := slip10.DeriveForPath(path, seed)
	if err != nil {
		return nil, fmt.Errorf("failed to derive %s: %w", path, err)
	}

	_, priv := node.Keypair()
	return solana.PrivateKey(priv), nil
}
