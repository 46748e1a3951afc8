package solana

import "errors"

var (
	// ErrInvalidMnemonic is returned when a phrase is not a valid BIP-39 word sequence
	// (unknown word, wrong length or checksum failure).
	ErrInvalidMnemonic = errors.New("invalid mnemonic phrase")

	ErrInvalidAccountIndex = errors.New("account index must be below 2^31")
	ErrVerificationFailed  = errors.New("verification failed: please enter the correct words")
	ErrInsufficientFunds   = errors.New("insufficient SOL balance")
	ErrCooldown            = errors.New("cooldown active")
	ErrInvalidAddress      = errors.New("invalid Solana address")
	ErrInvalidAmount       = errors.New("invalid amount")
)
