package crypto

import "errors"

var (
	// ErrCorruptedRecord is returned when a persisted record is missing fields or
	// cannot be decoded. It is reported before any decryption attempt.
	ErrCorruptedRecord = errors.New("wallet data is corrupted")

	// ErrDecryption is returned when authenticated decryption fails. Wrong password
	// and tampered data are deliberately reported the same way.
	ErrDecryption = errors.New("invalid password or corrupted data")

	// ErrRandomSourceUnavailable is returned when the secure random source cannot
	// produce bytes. Encryption is aborted, there is no fallback source.
	ErrRandomSourceUnavailable = errors.New("secure random source unavailable")
)
