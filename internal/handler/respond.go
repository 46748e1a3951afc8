package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlexZinkM/seed-wallet/internal/crypto"
	"github.com/AlexZinkM/seed-wallet/internal/model"
	"github.com/AlexZinkM/seed-wallet/internal/policy"
	"github.com/AlexZinkM/seed-wallet/internal/session"
	"github.com/AlexZinkM/seed-wallet/internal/store"
	"github.com/AlexZinkM/seed-wallet/solana"

	"github.com/rs/zerolog"
)

// Error codes returned in model.ErrorResponse.Code
const (
	CodeBadRequest         = "BAD_REQUEST"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodeWalletExists       = "WALLET_EXISTS"
	CodeWalletNotFound     = "WALLET_NOT_FOUND"
	CodeWalletLocked       = "WALLET_LOCKED"
	CodeNoPendingWallet    = "NO_PENDING_WALLET"
	CodeInvalidPassword    = "INVALID_PASSWORD"
	CodeCorruptedRecord    = "CORRUPTED_RECORD"
	CodeWeakPassword       = "WEAK_PASSWORD"
	CodeVerificationFailed = "VERIFICATION_FAILED"
	CodeInvalidAccount     = "INVALID_ACCOUNT_INDEX"
	CodeInvalidAddress     = "INVALID_ADDRESS"
	CodeInvalidAmount      = "INVALID_AMOUNT"
	CodeInsufficientFunds  = "INSUFFICIENT_FUNDS"
	CodeCooldown           = "COOLDOWN"
	CodeRandomUnavailable  = "RANDOM_UNAVAILABLE"
	CodeInternal           = "INTERNAL_ERROR"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg, Code: code})
}

func methodNotAllowed(w http.ResponseWriter, allowed string) {
	w.Header().Set("Allow", allowed)
	writeError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "Method not allowed. Should be "+allowed)
}

// errorStatus maps domain errors to an HTTP status and error code.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, crypto.ErrDecryption):
		return http.StatusUnauthorized, CodeInvalidPassword
	case errors.Is(err, crypto.ErrCorruptedRecord):
		return http.StatusUnprocessableEntity, CodeCorruptedRecord
	case errors.Is(err, crypto.ErrRandomSourceUnavailable):
		return http.StatusServiceUnavailable, CodeRandomUnavailable
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, CodeWalletNotFound
	case errors.Is(err, store.ErrExists):
		return http.StatusConflict, CodeWalletExists
	case errors.Is(err, session.ErrLocked):
		return http.StatusLocked, CodeWalletLocked
	case errors.Is(err, policy.ErrWeakPassword):
		return http.StatusBadRequest, CodeWeakPassword
	case errors.Is(err, solana.ErrVerificationFailed):
		return http.StatusBadRequest, CodeVerificationFailed
	case errors.Is(err, solana.ErrInvalidAccountIndex):
		return http.StatusBadRequest, CodeInvalidAccount
	case errors.Is(err, solana.ErrInvalidAddress):
		return http.StatusBadRequest, CodeInvalidAddress
	case errors.Is(err, solana.ErrInvalidAmount):
		return http.StatusBadRequest, CodeInvalidAmount
	case errors.Is(err, solana.ErrInsufficientFunds):
		return http.StatusBadRequest, CodeInsufficientFunds
	case errors.Is(err, solana.ErrCooldown):
		return http.StatusTooManyRequests, CodeCooldown
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// writeDomainError writes err with its mapped status. Decryption failures always carry
// the same message whatever the cause; unmapped errors are logged and hidden.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := errorStatus(err)
	msg := err.Error()
	switch code {
	case CodeInvalidPassword:
		msg = crypto.ErrDecryption.Error()
	case CodeInternal:
		zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		msg = "internal error"
	}
	writeError(w, status, code, msg)
}
