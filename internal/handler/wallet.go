package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/AlexZinkM/seed-wallet/internal/crypto"
	"github.com/AlexZinkM/seed-wallet/internal/model"
	"github.com/AlexZinkM/seed-wallet/internal/policy"
	"github.com/AlexZinkM/seed-wallet/internal/session"
	"github.com/AlexZinkM/seed-wallet/internal/store"
	"github.com/AlexZinkM/seed-wallet/solana"

	"github.com/rs/zerolog"
)

// WalletHandler serves the wallet lifecycle and account endpoints.
type WalletHandler struct {
	store         store.Store
	vault         *crypto.Vault
	holder        *session.Holder
	chain         solana.Chain
	prices        solana.PriceSource
	payer         *solana.Payer
	mnemonicWords int

	mu      sync.Mutex
	pending *solana.PendingWallet
}

// Deps are the collaborators of WalletHandler.
type Deps struct {
	Store         store.Store
	Vault         *crypto.Vault
	Holder        *session.Holder
	Chain         solana.Chain
	Prices        solana.PriceSource
	Payer         *solana.Payer
	MnemonicWords int
}

// NewWalletHandler creates a new WalletHandler
func NewWalletHandler(d Deps) *WalletHandler {
	words := d.MnemonicWords
	if words == 0 {
		words = solana.DefaultMnemonicWords
	}
	return &WalletHandler{
		store:         d.Store,
		vault:         d.Vault,
		holder:        d.Holder,
		chain:         d.Chain,
		prices:        d.Prices,
		payer:         d.Payer,
		mnemonicWords: words,
	}
}

// Create handles POST /wallet/create
// @Summary      Start wallet creation
// @Description  Generates a mnemonic for a new wallet. Nothing is stored until the backup is verified.
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.CreateRequest  true  "New password"
// @Success      200      {object}  model.CreateResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /wallet/create [post]
func (h *WalletHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var req model.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	exists, err := solana.Exists(r.Context(), h.store)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	if exists {
		writeError(w, http.StatusConflict, CodeWalletExists, "wallet already exists: reset it before creating a new one")
		return
	}

	if err := policy.ValidateNewPassword(req.Password, req.ConfirmPassword); err != nil {
		writeDomainError(w, r, err)
		return
	}

	// Get password as []byte, use it, then zero it immediately
	password := []byte(req.Password)
	defer clear(password)

	pending, err := solana.StartCreate(h.mnemonicWords, password)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	// Capture the phrase before publishing: a later create discards this one
	words := pending.Words()

	h.mu.Lock()
	if h.pending != nil {
		h.pending.Discard()
	}
	h.pending = pending
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, model.CreateResponse{
		Mnemonic:        words,
		VerifyPositions: solana.VerifyPositions(),
	})
}

// Verify handles POST /wallet/create/verify
// @Summary      Confirm mnemonic backup
// @Description  Checks the words at verifyPositions, then seals and stores the mnemonic and unlocks the wallet
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.VerifyRequest  true  "Words at the requested positions, in order"
// @Success      200      {object}  model.WalletResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /wallet/create/verify [post]
func (h *WalletHandler) Verify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var req model.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.pending == nil {
		writeError(w, http.StatusConflict, CodeNoPendingWallet, "no wallet creation in progress")
		return
	}

	wallet, err := h.pending.Finish(r.Context(), h.store, h.vault, req.Words, req.AccountIndex)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	h.pending = nil
	h.holder.Login(wallet)

	zerolog.Ctx(r.Context()).Info().Str("address", wallet.Address()).Msg("wallet created")
	writeJSON(w, http.StatusOK, model.WalletResponse{
		Address:      wallet.Address(),
		AccountIndex: wallet.AccountIndex(),
	})
}

// Unlock handles POST /wallet/unlock
// @Summary      Unlock wallet
// @Description  Decrypts the stored mnemonic and derives the account keypair
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.UnlockRequest  true  "Password and account index"
// @Success      200      {object}  model.WalletResponse
// @Failure      401      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Failure      422      {object}  model.ErrorResponse
// @Router       /wallet/unlock [post]
func (h *WalletHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var req model.UnlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	password := []byte(req.Password)
	defer clear(password) // Always clear password from memory

	wallet, err := solana.Unlock(r.Context(), h.store, h.vault, password, req.AccountIndex)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	h.holder.Login(wallet)

	zerolog.Ctx(r.Context()).Info().
		Str("address", wallet.Address()).
		Uint32("accountIndex", wallet.AccountIndex()).
		Msg("wallet unlocked")
	writeJSON(w, http.StatusOK, model.WalletResponse{
		Address:      wallet.Address(),
		AccountIndex: wallet.AccountIndex(),
	})
}

// Lock handles POST /wallet/lock
// @Summary      Lock wallet
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.StatusResponse
// @Router       /wallet/lock [post]
func (h *WalletHandler) Lock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	msg := "Wallet locked"
	if !h.holder.Logout() {
		msg = "Wallet was not unlocked"
	} else {
		zerolog.Ctx(r.Context()).Info().Msg("wallet locked")
	}
	writeJSON(w, http.StatusOK, model.StatusResponse{Success: true, Message: msg})
}

// Reset handles DELETE /wallet
// @Summary      Reset wallet
// @Description  Locks and deletes the stored wallet. Only the mnemonic backup can restore it.
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.StatusResponse
// @Router       /wallet [delete]
func (h *WalletHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w, http.MethodDelete)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.holder.Logout()
	if h.pending != nil {
		h.pending.Discard()
		h.pending = nil
	}

	if err := solana.Reset(r.Context(), h.store); err != nil {
		writeDomainError(w, r, err)
		return
	}

	zerolog.Ctx(r.Context()).Info().Msg("wallet reset")
	writeJSON(w, http.StatusOK, model.StatusResponse{Success: true, Message: "Wallet deleted"})
}

// Address handles GET /wallet/address
// @Summary      Get wallet address
// @Description  Returns the unlocked account address with a QR code (base64 PNG)
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.AddressResponse
// @Failure      423  {object}  model.ErrorResponse
// @Router       /wallet/address [get]
func (h *WalletHandler) Address(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	wallet, err := h.holder.Current()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	qr, err := solana.AddressQR(wallet.Address())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.AddressResponse{
		Address:      wallet.Address(),
		AccountIndex: wallet.AccountIndex(),
		QRCode:       qr,
	})
}

// GetBalance handles GET /wallet/balance
// @Summary      Get wallet balance
// @Description  Gets SOL balance of the unlocked account with its USD value
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.BalanceResponse
// @Failure      423  {object}  model.ErrorResponse
// @Router       /wallet/balance [get]
func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	wallet, err := h.holder.Current()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	balance, err := solana.GetBalance(r.Context(), h.chain, h.prices, wallet.PublicKey())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, balance)
}

// Send handles POST /wallet/send
// @Summary      Send SOL
// @Description  Sends a SOL transaction to the specified address
// @Tags         wallet
// @Accept       json
// @Produce      json
// @Param        request  body      model.PayRequest  true  "Payment data"
// @Success      200      {object}  model.PayResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      423      {object}  model.ErrorResponse
// @Failure      429      {object}  model.ErrorResponse
// @Router       /wallet/send [post]
func (h *WalletHandler) Send(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var req model.PayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	wallet, err := h.holder.Current()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	payResp, err := h.payer.SendSOL(r.Context(), wallet, req.ToAddress, req.Amount)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payResp)
}

// Transactions handles GET /wallet/transactions
// @Summary      Get wallet transactions
// @Description  Gets the most recent transaction signatures of the unlocked account, newest first
// @Tags         wallet
// @Produce      json
// @Param        limit  query     int  false  "Number of transactions (1-100, default 20)"
// @Success      200    {object}  model.TransactionsResponse
// @Failure      400    {object}  model.ErrorResponse
// @Failure      423    {object}  model.ErrorResponse
// @Router       /wallet/transactions [get]
func (h *WalletHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, CodeBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	wallet, err := h.holder.Current()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	txs, err := solana.GetTransactions(r.Context(), h.chain, wallet.PublicKey(), limit)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}
