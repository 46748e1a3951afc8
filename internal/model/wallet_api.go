package model

// CreateRequest represents request for POST /wallet/create
type CreateRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// CreateResponse represents response for POST /wallet/create.
// The mnemonic is shown once; verifyPositions are the 1-based words to re-enter.
type CreateResponse struct {
	Mnemonic        []string `json:"mnemonic"`
	VerifyPositions []int    `json:"verifyPositions"`
}

// VerifyRequest represents request for POST /wallet/create/verify
type VerifyRequest struct {
	Words        []string `json:"words"`
	AccountIndex uint32   `json:"accountIndex"`
}

// UnlockRequest represents request for POST /wallet/unlock
type UnlockRequest struct {
	Password     string `json:"password"`
	AccountIndex uint32 `json:"accountIndex"`
}

// WalletResponse represents response for create/verify and unlock
type WalletResponse struct {
	Address      string `json:"address"`
	AccountIndex uint32 `json:"accountIndex"`
}

// StatusResponse represents response for lock and reset
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
