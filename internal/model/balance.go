package model

// BalanceResponse represents response for GET /wallet/balance
type BalanceResponse struct {
	Address  string `json:"address"`
	SOL      string `json:"sol"`
	Lamports uint64 `json:"lamports"`
	Rate     string `json:"usdRate,omitempty"`
	USD      string `json:"usd,omitempty"`
}

// AddressResponse represents response for GET /wallet/address
type AddressResponse struct {
	Address      string `json:"address"`
	AccountIndex uint32 `json:"accountIndex"`
	QRCode       string `json:"qrCode"` // base64 PNG
}
