package model

// PayRequest represents request for POST /wallet/send
type PayRequest struct {
	ToAddress string `json:"toAddress"`
	Amount    string `json:"amount"` // SOL, decimal string
}

// PayResponse represents response for POST /wallet/send
type PayResponse struct {
	TxID string `json:"txId"`
}
