package model

import "time"

// TransactionStatus transaction status
type TransactionStatus string

const (
	TransactionStatusSuccess TransactionStatus = "SUCCESS"
	TransactionStatusFailed  TransactionStatus = "FAILED"
)

// Transaction represents one signature touching the wallet address
type Transaction struct {
	TxID      string            `json:"txId"`
	Slot      uint64            `json:"slot"`
	Timestamp time.Time         `json:"timestamp"`
	Status    TransactionStatus `json:"status"`
	Memo      string            `json:"memo,omitempty"`
}

// TransactionsResponse represents response for GET /wallet/transactions
type TransactionsResponse struct {
	Address      string        `json:"address"`
	Transactions []Transaction `json:"transactions"`
}
