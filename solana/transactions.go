package solana

import (
	"context"

	"github.com/AlexZinkM/seed-wallet/internal/model"

	"github.com/gagliardetto/solana-go"
)

const (
	DefaultTransactionLimit = 20
	MaxTransactionLimit     = 100
)

// GetTransactions gets the most recent signatures touching owner, newest first.
// limit is clamped to 1..MaxTransactionLimit; zero means DefaultTransactionLimit.
func GetTransactions(ctx context.Context, chain Chain, owner solana.PublicKey, limit int) (*model.TransactionsResponse, error) {
	switch {
	case limit <= 0:
		limit = DefaultTransactionLimit
	case limit > MaxTransactionLimit:
		limit = MaxTransactionLimit
	}

	sigs, err := chain.GetSignatures(ctx, owner, limit)
	if err != nil {
		return nil, err
	}

	// Convert to model format
	txs := make([]model.Transaction, 0, len(sigs))
	for _, sig := range sigs {
		status := model.TransactionStatusSuccess
		if sig.Failed {
			status = model.TransactionStatusFailed
		}
		txs = append(txs, model.Transaction{
			TxID:      sig.Signature,
			Slot:      sig.Slot,
			Timestamp: sig.Timestamp,
			Status:    status,
			Memo:      sig.Memo,
		})
	}

	return &model.TransactionsResponse{
		Address:      owner.String(),
		Transactions: txs,
	}, nil
}
