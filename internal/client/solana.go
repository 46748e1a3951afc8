package client

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
)

// Signer signs transactions for one account without exposing its private key.
type Signer interface {
	PublicKey() solana.PublicKey
	SignTransaction(tx *solana.Transaction) error
}

// SolanaClient is a client for working with Solana RPC
type SolanaClient struct {
	rpcClient *rpc.Client
	rpcURL    string
}

// NewSolanaClient creates a new Solana client for the given RPC endpoint.
func NewSolanaClient(rpcURL string) *SolanaClient {
	return &SolanaClient{
		rpcClient: rpc.New(rpcURL),
		rpcURL:    rpcURL,
	}
}

// RPCURL returns the endpoint the client talks to.
func (c *SolanaClient) RPCURL() string { return c.rpcURL }

// GetBalance gets SOL balance in lamports
func (c *SolanaClient) GetBalance(ctx context.Context, owner solana.PublicKey) (uint64, error) {
	balance, err := c.rpcClient.GetBalance(ctx, owner, rpc.CommitmentConfirmed)
	if err != nil {
		return 0, fmt.Errorf("failed to get SOL balance: %w", err)
	}
	return balance.Value, nil
}

// TransferSOL creates, signs and sends a SOL transfer transaction
func (c *SolanaClient) TransferSOL(ctx context.Context, signer Signer, to solana.PublicKey, lamports uint64) (string, error) {
	from := signer.PublicKey()

	// Get latest blockhash
	recent, err := c.rpcClient.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return "", fmt.Errorf("failed to get recent blockhash: %w", err)
	}

	// Create transfer instruction
	transferInstruction := system.NewTransferInstruction(
		lamports,
		from,
		to,
	).Build()

	// Create transaction
	tx, err := solana.NewTransaction(
		[]solana.Instruction{transferInstruction},
		recent.Value.Blockhash,
		solana.TransactionPayer(from),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create transaction: %w", err)
	}

	// Sign transaction
	if err := signer.SignTransaction(tx); err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	// Send transaction
	sig, err := c.rpcClient.SendTransactionWithOpts(
		ctx,
		tx,
		rpc.TransactionOpts{
			SkipPreflight:       false,
			PreflightCommitment: rpc.CommitmentFinalized,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	return sig.String(), nil
}

// SignatureInfo is one entry of an account's recent activity.
type SignatureInfo struct {
	Signature string
	Slot      uint64
	Timestamp time.Time
	Failed    bool
	Memo      string
}

// GetSignatures gets the most recent transaction signatures for owner, newest first.
func (c *SolanaClient) GetSignatures(ctx context.Context, owner solana.PublicKey, limit int) ([]SignatureInfo, error) {
	sigs, err := c.rpcClient.GetSignaturesForAddressWithOpts(
		ctx,
		owner,
		&rpc.GetSignaturesForAddressOpts{
			Limit: &limit,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get signatures: %w", err)
	}

	out := make([]SignatureInfo, 0, len(sigs))
	for _, sig := range sigs {
		info := SignatureInfo{
			Signature: sig.Signature.String(),
			Slot:      sig.Slot,
			Failed:    sig.Err != nil,
		}
		if sig.BlockTime != nil {
			info.Timestamp = time.Unix(int64(*sig.BlockTime), 0).UTC()
		}
		if sig.Memo != nil {
			info.Memo = *sig.Memo
		}
		out = append(out, info)
	}
	return out, nil
}
