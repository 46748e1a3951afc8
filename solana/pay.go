package solana

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/AlexZinkM/seed-wallet/internal/client"
	"github.com/AlexZinkM/seed-wallet/internal/common"
	"github.com/AlexZinkM/seed-wallet/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	solFeeLamports = 5000 // Fee in lamports (0.000005 SOL)
)

// Payer sends SOL and enforces a cooldown between successful sends.
type Payer struct {
	chain   Chain
	mu      sync.Mutex
	limiter *rate.Limiter
	now     func() time.Time
}

// NewPayer creates a Payer. A zero cooldown disables the limit.
func NewPayer(chain Chain, cooldown time.Duration) *Payer {
	limit := rate.Inf
	if cooldown > 0 {
		limit = rate.Every(cooldown)
	}
	return &Payer{
		chain:   chain,
		limiter: rate.NewLimiter(limit, 1),
		now:     time.Now,
	}
}

// SendSOL sends amount SOL from signer to toAddress and returns the transaction signature.
func (p *Payer) SendSOL(ctx context.Context, signer client.Signer, toAddress, amount string) (*model.PayResponse, error) {
	// Validate recipient address
	to, err := solana.PublicKeyFromBase58(toAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	// Convert amount to lamports (string-based, no float precision loss)
	lamports, err := common.SOLToLamports(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	if lamports == 0 {
		return nil, fmt.Errorf("%w: must be greater than zero", ErrInvalidAmount)
	}

	// Check cooldown
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	r := p.limiter.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return nil, fmt.Errorf("%w, please wait %v", ErrCooldown, delay.Round(time.Second))
	}

	// Check balance
	balance, err := p.chain.GetBalance(ctx, signer.PublicKey())
	if err != nil {
		r.CancelAt(now)
		return nil, fmt.Errorf("failed to check balance: %w", err)
	}
	if balance < lamports || balance-lamports < solFeeLamports {
		r.CancelAt(now)
		return nil, fmt.Errorf("%w: need %s SOL plus %s SOL fee, have %s SOL", ErrInsufficientFunds,
			common.LamportsToSOL(lamports), common.LamportsToSOL(solFeeLamports), common.LamportsToSOL(balance))
	}

	// Create and send transaction
	txID, err := p.chain.TransferSOL(ctx, signer, to, lamports)
	if err != nil {
		r.CancelAt(now)
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("to", to.String()).
		Uint64("lamports", lamports).
		Str("txId", txID).
		Msg("SOL sent")

	return &model.PayResponse{
		TxID: txID,
	}, nil
}
