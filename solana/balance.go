package solana

import (
	"context"
	"fmt"
	"strconv"

	"github.com/AlexZinkM/seed-wallet/internal/client"
	"github.com/AlexZinkM/seed-wallet/internal/common"
	"github.com/AlexZinkM/seed-wallet/internal/model"

	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"
)

// Chain is the subset of the Solana RPC the wallet operations need.
type Chain interface {
	GetBalance(ctx context.Context, owner solana.PublicKey) (uint64, error)
	TransferSOL(ctx context.Context, signer client.Signer, to solana.PublicKey, lamports uint64) (string, error)
	GetSignatures(ctx context.Context, owner solana.PublicKey, limit int) ([]client.SignatureInfo, error)
}

// PriceSource gives the SOL/USD rate as a decimal string.
type PriceSource interface {
	GetSOLtoUSDrate(ctx context.Context) (string, error)
}

// GetBalance gets wallet balance. The USD fields are left empty when prices is nil
// or the rate lookup fails; balance is still returned.
func GetBalance(ctx context.Context, chain Chain, prices PriceSource, owner solana.PublicKey) (*model.BalanceResponse, error) {
	lamports, err := chain.GetBalance(ctx, owner)
	if err != nil {
		return nil, err
	}

	resp := &model.BalanceResponse{
		Address:  owner.String(),
		SOL:      common.LamportsToSOL(lamports),
		Lamports: lamports,
	}
	if prices == nil {
		return resp, nil
	}

	rate, err := prices.GetSOLtoUSDrate(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("SOL/USD rate unavailable")
		return resp, nil
	}

	// Calculate USD (use float only for display, not for critical operations)
	solFloat, _ := strconv.ParseFloat(resp.SOL, 64)
	rateFloat, _ := strconv.ParseFloat(rate, 64)
	resp.Rate = rate
	resp.USD = fmt.Sprintf("%.2f", solFloat*rateFloat)
	return resp, nil
}
