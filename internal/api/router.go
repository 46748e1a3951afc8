package api

import (
	"net/http"

	_ "github.com/AlexZinkM/seed-wallet/docs"
	"github.com/AlexZinkM/seed-wallet/internal/handler"

	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter(walletHandler *handler.WalletHandler, log zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Wallet lifecycle
	mux.HandleFunc("/wallet", walletHandler.Reset)
	mux.HandleFunc("/wallet/create", walletHandler.Create)
	mux.HandleFunc("/wallet/create/verify", walletHandler.Verify)
	mux.HandleFunc("/wallet/unlock", walletHandler.Unlock)
	mux.HandleFunc("/wallet/lock", walletHandler.Lock)

	// Unlocked account
	mux.HandleFunc("/wallet/address", walletHandler.Address)
	mux.HandleFunc("/wallet/balance", walletHandler.GetBalance)
	mux.HandleFunc("/wallet/send", walletHandler.Send)
	mux.HandleFunc("/wallet/transactions", walletHandler.Transactions)

	return Chain(mux, RequestID(), Logging(log), Recover())
}
