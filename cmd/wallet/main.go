// @title        Seed Wallet API
// @version      1.0
// @description  Local Solana wallet: mnemonic backup, password-sealed storage and SOL transfers.
// @BasePath     /
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexZinkM/seed-wallet/internal/api"
	"github.com/AlexZinkM/seed-wallet/internal/client"
	"github.com/AlexZinkM/seed-wallet/internal/config"
	"github.com/AlexZinkM/seed-wallet/internal/crypto"
	"github.com/AlexZinkM/seed-wallet/internal/handler"
	"github.com/AlexZinkM/seed-wallet/internal/logger"
	"github.com/AlexZinkM/seed-wallet/internal/session"
	"github.com/AlexZinkM/seed-wallet/internal/store"
	"github.com/AlexZinkM/seed-wallet/solana"
)

func main() {
	// Load configuration
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Get()

	// Initialize logger
	log := logger.New(cfg.LogLevel, cfg.LogPretty)
	log.Info().
		Str("network", cfg.SolanaNetwork).
		Str("store", cfg.StoreBackend).
		Msg("Starting seed wallet")

	ctx := context.Background()

	st, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open wallet store")
	}
	defer st.Close()

	holder := session.NewHolder()
	defer holder.Logout()

	solanaClient := client.NewSolanaClient(cfg.RPCURL())
	walletHandler := handler.NewWalletHandler(handler.Deps{
		Store:         st,
		Vault:         crypto.NewVault(),
		Holder:        holder,
		Chain:         solanaClient,
		Prices:        client.NewCoinGeckoClient(cfg.CoinGeckoURL),
		Payer:         solana.NewPayer(solanaClient, time.Duration(cfg.PayCooldown)*time.Minute),
		MnemonicWords: cfg.MnemonicWords,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.SetupRouter(walletHandler, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", srv.Addr).Str("rpc", solanaClient.RPCURL()).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server stopped")
}
