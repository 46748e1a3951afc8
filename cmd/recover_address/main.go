// Offline check of a stored wallet: decrypt with the password, derive, print the address.
// Usage: go run ./cmd/recover_address -account 0
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/AlexZinkM/seed-wallet/internal/config"
	"github.com/AlexZinkM/seed-wallet/internal/crypto"
	"github.com/AlexZinkM/seed-wallet/internal/store"
	"github.com/AlexZinkM/seed-wallet/solana"
)

func main() {
	account := flag.Uint("account", 0, "account index")
	flag.Parse()

	if *account > math.MaxUint32 {
		fmt.Fprintln(os.Stderr, solana.ErrInvalidAccountIndex)
		os.Exit(2)
	}
	if err := run(uint32(*account)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(account uint32) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()
	st, err := store.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	password, err := config.PromptPassword("Enter wallet password: ")
	if err != nil {
		return err
	}
	defer clear(password)

	wallet, err := solana.Unlock(ctx, st, crypto.NewVault(), password, account)
	if err != nil {
		return err
	}
	defer wallet.Lock()

	fmt.Println(wallet.Address())
	return nil
}
