// Package store persists opaque records under fixed keys on the local device.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlexZinkM/seed-wallet/internal/config"

	goredis "github.com/redis/go-redis/v9"
)

// WalletDataKey is the key of the sealed mnemonic record.
const WalletDataKey = "walletData"

var (
	ErrNotFound = errors.New("record not found")
	ErrExists   = errors.New("record already exists")
)

// Store is a key-value blob store. Set never overwrites: records are immutable
// once written and must be deleted first.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open creates the backend selected in configuration.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StoreBackend {
	case config.StoreFile:
		return NewFileStore(cfg.WalletDir)
	case config.StoreSQLite:
		return OpenSQLiteStore(cfg.SQLitePath)
	case config.StoreRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return NewRedisStore(client), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
