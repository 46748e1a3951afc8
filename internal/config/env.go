package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"

	NetworkDevnet  = "devnet"
	NetworkTestnet = "testnet"
	NetworkMainnet = "mainnet-beta"
)

// Config contains all configuration parameters for the application.
// Passwords are never part of configuration.
type Config struct {
	Host        string `envconfig:"HOST" default:"127.0.0.1"`
	Port        string `envconfig:"PORT" default:"8080"`
	PayCooldown int    `envconfig:"PAY_COOLDOWN_MINUTES" default:"4"`

	StoreBackend  string `envconfig:"WALLET_STORE" default:"file"`
	WalletDir     string `envconfig:"WALLET_DIR" default:".wallet"`
	SQLitePath    string `envconfig:"WALLET_SQLITE_PATH" default:"wallet.db"`
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	SolanaNetwork string `envconfig:"SOLANA_NETWORK" default:"devnet"`
	SolanaRPCURL  string `envconfig:"SOLANA_RPC_URL"`
	CoinGeckoURL  string `envconfig:"COINGECKO_URL" default:"https://api.coingecko.com/api/v3"`

	MnemonicWords int    `envconfig:"MNEMONIC_WORDS" default:"12"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	LogPretty     bool   `envconfig:"LOG_PRETTY" default:"false"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c, err := Load()
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// Load reads and validates configuration without touching the global instance.
func Load() (*Config, error) {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case StoreFile, StoreSQLite, StoreRedis:
	default:
		return fmt.Errorf("WALLET_STORE must be one of file, sqlite, redis (got %q)", c.StoreBackend)
	}
	switch c.SolanaNetwork {
	case NetworkDevnet, NetworkTestnet, NetworkMainnet:
	default:
		return fmt.Errorf("SOLANA_NETWORK must be devnet, testnet or mainnet-beta (got %q)", c.SolanaNetwork)
	}
	switch c.MnemonicWords {
	case 12, 15, 18, 21, 24:
	default:
		return fmt.Errorf("MNEMONIC_WORDS must be 12, 15, 18, 21 or 24 (got %d)", c.MnemonicWords)
	}
	if c.PayCooldown < 0 {
		return errors.New("PAY_COOLDOWN_MINUTES cannot be negative")
	}
	return nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

// RPCURL returns the Solana RPC endpoint: SOLANA_RPC_URL if set, otherwise the public
// endpoint of SOLANA_NETWORK.
func (c *Config) RPCURL() string {
	if c.SolanaRPCURL != "" {
		return c.SolanaRPCURL
	}
	switch c.SolanaNetwork {
	case NetworkMainnet:
		return "https://api.mainnet-beta.solana.com"
	case NetworkTestnet:
		return "https://api.testnet.solana.com"
	default:
		return "https://api.devnet.solana.com"
	}
}

// PromptPassword prompts the user for the wallet password in the terminal.
// The password is read without echoing (hidden input).
// Caller must zero the returned slice after use for security.
func PromptPassword(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the tool interactively to enter password")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}

	passwordBytes := make([]byte, len(raw))
	copy(passwordBytes, raw)
	clear(raw)
	return passwordBytes, nil
}
