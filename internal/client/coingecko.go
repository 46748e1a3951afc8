package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// CoinGeckoClient client for CoinGecko API
type CoinGeckoClient struct {
	baseURL string
	client  *http.Client
}

// NewCoinGeckoClient creates a new CoinGecko client
func NewCoinGeckoClient(baseURL string) *CoinGeckoClient {
	return &CoinGeckoClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// PriceResponse response from CoinGecko API
type PriceResponse struct {
	Solana struct {
		USD float64 `json:"usd"`
	} `json:"solana"`
}

// GetSOLtoUSDrate gets SOL to USD exchange rate
func (c *CoinGeckoClient) GetSOLtoUSDrate(ctx context.Context) (string, error) {
	url := fmt.Sprintf("%s/simple/price?ids=solana&vs_currencies=usd", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build rate request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to get rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to get rate: status %d", resp.StatusCode)
	}

	var priceResp PriceResponse
	if err := json.NewDecoder(resp.Body).Decode(&priceResp); err != nil {
		return "", fmt.Errorf("failed to decode rate: %w", err)
	}
	if priceResp.Solana.USD <= 0 {
		return "", fmt.Errorf("failed to get rate: empty price")
	}

	return strconv.FormatFloat(priceResp.Solana.USD, 'f', 2, 64), nil
}
