// Package binance provides a client for the Binance public market data API.
package binance

import (
	"os"
	"time"
)

// DefaultBaseURL is the production Binance REST endpoint.
const DefaultBaseURL = "https://api.binance.com/api/v3"

// Config holds configuration for the Binance API client.
type Config struct {
	BaseURL string        // Base URL for the API (e.g., "https://api.binance.com/api/v3")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Binance configuration from environment variables.
// The public market endpoints need no API key.
func LoadConfig() Config {
	base := os.Getenv("BINANCE_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return Config{
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
