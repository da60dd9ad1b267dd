// Package di provides dependency injection factories for creating application components.
package di

import (
	"crypto_dashboard/internal/feature/market/adapters/binance"
	infrahttp "crypto_dashboard/internal/platform/http"
)

// NewMarket creates a fully configured BinanceMarket with HTTP client.
func NewMarket() *binance.BinanceMarket {
	cfg := binance.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return binance.NewBinanceMarket(cfg, httpClient)
}
