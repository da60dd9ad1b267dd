// Package dto defines data transfer objects for the Binance API responses.
package dto

// PriceResponse represents the JSON response from /ticker/price.
type PriceResponse struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// Ticker24hResponse represents the JSON response from /ticker/24hr.
// Only the fields the dashboard consumes are mapped.
type Ticker24hResponse struct {
	Symbol             string `json:"symbol"`
	PriceChange        string `json:"priceChange"`
	PriceChangePercent string `json:"priceChangePercent"`
	LastPrice          string `json:"lastPrice"`
	HighPrice          string `json:"highPrice"`
	LowPrice           string `json:"lowPrice"`
	Volume             string `json:"volume"`
}

// ErrorResponse represents the JSON error body Binance returns alongside
// non-2xx statuses.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"msg"`
}
