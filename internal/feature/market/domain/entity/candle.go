// Package entity defines the domain models for the market feature.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Candle represents one OHLCV candlestick for a symbol and interval bucket,
// carrying the full set of fields Binance reports for a kline. Prices and
// volumes are decimals because the exchange serializes them as numeric
// strings and float64 would lose precision.
type Candle struct {
	OpenTime            time.Time       `json:"open_time"`
	CloseTime           time.Time       `json:"close_time"`
	Open                decimal.Decimal `json:"open"`
	High                decimal.Decimal `json:"high"`
	Low                 decimal.Decimal `json:"low"`
	Close               decimal.Decimal `json:"close"`
	Volume              decimal.Decimal `json:"volume"`
	QuoteAssetVolume    decimal.Decimal `json:"quote_asset_volume"`
	TradeCount          int64           `json:"trades"`
	TakerBuyBaseVolume  decimal.Decimal `json:"taker_buy_base"`
	TakerBuyQuoteVolume decimal.Decimal `json:"taker_buy_quote"`
}

// TickerSnapshot is a point-in-time summary of 24-hour price movement for a
// symbol. It is superseded by the next fetch and never merged or accumulated.
type TickerSnapshot struct {
	Symbol             string          `json:"symbol"`
	LastPrice          decimal.Decimal `json:"last_price"`
	PriceChange        decimal.Decimal `json:"price_change"`
	PriceChangePercent decimal.Decimal `json:"price_change_percent"`
	HighPrice          decimal.Decimal `json:"high_price"`
	LowPrice           decimal.Decimal `json:"low_price"`
	Volume             decimal.Decimal `json:"volume"`
}
