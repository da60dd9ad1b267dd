package dto

import (
	"encoding/json"
	"fmt"
)

// klineFieldCount is the width of a /klines tuple. Binance appends a final
// "ignore" field, so rows are allowed to be longer.
const klineFieldCount = 11

// KlinesResponse represents the JSON response from /klines:
// an array of fixed-width tuples, one per candle.
type KlinesResponse [][]json.RawMessage

// Kline gives named access to one /klines tuple. Timestamps are millisecond
// epochs; prices and volumes stay numeric strings until the adapter converts
// them to decimals.
type Kline struct {
	OpenTime            int64
	Open                string
	High                string
	Low                 string
	Close               string
	Volume              string
	CloseTime           int64
	QuoteAssetVolume    string
	TradeCount          int64
	TakerBuyBaseVolume  string
	TakerBuyQuoteVolume string
}

// ParseKline maps one positional tuple into a Kline.
func ParseKline(row []json.RawMessage) (Kline, error) {
	var k Kline
	if len(row) < klineFieldCount {
		return k, fmt.Errorf("kline tuple has %d fields, want at least %d", len(row), klineFieldCount)
	}

	ints := map[int]*int64{0: &k.OpenTime, 6: &k.CloseTime, 8: &k.TradeCount}
	for idx, dst := range ints {
		if err := json.Unmarshal(row[idx], dst); err != nil {
			return k, fmt.Errorf("kline field %d: %w", idx, err)
		}
	}

	strs := map[int]*string{
		1: &k.Open, 2: &k.High, 3: &k.Low, 4: &k.Close, 5: &k.Volume,
		7: &k.QuoteAssetVolume, 9: &k.TakerBuyBaseVolume, 10: &k.TakerBuyQuoteVolume,
	}
	for idx, dst := range strs {
		if err := json.Unmarshal(row[idx], dst); err != nil {
			return k, fmt.Errorf("kline field %d: %w", idx, err)
		}
	}
	return k, nil
}
