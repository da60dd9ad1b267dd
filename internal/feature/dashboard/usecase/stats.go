// Package usecase はダッシュボードの描画サイクルのビジネスロジックを実装します。
package usecase

import (
	"math"

	"github.com/shopspring/decimal"

	dashentity "crypto_dashboard/internal/feature/dashboard/domain/entity"
	marketentity "crypto_dashboard/internal/feature/market/domain/entity"
)

// ComputeStatistics は現在のローソク足列から集計値を新たに計算します。
// 平均と標準偏差は入力順序に依存しません。空の入力にはnilを返します。
func ComputeStatistics(candles []marketentity.Candle) *dashentity.DerivedStatistics {
	if len(candles) == 0 {
		return nil
	}

	closes := make([]decimal.Decimal, 0, len(candles))
	volumes := make([]decimal.Decimal, 0, len(candles))
	lows := make([]decimal.Decimal, 0, len(candles))
	highs := make([]decimal.Decimal, 0, len(candles))

	first, last := candles[0].OpenTime, candles[0].OpenTime
	for _, c := range candles {
		closes = append(closes, c.Close)
		volumes = append(volumes, c.Volume)
		lows = append(lows, c.Low)
		highs = append(highs, c.High)
		if c.OpenTime.Before(first) {
			first = c.OpenTime
		}
		if c.OpenTime.After(last) {
			last = c.OpenTime
		}
	}

	meanClose := decimal.Avg(closes[0], closes[1:]...)
	meanVolume := decimal.Avg(volumes[0], volumes[1:]...)

	return &dashentity.DerivedStatistics{
		RecordCount:  len(candles),
		FirstOpen:    first,
		LastOpen:     last,
		MeanClose:    meanClose,
		StdDevClose:  stdDev(closes, meanClose),
		MinLow:       decimal.Min(lows[0], lows[1:]...),
		MaxHigh:      decimal.Max(highs[0], highs[1:]...),
		MeanVolume:   meanVolume,
		MaxVolume:    decimal.Max(volumes[0], volumes[1:]...),
		StdDevVolume: stdDev(volumes, meanVolume),
	}
}

// stdDev は標本標準偏差（n-1）を計算します。
// decimalには平方根がないため、この計算のみfloat64を経由します。
func stdDev(values []decimal.Decimal, mean decimal.Decimal) decimal.Decimal {
	if len(values) < 2 {
		return decimal.Zero
	}
	m := mean.InexactFloat64()
	var sum float64
	for _, v := range values {
		d := v.InexactFloat64() - m
		sum += d * d
	}
	return decimal.NewFromFloat(math.Sqrt(sum / float64(len(values)-1)))
}
