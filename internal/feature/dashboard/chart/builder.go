// Package chart builds declarative chart specifications from candle data.
// すべての関数は純粋で、同じ入力からは常に同じ仕様を生成します。
// 集計やリサンプリングは行わず、入力ローソク足1本が可視化上の1点に対応します。
package chart

import (
	"github.com/shopspring/decimal"

	dashentity "crypto_dashboard/internal/feature/dashboard/domain/entity"
	marketentity "crypto_dashboard/internal/feature/market/domain/entity"
)

const (
	candlestickHeight = 500
	volumeHeight      = 300
	lineHeight        = 400
)

// Candlestick はローソク足チャートの仕様を生成します。
func Candlestick(candles []marketentity.Candle, title string) *dashentity.ChartSpec {
	spec := &dashentity.ChartSpec{
		Kind:   dashentity.ChartKindCandlestick,
		Title:  title,
		XTitle: "Time",
		YTitle: "Price (USDT)",
		Height: candlestickHeight,
		Times:  make([]int64, 0, len(candles)),
		Open:   make([]decimal.Decimal, 0, len(candles)),
		High:   make([]decimal.Decimal, 0, len(candles)),
		Low:    make([]decimal.Decimal, 0, len(candles)),
		Close:  make([]decimal.Decimal, 0, len(candles)),
	}
	for _, c := range candles {
		spec.Times = append(spec.Times, c.OpenTime.UnixMilli())
		spec.Open = append(spec.Open, c.Open)
		spec.High = append(spec.High, c.High)
		spec.Low = append(spec.Low, c.Low)
		spec.Close = append(spec.Close, c.Close)
	}
	return spec
}

// Volume は出来高の棒グラフ仕様を生成します。
func Volume(candles []marketentity.Candle) *dashentity.ChartSpec {
	spec := &dashentity.ChartSpec{
		Kind:   dashentity.ChartKindBar,
		Title:  "Trading Volume",
		XTitle: "Time",
		YTitle: "Volume",
		Height: volumeHeight,
		Times:  make([]int64, 0, len(candles)),
		Values: make([]decimal.Decimal, 0, len(candles)),
	}
	for _, c := range candles {
		spec.Times = append(spec.Times, c.OpenTime.UnixMilli())
		spec.Values = append(spec.Values, c.Volume)
	}
	return spec
}

// PriceLine は終値の推移を折れ線グラフ仕様として生成します。
func PriceLine(candles []marketentity.Candle, title string) *dashentity.ChartSpec {
	spec := &dashentity.ChartSpec{
		Kind:   dashentity.ChartKindLine,
		Title:  title,
		XTitle: "Time",
		YTitle: "Price (USDT)",
		Height: lineHeight,
		Times:  make([]int64, 0, len(candles)),
		Values: make([]decimal.Decimal, 0, len(candles)),
	}
	for _, c := range candles {
		spec.Times = append(spec.Times, c.OpenTime.UnixMilli())
		spec.Values = append(spec.Values, c.Close)
	}
	return spec
}
