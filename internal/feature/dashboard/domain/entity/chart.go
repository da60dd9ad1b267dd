package entity

import "github.com/shopspring/decimal"

// ChartKind identifies the visualization type of a ChartSpec.
type ChartKind string

const (
	ChartKindCandlestick ChartKind = "candlestick"
	ChartKindBar         ChartKind = "bar"
	ChartKindLine        ChartKind = "line"
)

// ChartSpec is a declarative chart description handed to the rendering
// host. Series data is column-oriented: Times lines up index-for-index
// with the OHLC columns (candlestick) or Values (bar/line). One entry per
// input candle, input order preserved.
type ChartSpec struct {
	Kind   ChartKind `json:"kind"`
	Title  string    `json:"title"`
	XTitle string    `json:"x_title"`
	YTitle string    `json:"y_title"`
	Height int       `json:"height"`

	// Times is the x axis as millisecond epochs.
	Times []int64 `json:"times"`

	Open  []decimal.Decimal `json:"open,omitempty"`
	High  []decimal.Decimal `json:"high,omitempty"`
	Low   []decimal.Decimal `json:"low,omitempty"`
	Close []decimal.Decimal `json:"close,omitempty"`

	Values []decimal.Decimal `json:"values,omitempty"`
}

// PointCount returns the number of visual points in the spec.
func (s *ChartSpec) PointCount() int {
	return len(s.Times)
}
