package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DerivedStatistics are aggregates computed fresh from the candle sequence
// of the current cycle. They are never cached between cycles.
type DerivedStatistics struct {
	RecordCount int       `json:"record_count"`
	FirstOpen   time.Time `json:"first_open"`
	LastOpen    time.Time `json:"last_open"`

	MeanClose   decimal.Decimal `json:"mean_close"`
	StdDevClose decimal.Decimal `json:"stddev_close"`
	MinLow      decimal.Decimal `json:"min_low"`
	MaxHigh     decimal.Decimal `json:"max_high"`

	MeanVolume   decimal.Decimal `json:"mean_volume"`
	MaxVolume    decimal.Decimal `json:"max_volume"`
	StdDevVolume decimal.Decimal `json:"stddev_volume"`
}
