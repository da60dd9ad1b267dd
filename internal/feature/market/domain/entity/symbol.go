package entity

import "time"

// ダッシュボードで選択可能な銘柄と時間足の固定リストです。
// Binance自体はもっと多くを受け付けますが、この一覧の外はバリデーションで弾きます。
const (
	Interval1M  = "1m"
	Interval5M  = "5m"
	Interval15M = "15m"
	Interval1H  = "1h"
	Interval4H  = "4h"
	Interval1D  = "1d"
)

// SupportedSymbols は対応する取引ペアの一覧を返します（表示順）。
func SupportedSymbols() []string {
	return []string{"BTCUSDT", "ETHUSDT", "ADAUSDT", "DOTUSDT", "LINKUSDT"}
}

// SupportedIntervals は対応する時間足の一覧を返します（短い順）。
func SupportedIntervals() []string {
	return []string{
		Interval1M,
		Interval5M,
		Interval15M,
		Interval1H,
		Interval4H,
		Interval1D,
	}
}

// IsSupportedSymbol は銘柄が対応一覧に含まれるかを判定します。
func IsSupportedSymbol(symbol string) bool {
	for _, s := range SupportedSymbols() {
		if s == symbol {
			return true
		}
	}
	return false
}

// IsSupportedInterval は時間足が対応一覧に含まれるかを判定します。
func IsSupportedInterval(interval string) bool {
	for _, i := range SupportedIntervals() {
		if i == interval {
			return true
		}
	}
	return false
}

var intervalDurations = map[string]time.Duration{
	Interval1M:  time.Minute,
	Interval5M:  5 * time.Minute,
	Interval15M: 15 * time.Minute,
	Interval1H:  time.Hour,
	Interval4H:  4 * time.Hour,
	Interval1D:  24 * time.Hour,
}

// IntervalDuration は時間足文字列を time.Duration に変換します。
// 未対応の時間足には 0 を返します。
func IntervalDuration(interval string) time.Duration {
	return intervalDurations[interval]
}
