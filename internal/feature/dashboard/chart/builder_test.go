package chart

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	dashentity "crypto_dashboard/internal/feature/dashboard/domain/entity"
	marketentity "crypto_dashboard/internal/feature/market/domain/entity"
)

func makeCandles(n int) []marketentity.Candle {
	base := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	out := make([]marketentity.Candle, 0, n)
	for i := 0; i < n; i++ {
		open := decimal.NewFromInt(int64(100 + i))
		out = append(out, marketentity.Candle{
			OpenTime:  base.Add(time.Duration(i) * time.Hour),
			CloseTime: base.Add(time.Duration(i+1) * time.Hour),
			Open:      open,
			High:      open.Add(decimal.NewFromInt(5)),
			Low:       open.Sub(decimal.NewFromInt(5)),
			Close:     open.Add(decimal.NewFromInt(2)),
			Volume:    decimal.NewFromInt(int64(10 * (i + 1))),
		})
	}
	return out
}

func TestCandlestick(t *testing.T) {
	t.Parallel()

	candles := makeCandles(5)
	spec := Candlestick(candles, "BTCUSDT Price Chart (1h)")

	if spec.Kind != dashentity.ChartKindCandlestick {
		t.Errorf("expected candlestick kind, got %s", spec.Kind)
	}
	if spec.Title != "BTCUSDT Price Chart (1h)" {
		t.Errorf("unexpected title %q", spec.Title)
	}

	// 入力1本につき可視化上の1点、入力順を保持
	if spec.PointCount() != len(candles) {
		t.Fatalf("expected %d points, got %d", len(candles), spec.PointCount())
	}
	for i, c := range candles {
		if spec.Times[i] != c.OpenTime.UnixMilli() {
			t.Errorf("point %d: time mismatch", i)
		}
		if !spec.Open[i].Equal(c.Open) || !spec.High[i].Equal(c.High) ||
			!spec.Low[i].Equal(c.Low) || !spec.Close[i].Equal(c.Close) {
			t.Errorf("point %d: OHLC mismatch", i)
		}
	}
}

func TestCandlestick_Deterministic(t *testing.T) {
	t.Parallel()

	candles := makeCandles(10)
	a := Candlestick(candles, "t")
	b := Candlestick(candles, "t")

	if !reflect.DeepEqual(a, b) {
		t.Error("expected identical specs for identical input")
	}
}

func TestVolume(t *testing.T) {
	t.Parallel()

	candles := makeCandles(4)
	spec := Volume(candles)

	if spec.Kind != dashentity.ChartKindBar {
		t.Errorf("expected bar kind, got %s", spec.Kind)
	}
	if spec.PointCount() != len(candles) {
		t.Fatalf("expected %d points, got %d", len(candles), spec.PointCount())
	}
	for i, c := range candles {
		if spec.Times[i] != c.OpenTime.UnixMilli() {
			t.Errorf("point %d: time mismatch", i)
		}
		if !spec.Values[i].Equal(c.Volume) {
			t.Errorf("point %d: volume mismatch", i)
		}
	}
}

func TestPriceLine(t *testing.T) {
	t.Parallel()

	candles := makeCandles(3)
	spec := PriceLine(candles, "BTCUSDT Price Trend")

	if spec.Kind != dashentity.ChartKindLine {
		t.Errorf("expected line kind, got %s", spec.Kind)
	}
	if spec.PointCount() != len(candles) {
		t.Fatalf("expected %d points, got %d", len(candles), spec.PointCount())
	}
	for i, c := range candles {
		if !spec.Values[i].Equal(c.Close) {
			t.Errorf("point %d: close mismatch", i)
		}
	}
}

func TestBuilders_EmptyInput(t *testing.T) {
	t.Parallel()

	if got := Candlestick(nil, "t").PointCount(); got != 0 {
		t.Errorf("expected 0 points, got %d", got)
	}
	if got := Volume(nil).PointCount(); got != 0 {
		t.Errorf("expected 0 points, got %d", got)
	}
	if got := PriceLine(nil, "t").PointCount(); got != 0 {
		t.Errorf("expected 0 points, got %d", got)
	}
}
