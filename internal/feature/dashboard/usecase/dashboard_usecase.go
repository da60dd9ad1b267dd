package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"crypto_dashboard/internal/feature/dashboard/chart"
	dashentity "crypto_dashboard/internal/feature/dashboard/domain/entity"
	marketentity "crypto_dashboard/internal/feature/market/domain/entity"
	marketusecase "crypto_dashboard/internal/feature/market/usecase"
)

const rawTableTailRows = 20

// MarketService は1サイクルで必要となる市場データ取得操作のインターフェイスです。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider.
type MarketService interface {
	GetCandles(ctx context.Context, symbol, interval string, limit int) ([]marketentity.Candle, error)
	GetCurrentPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
	Get24hTicker(ctx context.Context, symbol string) (*marketentity.TickerSnapshot, error)
}

// DashboardUsecase は1回の描画サイクルを実行するユースケースです。
// サイクルごとにすべてを取得・再計算し、サイクル間で状態を持ちません。
type DashboardUsecase struct {
	market MarketService
}

// NewDashboardUsecase はDashboardUsecaseの新しいインスタンスを生成します。
func NewDashboardUsecase(market MarketService) *DashboardUsecase {
	return &DashboardUsecase{market: market}
}

// RunCycle は1回の描画サイクルを実行し、描画ツリーを返します。
//
// 取得失敗は致命的ではありません: ティッカー系の失敗は警告とN/A表示に、
// ローソク足の失敗・空レスポンスは通知メッセージになり、エラーとして
// 返るのはパラメータが列挙に違反した場合のみです。
func (du *DashboardUsecase) RunCycle(ctx context.Context, params dashentity.QueryParameters) (*dashentity.RenderTree, error) {
	p := params.Normalize()
	if !marketentity.IsSupportedSymbol(p.Symbol) {
		return nil, fmt.Errorf("%w: %s", marketusecase.ErrUnsupportedSymbol, p.Symbol)
	}
	if !marketentity.IsSupportedInterval(p.Interval) {
		return nil, fmt.Errorf("%w: %s", marketusecase.ErrUnsupportedInterval, p.Interval)
	}

	tree := &dashentity.RenderTree{
		Symbol:      p.Symbol,
		Interval:    p.Interval,
		GeneratedAt: time.Now().UTC(),
	}

	// ティッカー取得の失敗はこのサイクルの他のセクションには波及させない。
	// 3つの呼び出しは仕様どおり逐次・ブロッキングで行う。
	price, priceErr := du.market.GetCurrentPrice(ctx, p.Symbol)
	if priceErr != nil {
		slog.Warn("current price fetch failed", "symbol", p.Symbol, "error", priceErr)
		tree.Warnings = append(tree.Warnings, fmt.Sprintf("Error fetching current price: %v", priceErr))
	}
	snap, snapErr := du.market.Get24hTicker(ctx, p.Symbol)
	if snapErr != nil {
		slog.Warn("24hr ticker fetch failed", "symbol", p.Symbol, "error", snapErr)
		tree.Warnings = append(tree.Warnings, fmt.Sprintf("Error fetching 24hr stats: %v", snapErr))
	}

	tree.Metrics = summaryMetrics(p.Symbol, price, priceErr == nil, snap)

	candles, err := du.market.GetCandles(ctx, p.Symbol, p.Interval, p.Limit)
	if err != nil {
		slog.Warn("kline fetch failed", "symbol", p.Symbol, "interval", p.Interval, "error", err)
		tree.Warnings = append(tree.Warnings, fmt.Sprintf("Error fetching data: %v", err))
		tree.Notice = dashentity.NoDataNotice
		return tree, nil
	}
	if len(candles) == 0 {
		tree.Notice = dashentity.NoDataNotice
		return tree, nil
	}

	stats := ComputeStatistics(candles)
	tree.Tabs = []dashentity.Tab{
		candlestickTab(p, candles),
		priceAnalysisTab(p, candles, price, priceErr == nil, snap),
		volumeTab(candles, stats),
		rawDataTab(candles, stats),
	}
	return tree, nil
}

// summaryMetrics はページ上部のメトリクス4枚を組み立てます。
// 取得に失敗した値は "N/A" で埋めます（後続セクションは通常どおり描画される）。
func summaryMetrics(symbol string, price decimal.Decimal, priceOK bool, snap *marketentity.TickerSnapshot) []dashentity.Metric {
	current := dashentity.Metric{Label: fmt.Sprintf("Current Price (%s)", symbol), Value: "N/A"}
	if priceOK {
		current.Value = usd(price, 2)
		// 騰落率は実値の価格に添えるときだけ表示する
		if snap != nil {
			current.Delta = snap.PriceChangePercent.StringFixed(2) + "%"
		}
	}

	volume := dashentity.Metric{Label: "24h Volume", Value: "N/A"}
	high := dashentity.Metric{Label: "24h High", Value: "N/A"}
	low := dashentity.Metric{Label: "24h Low", Value: "N/A"}
	if snap != nil {
		volume.Value = usd(snap.Volume, 0)
		high.Value = usd(snap.HighPrice, 2)
		low.Value = usd(snap.LowPrice, 2)
	}
	return []dashentity.Metric{current, volume, high, low}
}

func candlestickTab(p dashentity.QueryParameters, candles []marketentity.Candle) dashentity.Tab {
	title := fmt.Sprintf("%s Price Chart (%s)", p.Symbol, p.Interval)
	return dashentity.Tab{
		Title: "Candlestick Chart",
		Sections: []dashentity.Section{
			{Chart: chart.Candlestick(candles, title)},
		},
	}
}

func priceAnalysisTab(p dashentity.QueryParameters, candles []marketentity.Candle, price decimal.Decimal, priceOK bool, snap *marketentity.TickerSnapshot) dashentity.Tab {
	na := func(ok bool, v string) string {
		if !ok {
			return "N/A"
		}
		return v
	}

	rows := [][]string{
		{"Current Price", na(priceOK, usd(price, 2))},
		{"24h Change", na(snap != nil, tickerValue(snap, func(s *marketentity.TickerSnapshot) string { return usd(s.PriceChange, 2) }))},
		{"24h Change %", na(snap != nil, tickerValue(snap, func(s *marketentity.TickerSnapshot) string { return s.PriceChangePercent.StringFixed(2) + "%" }))},
		{"24h High", na(snap != nil, tickerValue(snap, func(s *marketentity.TickerSnapshot) string { return usd(s.HighPrice, 2) }))},
		{"24h Low", na(snap != nil, tickerValue(snap, func(s *marketentity.TickerSnapshot) string { return usd(s.LowPrice, 2) }))},
		{"24h Volume", na(snap != nil, tickerValue(snap, func(s *marketentity.TickerSnapshot) string { return usd(s.Volume, 0) }))},
	}

	return dashentity.Tab{
		Title: "Price Analysis",
		Sections: []dashentity.Section{
			{Chart: chart.PriceLine(candles, fmt.Sprintf("%s Price Trend", p.Symbol))},
			{
				Title: "Price Statistics",
				Table: &dashentity.Table{Columns: []string{"Metric", "Value"}, Rows: rows},
			},
		},
	}
}

func volumeTab(candles []marketentity.Candle, stats *dashentity.DerivedStatistics) dashentity.Tab {
	return dashentity.Tab{
		Title: "Volume Analysis",
		Sections: []dashentity.Section{
			{Chart: chart.Volume(candles)},
			{
				Metrics: []dashentity.Metric{
					{Label: "Average Volume", Value: usd(stats.MeanVolume, 2)},
					{Label: "Max Volume", Value: usd(stats.MaxVolume, 2)},
				},
			},
		},
	}
}

func rawDataTab(candles []marketentity.Candle, stats *dashentity.DerivedStatistics) dashentity.Tab {
	tail := candles
	if len(tail) > rawTableTailRows {
		tail = tail[len(tail)-rawTableTailRows:]
	}

	table := &dashentity.Table{
		Columns: []string{
			"Open Time", "Open", "High", "Low", "Close", "Volume",
			"Close Time", "Quote Volume", "Trades", "Taker Buy Base", "Taker Buy Quote",
		},
		Rows: make([][]string, 0, len(tail)),
	}
	for _, c := range tail {
		table.Rows = append(table.Rows, []string{
			c.OpenTime.Format("2006-01-02 15:04"),
			c.Open.String(),
			c.High.String(),
			c.Low.String(),
			c.Close.String(),
			c.Volume.String(),
			c.CloseTime.Format("2006-01-02 15:04"),
			c.QuoteAssetVolume.String(),
			fmt.Sprintf("%d", c.TradeCount),
			c.TakerBuyBaseVolume.String(),
			c.TakerBuyQuoteVolume.String(),
		})
	}

	dateRange := fmt.Sprintf("%s to %s",
		stats.FirstOpen.Format("2006-01-02"), stats.LastOpen.Format("2006-01-02"))

	return dashentity.Tab{
		Title: "Raw Data",
		Sections: []dashentity.Section{
			{Title: "Raw Market Data", Table: table},
			{
				Title: "Data Summary",
				Metrics: []dashentity.Metric{
					{Label: "Total Records", Value: fmt.Sprintf("%d", stats.RecordCount)},
					{Label: "Date Range", Value: dateRange},
					{Label: "Average Price", Value: usd(stats.MeanClose, 2)},
					{Label: "Price Std Dev", Value: usd(stats.StdDevClose, 2)},
					{Label: "Min Price", Value: usd(stats.MinLow, 2)},
					{Label: "Max Price", Value: usd(stats.MaxHigh, 2)},
				},
			},
		},
	}
}

func tickerValue(snap *marketentity.TickerSnapshot, f func(*marketentity.TickerSnapshot) string) string {
	if snap == nil {
		return ""
	}
	return f(snap)
}

func usd(d decimal.Decimal, places int32) string {
	return "$" + d.StringFixed(places)
}
