package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"crypto_dashboard/internal/feature/market/adapters/binance/dto"
	"crypto_dashboard/internal/feature/market/domain/entity"
	"crypto_dashboard/internal/feature/market/usecase"
)

// BinanceMarket はBinanceの公開REST APIから市場データを取得するMarketRepository実装です。
// リトライは行わず、1回の呼び出しが1回のHTTPラウンドトリップに対応します。
type BinanceMarket struct {
	cfg    Config
	client *http.Client
}

// BinanceMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*BinanceMarket)(nil)

// NewBinanceMarket は指定された設定とHTTPクライアントでBinanceMarketの新しいインスタンスを生成します。
func NewBinanceMarket(cfg Config, client *http.Client) *BinanceMarket {
	return &BinanceMarket{cfg: cfg, client: client}
}

// GetKlines は /klines エンドポイントからローソク足データを取得し、
// entity.Candleのスライスとして返します。空のレスポンスは空スライスを返します（エラーではない）。
func (b *BinanceMarket) GetKlines(ctx context.Context, symbol, interval string, limit int) ([]entity.Candle, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("interval", interval)
	q.Set("limit", strconv.Itoa(limit))

	body, err := b.get(ctx, "/klines", q)
	if err != nil {
		return nil, err
	}

	var rows dto.KlinesResponse
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode klines: %w", err)
	}

	candles := make([]entity.Candle, 0, len(rows))
	for i, row := range rows {
		k, err := dto.ParseKline(row)
		if err != nil {
			return nil, fmt.Errorf("klines row %d: %w", i, err)
		}
		c, err := toCandle(k)
		if err != nil {
			return nil, fmt.Errorf("klines row %d: %w", i, err)
		}
		candles = append(candles, c)
	}
	return candles, nil
}

// GetCurrentPrice は /ticker/price エンドポイントから現在価格を取得します。
func (b *BinanceMarket) GetCurrentPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	q := url.Values{}
	q.Set("symbol", symbol)

	body, err := b.get(ctx, "/ticker/price", q)
	if err != nil {
		return decimal.Zero, err
	}

	var res dto.PriceResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return decimal.Zero, fmt.Errorf("decode ticker price: %w", err)
	}
	p, err := decimal.NewFromString(res.Price)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse price %q: %w", res.Price, err)
	}
	return p, nil
}

// Get24hTicker は /ticker/24hr エンドポイントから24時間の騰落サマリーを取得します。
func (b *BinanceMarket) Get24hTicker(ctx context.Context, symbol string) (*entity.TickerSnapshot, error) {
	q := url.Values{}
	q.Set("symbol", symbol)

	body, err := b.get(ctx, "/ticker/24hr", q)
	if err != nil {
		return nil, err
	}

	var res dto.Ticker24hResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode 24hr ticker: %w", err)
	}

	snap := &entity.TickerSnapshot{Symbol: res.Symbol}
	fields := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"lastPrice", res.LastPrice, &snap.LastPrice},
		{"priceChange", res.PriceChange, &snap.PriceChange},
		{"priceChangePercent", res.PriceChangePercent, &snap.PriceChangePercent},
		{"highPrice", res.HighPrice, &snap.HighPrice},
		{"lowPrice", res.LowPrice, &snap.LowPrice},
		{"volume", res.Volume, &snap.Volume},
	}
	for _, f := range fields {
		d, err := decimal.NewFromString(f.raw)
		if err != nil {
			return nil, fmt.Errorf("parse %s %q: %w", f.name, f.raw, err)
		}
		*f.dst = d
	}
	return snap, nil
}

// get はGETリクエストを1回実行し、成功時はレスポンスボディを返します。
// 失敗はusecaseのエラー分類（ErrTransport / ErrUpstreamStatus）にラップされます。
func (b *BinanceMarket) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	u := fmt.Sprintf("%s%s?%s", b.cfg.BaseURL, path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrTransport, err)
	}

	res, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrTransport, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrTransport, err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		// Binanceはエラー詳細を {"code":..,"msg":".."} で返す
		var apiErr dto.ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("%w: http %d: %s", usecase.ErrUpstreamStatus, res.StatusCode, apiErr.Message)
		}
		return nil, fmt.Errorf("%w: http %d", usecase.ErrUpstreamStatus, res.StatusCode)
	}
	return body, nil
}

// toCandle はワイヤー形式のKlineをドメインエンティティに変換します。
func toCandle(k dto.Kline) (entity.Candle, error) {
	var c entity.Candle
	c.OpenTime = time.UnixMilli(k.OpenTime).UTC()
	c.CloseTime = time.UnixMilli(k.CloseTime).UTC()
	c.TradeCount = k.TradeCount

	fields := []struct {
		name string
		raw  string
		dst  *decimal.Decimal
	}{
		{"open", k.Open, &c.Open},
		{"high", k.High, &c.High},
		{"low", k.Low, &c.Low},
		{"close", k.Close, &c.Close},
		{"volume", k.Volume, &c.Volume},
		{"quote asset volume", k.QuoteAssetVolume, &c.QuoteAssetVolume},
		{"taker buy base", k.TakerBuyBaseVolume, &c.TakerBuyBaseVolume},
		{"taker buy quote", k.TakerBuyQuoteVolume, &c.TakerBuyQuoteVolume},
	}
	for _, f := range fields {
		d, err := decimal.NewFromString(f.raw)
		if err != nil {
			return c, fmt.Errorf("parse %s %q: %w", f.name, f.raw, err)
		}
		*f.dst = d
	}
	return c, nil
}
