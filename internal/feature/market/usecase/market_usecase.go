package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"crypto_dashboard/internal/feature/market/domain/entity"
	"crypto_dashboard/internal/shared/ratelimiter"
)

const (
	// DefaultInterval はローソク足クエリのデフォルト時間足です。
	DefaultInterval = entity.Interval1H
	// DefaultLimit はデフォルトのローソク足返却件数です。
	DefaultLimit = 500
	// MaxLimit はBinance /klines が受け付ける最大件数です。
	MaxLimit = 1000
)

// MarketRepository は取引所の公開市場データを取得するリポジトリのインターフェイスです。
// 外部APIの実装を抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketRepository interface {
	GetKlines(ctx context.Context, symbol, interval string, limit int) ([]entity.Candle, error)
	GetCurrentPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
	Get24hTicker(ctx context.Context, symbol string) (*entity.TickerSnapshot, error)
}

// MarketUsecase は市場データ取得のユースケースを定義します。
// 銘柄・時間足の列挙チェックと件数のクランプを行い、
// 上流への呼び出し頻度をレートリミッターで抑制します。
type MarketUsecase struct {
	market      MarketRepository
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewMarketUsecase はMarketUsecaseの新しいインスタンスを生成します。
func NewMarketUsecase(market MarketRepository, rl ratelimiter.RateLimiterInterface) *MarketUsecase {
	return &MarketUsecase{market: market, rateLimiter: rl}
}

// GetCandles は指定された銘柄と時間足のローソク足データを取得します。
// limitは [1, MaxLimit] にクランプされ、0以下はデフォルト値になります。
func (mu *MarketUsecase) GetCandles(ctx context.Context, symbol, interval string, limit int) ([]entity.Candle, error) {
	if interval == "" {
		interval = DefaultInterval
	}
	if err := validate(symbol, interval); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	mu.rateLimiter.WaitIfNeeded()
	return mu.market.GetKlines(ctx, symbol, interval, limit)
}

// GetCurrentPrice は指定された銘柄の現在価格を取得します。
func (mu *MarketUsecase) GetCurrentPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	if !entity.IsSupportedSymbol(symbol) {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrUnsupportedSymbol, symbol)
	}
	mu.rateLimiter.WaitIfNeeded()
	return mu.market.GetCurrentPrice(ctx, symbol)
}

// Get24hTicker は指定された銘柄の24時間サマリーを取得します。
func (mu *MarketUsecase) Get24hTicker(ctx context.Context, symbol string) (*entity.TickerSnapshot, error) {
	if !entity.IsSupportedSymbol(symbol) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSymbol, symbol)
	}
	mu.rateLimiter.WaitIfNeeded()
	return mu.market.Get24hTicker(ctx, symbol)
}

func validate(symbol, interval string) error {
	if !entity.IsSupportedSymbol(symbol) {
		return fmt.Errorf("%w: %s", ErrUnsupportedSymbol, symbol)
	}
	if !entity.IsSupportedInterval(interval) {
		return fmt.Errorf("%w: %s", ErrUnsupportedInterval, interval)
	}
	return nil
}
