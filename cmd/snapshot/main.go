// ダッシュボードの描画サイクルを1回だけ実行し、結果のツリーをJSONで
// 標準出力に書き出すワンショットジョブです。疎通確認やレスポンス形状の
// 確認に使います。
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"crypto_dashboard/internal/app/di"
	dashentity "crypto_dashboard/internal/feature/dashboard/domain/entity"
	dashusecase "crypto_dashboard/internal/feature/dashboard/usecase"
	marketusecase "crypto_dashboard/internal/feature/market/usecase"
	"crypto_dashboard/internal/shared/ratelimiter"
)

func main() {
	defaults := dashentity.DefaultQueryParameters()
	symbol := flag.String("symbol", defaults.Symbol, "trading pair")
	interval := flag.String("interval", defaults.Interval, "candle interval")
	limit := flag.Int("limit", defaults.Limit, "number of candles")
	flag.Parse()

	marketRepo := di.NewMarket()
	marketUC := marketusecase.NewMarketUsecase(marketRepo, ratelimiter.Unlimited())
	uc := dashusecase.NewDashboardUsecase(marketUC)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	tree, err := uc.RunCycle(ctx, dashentity.QueryParameters{
		Symbol:   *symbol,
		Interval: *interval,
		Limit:    *limit,
	})
	if err != nil {
		log.Fatal(err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tree); err != nil {
		log.Fatal(err)
	}
}
