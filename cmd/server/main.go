package main

import (
	"log"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"crypto_dashboard/internal/app/di"
	"crypto_dashboard/internal/app/router"
	"crypto_dashboard/internal/config"
	"crypto_dashboard/internal/feature/dashboard/refresh"
	dashhandler "crypto_dashboard/internal/feature/dashboard/transport/handler"
	dashusecase "crypto_dashboard/internal/feature/dashboard/usecase"
	marketusecase "crypto_dashboard/internal/feature/market/usecase"
	symboladapters "crypto_dashboard/internal/feature/symbols/adapters"
	symbolhandler "crypto_dashboard/internal/feature/symbols/transport/handler"
	symbolusecase "crypto_dashboard/internal/feature/symbols/usecase"
	"crypto_dashboard/internal/platform/cache"
	infraredis "crypto_dashboard/internal/platform/redis"
	"crypto_dashboard/internal/shared/ratelimiter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration:", err)
	}

	// Redis（任意）: 未設定ならキャッシュなしで毎サイクル新規フェッチ
	var rdb *redisv9.Client
	if addr := cfg.RedisAddr(); addr != "" {
		if tmp, err := infraredis.NewRedisClient(addr, cfg.RedisPassword); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository
	marketRepo := di.NewMarket()
	cachedMarketRepo := cache.NewCachingMarketRepository(rdb, cfg.KlineCacheMaxTTL, marketRepo, "klines")

	// Usecase
	limiter := ratelimiter.NewRateLimiter(cfg.UpstreamRateLimit, time.Minute)
	marketUC := marketusecase.NewMarketUsecase(cachedMarketRepo, limiter)
	dashboardUC := dashusecase.NewDashboardUsecase(marketUC)
	symbolUC := symbolusecase.NewSymbolUsecase(symboladapters.NewStaticCatalog())

	// Handler
	refresher := refresh.NewRefresher(dashboardUC, cfg.RefreshInterval)
	dashboardH := dashhandler.NewDashboardHandler(dashboardUC, refresher)
	symbolH := symbolhandler.NewSymbolHandler(symbolUC)

	// ルータ生成
	r := router.NewRouter(dashboardH, symbolH)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
