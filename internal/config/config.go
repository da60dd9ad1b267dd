// Package config はサーバー全体の設定を環境変数から読み込みます。
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds server-level configuration. Adapter-specific settings (the
// Binance base URL and timeout) stay with their adapter.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `envconfig:"DASHBOARD_ADDR" default:":8080"`

	// RefreshInterval is the auto-refresh period for streaming sessions.
	RefreshInterval time.Duration `envconfig:"DASHBOARD_REFRESH_INTERVAL" default:"10s"`

	// UpstreamRateLimit caps upstream calls per minute across all sessions.
	// Binance allows 1200 request weight per minute per IP.
	UpstreamRateLimit int `envconfig:"BINANCE_RATE_LIMIT" default:"1100"`

	// Redis is optional; with an empty host the kline cache is disabled and
	// every cycle fetches fresh data.
	RedisHost     string `envconfig:"REDIS_HOST"`
	RedisPort     string `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`

	// KlineCacheMaxTTL caps cache entry lifetime. Keep it below
	// RefreshInterval so auto-refresh cycles observe fresh data.
	KlineCacheMaxTTL time.Duration `envconfig:"KLINE_CACHE_MAX_TTL" default:"5s"`
}

// Load は .env（存在すれば）と環境変数から設定を組み立てます。
func Load() (Config, error) {
	// .envはローカル開発用。無くてもエラーにしない。
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// RedisAddr はRedisの接続アドレスを返します。未設定なら空文字列です。
func (c Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}
