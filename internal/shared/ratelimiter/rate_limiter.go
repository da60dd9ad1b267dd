package ratelimiter

import (
	"log/slog"
	"sync"
	"time"
)

// RateLimiterInterface は、API呼び出しなどの操作の頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiterは、API呼び出しなどの操作の頻度を制限します。
// Binanceの公開APIはIP単位のリクエストウェイト制限があるため、
// 自動更新セッションが重なっても上限を踏み抜かないよう上流呼び出しを抑制します。
// 1つのインスタンスを全リクエストとWebSocketセッションで共有するため、
// ウィンドウのカウントはミューテックスで保護します。
type RateLimiter struct {
	limit    int           // interval あたりの上限
	interval time.Duration // どの単位でリセットするか

	mu        sync.Mutex
	count     int
	lastReset time.Time
}

// NewRateLimiterは新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeededはレートリミットの上限に達しているかを確認し、必要であれば待機します。
// スリープはロックの外で行い、抑制された呼び出しが他のセッションまで
// 直列化しないようにします。
func (rl *RateLimiter) WaitIfNeeded() {
	sleep := rl.reserve()
	if sleep > 0 {
		slog.Warn("rate limit reached, sleeping", "limit", rl.limit, "sleep", sleep)
		time.Sleep(sleep)
	}
}

// reserve はウィンドウの枠を1つ消費し、上限超過時に待つべき時間を返します。
func (rl *RateLimiter) reserve() time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	// interval を過ぎたらカウントリセット
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		sleep := rl.interval - now.Sub(rl.lastReset)
		// 次のウィンドウの先頭枠として予約する
		rl.count = 1
		rl.lastReset = now.Add(sleep)
		if sleep > 0 {
			return sleep
		}
	}
	return 0
}

// Unlimited は制限を行わないリミッターを返します（テストや一回限りのジョブ用）。
func Unlimited() RateLimiterInterface {
	return noop{}
}

type noop struct{}

func (noop) WaitIfNeeded() {}
