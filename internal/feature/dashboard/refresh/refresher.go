// Package refresh は自動更新セッションの実行ループを提供します。
//
// ブロッキングスリープでサイクルを回すのではなく、contextでキャンセル可能な
// ティッカー駆動のループにします。セッションはcontextの破棄と同時に止まり、
// 更新間隔を待ち切る必要はありません。
package refresh

import (
	"context"
	"log/slog"
	"time"

	dashentity "crypto_dashboard/internal/feature/dashboard/domain/entity"
)

// DefaultInterval は自動更新のデフォルト間隔です。
const DefaultInterval = 10 * time.Second

// CycleRunner は1回の描画サイクルを実行するインターフェイスです。
// Following Go convention: interfaces are defined by the consumer (refresh loop).
type CycleRunner interface {
	RunCycle(ctx context.Context, params dashentity.QueryParameters) (*dashentity.RenderTree, error)
}

// Sink は生成された描画ツリーの届け先です。falseを返すとループを止めます。
type Sink func(*dashentity.RenderTree) bool

// Refresher は固定間隔でサイクルを再実行するループです。
// サイクル間で状態は持たず、毎回ゼロから取得・再計算します。
type Refresher struct {
	runner   CycleRunner
	interval time.Duration
}

// NewRefresher はRefresherの新しいインスタンスを生成します。
// intervalが0以下の場合はDefaultIntervalを使用します。
func NewRefresher(runner CycleRunner, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Refresher{runner: runner, interval: interval}
}

// Interval は設定された更新間隔を返します。
func (r *Refresher) Interval() time.Duration {
	return r.interval
}

// Run はまず1回サイクルを実行し、その後はcontextがキャンセルされるまで
// 更新間隔ごとに同じパラメータでサイクルを再実行してsinkに渡します。
// キャッシュした結果の再利用はなく、毎回新たにフェッチします。
// パラメータが不正な場合は最初のサイクルのエラーを返します。
func (r *Refresher) Run(ctx context.Context, params dashentity.QueryParameters, sink Sink) error {
	tree, err := r.runner.RunCycle(ctx, params)
	if err != nil {
		return err
	}
	if !sink(tree) {
		return nil
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			tree, err := r.runner.RunCycle(ctx, params)
			if err != nil {
				// 最初のサイクルが通った後の検証エラーは起こらないはずだが、
				// 念のためセッションを終了させる
				slog.Error("refresh cycle failed", "symbol", params.Symbol, "error", err)
				return err
			}
			if !sink(tree) {
				return nil
			}
		}
	}
}
