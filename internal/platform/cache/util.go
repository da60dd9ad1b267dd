package cache

import (
	"time"

	"crypto_dashboard/internal/feature/market/domain/entity"
)

// TTLUntilBucketClose は現在の時間足バケットが閉じるまでの残り時間を返します。
// バケットが閉じればローソク足は確定して新しい行が増えるため、
// それ以降キャッシュを保持する意味がありません。上限はmaxでクランプされ、
// 未対応の時間足にはmaxをそのまま返します。
func TTLUntilBucketClose(interval string, max time.Duration) time.Duration {
	d := entity.IntervalDuration(interval)
	if d <= 0 {
		return max
	}

	// バケット境界はエポックに揃っている
	elapsed := time.Duration(time.Now().UnixMilli()%d.Milliseconds()) * time.Millisecond
	remain := d - elapsed
	if remain <= 0 || remain > max {
		return max
	}
	return remain
}
