package cache

import (
	"testing"
	"time"

	"crypto_dashboard/internal/feature/market/domain/entity"
)

func TestTTLUntilBucketClose_UnknownInterval(t *testing.T) {
	t.Parallel()

	max := 5 * time.Second
	if got := TTLUntilBucketClose("9x", max); got != max {
		t.Errorf("expected max %v for unknown interval, got %v", max, got)
	}
	if got := TTLUntilBucketClose("", max); got != max {
		t.Errorf("expected max %v for empty interval, got %v", max, got)
	}
}

func TestTTLUntilBucketClose_ClampedToMax(t *testing.T) {
	t.Parallel()

	max := 5 * time.Second
	for _, interval := range entity.SupportedIntervals() {
		ttl := TTLUntilBucketClose(interval, max)
		if ttl <= 0 {
			t.Errorf("interval %s: expected positive TTL, got %v", interval, ttl)
		}
		if ttl > max {
			t.Errorf("interval %s: TTL %v exceeds max %v", interval, ttl, max)
		}
	}
}

func TestTTLUntilBucketClose_WithinBucket(t *testing.T) {
	t.Parallel()

	// 上限を時間足より大きくすると、TTLはバケットの残り時間そのもの
	max := 48 * time.Hour
	for _, interval := range entity.SupportedIntervals() {
		ttl := TTLUntilBucketClose(interval, max)
		d := entity.IntervalDuration(interval)
		if ttl <= 0 || ttl > d {
			t.Errorf("interval %s: TTL %v outside (0, %v]", interval, ttl, d)
		}
	}
}
