package entity

import (
	"testing"
	"time"
)

func TestIntervalDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		interval string
		want     time.Duration
	}{
		{Interval1M, time.Minute},
		{Interval5M, 5 * time.Minute},
		{Interval15M, 15 * time.Minute},
		{Interval1H, time.Hour},
		{Interval4H, 4 * time.Hour},
		{Interval1D, 24 * time.Hour},
		{"9x", 0},
		{"", 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.interval, func(t *testing.T) {
			t.Parallel()

			if got := IntervalDuration(tt.interval); got != tt.want {
				t.Errorf("IntervalDuration(%q) = %v, want %v", tt.interval, got, tt.want)
			}
		})
	}
}

func TestIntervalDuration_CoversEnumeration(t *testing.T) {
	t.Parallel()

	for _, interval := range SupportedIntervals() {
		if IntervalDuration(interval) <= 0 {
			t.Errorf("supported interval %s has no duration", interval)
		}
	}
}

func TestIsSupportedSymbol(t *testing.T) {
	t.Parallel()

	for _, s := range SupportedSymbols() {
		if !IsSupportedSymbol(s) {
			t.Errorf("expected %s to be supported", s)
		}
	}
	if IsSupportedSymbol("DOGEUSDT") {
		t.Error("DOGEUSDT must not be supported")
	}
	if IsSupportedSymbol("") {
		t.Error("empty symbol must not be supported")
	}
}
