package entity

import "testing"

func TestDefaultQueryParameters(t *testing.T) {
	t.Parallel()

	p := DefaultQueryParameters()

	if p.Symbol != "BTCUSDT" {
		t.Errorf("expected first symbol of the enumeration, got %q", p.Symbol)
	}
	if p.Interval != "1h" {
		t.Errorf("expected 1h default interval, got %q", p.Interval)
	}
	if p.Limit != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, p.Limit)
	}
	if p.AutoRefresh {
		t.Error("auto-refresh must default to off")
	}
}

func TestQueryParameters_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   QueryParameters
		want QueryParameters
	}{
		{
			name: "zero values filled with defaults",
			in:   QueryParameters{},
			want: QueryParameters{Symbol: "BTCUSDT", Interval: "1h", Limit: DefaultLimit},
		},
		{
			name: "explicit values preserved",
			in:   QueryParameters{Symbol: "ETHUSDT", Interval: "5m", Limit: 250, AutoRefresh: true},
			want: QueryParameters{Symbol: "ETHUSDT", Interval: "5m", Limit: 250, AutoRefresh: true},
		},
		{
			name: "partial input fills only the gaps",
			in:   QueryParameters{Symbol: "ADAUSDT"},
			want: QueryParameters{Symbol: "ADAUSDT", Interval: "1h", Limit: DefaultLimit},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.in.Normalize(); got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
