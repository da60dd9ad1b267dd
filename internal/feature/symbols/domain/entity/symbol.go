// Package entity defines the domain models for the symbols feature.
package entity

// Symbol is one selectable market with its display name.
type Symbol struct {
	Code    string // Trading pair code (e.g., "BTCUSDT")
	Name    string // Human-readable name (e.g., "Bitcoin / Tether")
	SortKey int
}

// Interval is one selectable candle interval.
type Interval struct {
	Code    string // Interval code (e.g., "1h")
	Default bool   // Whether this is the initial selection
}
