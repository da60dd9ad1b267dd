// Package entity defines the domain models for the dashboard feature.
package entity

import (
	marketentity "crypto_dashboard/internal/feature/market/domain/entity"
)

// Slider bounds for the point-count control.
const (
	MinLimit     = 100
	MaxLimit     = 1000
	DefaultLimit = 500
)

// QueryParameters carries the user-selected controls for one render cycle.
// They are supplied explicitly per cycle; nothing persists across sessions.
type QueryParameters struct {
	Symbol      string `json:"symbol"`
	Interval    string `json:"interval"`
	Limit       int    `json:"limit"`
	AutoRefresh bool   `json:"auto_refresh"`
}

// DefaultQueryParameters returns the initial control state: first symbol of
// the enumeration, 1h interval, 500 points, auto-refresh off.
func DefaultQueryParameters() QueryParameters {
	return QueryParameters{
		Symbol:      marketentity.SupportedSymbols()[0],
		Interval:    marketentity.Interval1H,
		Limit:       DefaultLimit,
		AutoRefresh: false,
	}
}

// Normalize fills zero values with the defaults.
func (p QueryParameters) Normalize() QueryParameters {
	d := DefaultQueryParameters()
	if p.Symbol == "" {
		p.Symbol = d.Symbol
	}
	if p.Interval == "" {
		p.Interval = d.Interval
	}
	if p.Limit == 0 {
		p.Limit = d.Limit
	}
	return p
}
