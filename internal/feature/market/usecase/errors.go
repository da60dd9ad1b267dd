// Package usecase は市場データ取得のビジネスロジックを実装します。
package usecase

import "errors"

// Fetch failure taxonomy. Every upstream failure wraps one of these
// sentinels so callers can degrade a single dashboard section instead of
// failing the whole render cycle. An empty kline response is not an error.
var (
	// ErrTransport is returned when the request never produced a usable
	// HTTP response (DNS, connect, timeout, cancelled context).
	ErrTransport = errors.New("market data transport failure")

	// ErrUpstreamStatus is returned when the exchange answered with a
	// non-success HTTP status.
	ErrUpstreamStatus = errors.New("market data upstream status failure")

	// ErrUnsupportedSymbol is returned for symbols outside the fixed
	// dashboard enumeration.
	ErrUnsupportedSymbol = errors.New("unsupported symbol")

	// ErrUnsupportedInterval is returned for intervals outside the fixed
	// dashboard enumeration.
	ErrUnsupportedInterval = errors.New("unsupported interval")
)
