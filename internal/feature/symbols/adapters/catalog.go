// Package adapters provides the catalog implementation for the symbols feature.
package adapters

import (
	"context"
	"sort"

	marketentity "crypto_dashboard/internal/feature/market/domain/entity"
	"crypto_dashboard/internal/feature/symbols/domain/entity"
	"crypto_dashboard/internal/feature/symbols/usecase"
)

// displayNames maps the supported pairs to human-readable names.
var displayNames = map[string]string{
	"BTCUSDT":  "Bitcoin / Tether",
	"ETHUSDT":  "Ethereum / Tether",
	"ADAUSDT":  "Cardano / Tether",
	"DOTUSDT":  "Polkadot / Tether",
	"LINKUSDT": "Chainlink / Tether",
}

// StaticCatalog はダッシュボードが対応する固定の銘柄・時間足一覧を返す
// SymbolRepository実装です。永続化層はなく、一覧は市場ドメインの列挙から
// 組み立てます。
type StaticCatalog struct{}

// StaticCatalogがSymbolRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.SymbolRepository = (*StaticCatalog)(nil)

// NewStaticCatalog はStaticCatalogの新しいインスタンスを生成します。
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{}
}

// ListSymbols は対応銘柄の一覧を表示順で返します。
func (s *StaticCatalog) ListSymbols(ctx context.Context) ([]entity.Symbol, error) {
	codes := marketentity.SupportedSymbols()
	out := make([]entity.Symbol, 0, len(codes))
	for i, code := range codes {
		out = append(out, entity.Symbol{
			Code:    code,
			Name:    displayNames[code],
			SortKey: i,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortKey < out[j].SortKey })
	return out, nil
}

// ListIntervals は対応時間足の一覧を短い順で返します。
func (s *StaticCatalog) ListIntervals(ctx context.Context) ([]entity.Interval, error) {
	codes := marketentity.SupportedIntervals()
	out := make([]entity.Interval, 0, len(codes))
	for _, code := range codes {
		out = append(out, entity.Interval{
			Code:    code,
			Default: code == marketentity.Interval1H,
		})
	}
	return out, nil
}
