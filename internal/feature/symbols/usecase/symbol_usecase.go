// Package usecase implements the business logic for symbol catalog operations.
package usecase

import (
	"context"

	"crypto_dashboard/internal/feature/symbols/domain/entity"
)

// SymbolRepository abstracts the catalog of selectable markets and intervals.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SymbolRepository interface {
	ListSymbols(ctx context.Context) ([]entity.Symbol, error)
	ListIntervals(ctx context.Context) ([]entity.Interval, error)
}

// SymbolUsecase provides business logic for symbol catalog operations.
type SymbolUsecase struct {
	repo SymbolRepository
}

// NewSymbolUsecase creates a new SymbolUsecase with the given repository.
func NewSymbolUsecase(r SymbolRepository) *SymbolUsecase {
	return &SymbolUsecase{repo: r}
}

// ListSymbols returns the selectable markets in display order.
func (u *SymbolUsecase) ListSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return u.repo.ListSymbols(ctx)
}

// ListIntervals returns the selectable candle intervals.
func (u *SymbolUsecase) ListIntervals(ctx context.Context) ([]entity.Interval, error) {
	return u.repo.ListIntervals(ctx)
}
