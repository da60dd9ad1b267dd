package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"crypto_dashboard/internal/feature/symbols/domain/entity"
	"crypto_dashboard/internal/feature/symbols/transport/http/dto"
)

// SymbolUsecase は銘柄カタログに関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type SymbolUsecase interface {
	ListSymbols(ctx context.Context) ([]entity.Symbol, error)
	ListIntervals(ctx context.Context) ([]entity.Interval, error)
}

// SymbolHandler は銘柄カタログに関するHTTPリクエストを処理します。
type SymbolHandler struct {
	uc SymbolUsecase
}

// NewSymbolHandler は新しい SymbolHandler を作成します。
func NewSymbolHandler(uc SymbolUsecase) *SymbolHandler {
	return &SymbolHandler{uc: uc}
}

// List は選択可能な銘柄と時間足の一覧を取得するAPIです。
// 描画ホストはこのレスポンスからセレクターを構築します。
func (h *SymbolHandler) List(c *gin.Context) {
	symbols, err := h.uc.ListSymbols(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	intervals, err := h.uc.ListIntervals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := dto.CatalogResponse{
		Symbols:   make([]dto.SymbolItem, 0, len(symbols)),
		Intervals: make([]dto.IntervalItem, 0, len(intervals)),
	}
	for _, s := range symbols {
		out.Symbols = append(out.Symbols, dto.SymbolItem{Code: s.Code, Name: s.Name})
	}
	for _, i := range intervals {
		out.Intervals = append(out.Intervals, dto.IntervalItem{Code: i.Code, Default: i.Default})
	}
	c.JSON(http.StatusOK, out)
}
