package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"crypto_dashboard/internal/feature/symbols/domain/entity"
	"crypto_dashboard/internal/feature/symbols/transport/handler"
)

// mockSymbolUsecase はSymbolUsecaseインターフェースのモック実装です。
type mockSymbolUsecase struct {
	ListSymbolsFunc   func(ctx context.Context) ([]entity.Symbol, error)
	ListIntervalsFunc func(ctx context.Context) ([]entity.Interval, error)
}

func (m *mockSymbolUsecase) ListSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return m.ListSymbolsFunc(ctx)
}

func (m *mockSymbolUsecase) ListIntervals(ctx context.Context) ([]entity.Interval, error) {
	return m.ListIntervalsFunc(ctx)
}

// TestSymbolHandler_List はListのHTTPリクエスト/レスポンス処理をテストします。
func TestSymbolHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name              string
		mockListSymbols   func(ctx context.Context) ([]entity.Symbol, error)
		mockListIntervals func(ctx context.Context) ([]entity.Interval, error)
		expectedStatus    int
		expectedBody      string // JSON文字列として比較
	}{
		{
			name: "success: catalog returned",
			mockListSymbols: func(ctx context.Context) ([]entity.Symbol, error) {
				return []entity.Symbol{
					{Code: "BTCUSDT", Name: "Bitcoin / Tether", SortKey: 1},
					{Code: "ETHUSDT", Name: "Ethereum / Tether", SortKey: 2},
				}, nil
			},
			mockListIntervals: func(ctx context.Context) ([]entity.Interval, error) {
				return []entity.Interval{
					{Code: "1m"},
					{Code: "1h", Default: true},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{
				"symbols":[
					{"code":"BTCUSDT","name":"Bitcoin / Tether"},
					{"code":"ETHUSDT","name":"Ethereum / Tether"}
				],
				"intervals":[
					{"code":"1m","default":false},
					{"code":"1h","default":true}
				]
			}`,
		},
		{
			name: "success: empty catalog serializes as empty arrays",
			mockListSymbols: func(ctx context.Context) ([]entity.Symbol, error) {
				return nil, nil
			},
			mockListIntervals: func(ctx context.Context) ([]entity.Interval, error) {
				return nil, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"symbols":[],"intervals":[]}`,
		},
		{
			name: "error: symbol listing fails",
			mockListSymbols: func(ctx context.Context) ([]entity.Symbol, error) {
				return nil, assert.AnError
			},
			mockListIntervals: func(ctx context.Context) ([]entity.Interval, error) {
				t.Error("intervals must not be fetched after a symbol failure")
				return nil, nil
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"assert.AnError general error for testing"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockSymbolUsecase{
				ListSymbolsFunc:   tt.mockListSymbols,
				ListIntervalsFunc: tt.mockListIntervals,
			}

			h := handler.NewSymbolHandler(mockUC)

			router := gin.New()
			router.GET("/api/v1/symbols", h.List)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/api/v1/symbols", nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
