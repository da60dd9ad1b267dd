// Package handler はdashboardフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"crypto_dashboard/internal/feature/dashboard/refresh"

	dashentity "crypto_dashboard/internal/feature/dashboard/domain/entity"
	marketusecase "crypto_dashboard/internal/feature/market/usecase"
)

// DashboardUsecase は描画サイクル実行のユースケースインターフェースを定義します。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type DashboardUsecase interface {
	RunCycle(ctx context.Context, params dashentity.QueryParameters) (*dashentity.RenderTree, error)
}

// DashboardHandler はダッシュボードのHTTPリクエストを処理します。
type DashboardHandler struct {
	uc        DashboardUsecase
	refresher *refresh.Refresher
	upgrader  websocket.Upgrader
}

// NewDashboardHandler は指定されたusecaseと更新ループでDashboardHandlerの新しいインスタンスを生成します。
func NewDashboardHandler(uc DashboardUsecase, refresher *refresh.Refresher) *DashboardHandler {
	return &DashboardHandler{
		uc:        uc,
		refresher: refresher,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// 描画ホストは別オリジンで配信される想定（公開読み取り専用API）
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// GetDashboardHandler は1回の描画サイクルを実行し、描画ツリーをJSONで返します。
//
// エンドポイント例:
// GET /api/v1/dashboard?symbol=BTCUSDT&interval=1h&limit=500
//
// フェッチ失敗はツリー内のwarnings/noticeとして表現されるため、
// エラーレスポンスになるのはパラメータ不正のみです。
func (h *DashboardHandler) GetDashboardHandler(c *gin.Context) {
	params, ok := h.queryParams(c)
	if !ok {
		return
	}

	tree, err := h.uc.RunCycle(c.Request.Context(), params)
	if err != nil {
		h.paramError(c, err)
		return
	}
	c.JSON(http.StatusOK, tree)
}

// StreamDashboardHandler はWebSocketで自動更新セッションを提供します。
// 接続直後に1回、その後は更新間隔ごとに新しい描画ツリーをプッシュします。
// クライアントの切断でcontextがキャンセルされ、ループは即座に終了します。
func (h *DashboardHandler) StreamDashboardHandler(c *gin.Context) {
	params, ok := h.queryParams(c)
	if !ok {
		return
	}
	params.AutoRefresh = true

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgradeが失敗した時点でレスポンスは書き込み済み
		slog.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer func() {
		if err := conn.Close(); err != nil {
			slog.Warn("failed to close websocket", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// 読み取りはクローズ検知のためだけに回す
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	err = h.refresher.Run(ctx, params, func(tree *dashentity.RenderTree) bool {
		if err := conn.WriteJSON(tree); err != nil {
			slog.Info("dashboard stream ended", "symbol", params.Symbol, "error", err)
			return false
		}
		return true
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Warn("dashboard stream failed", "symbol", params.Symbol, "error", err)
	}
}

// queryParams はクエリ文字列からQueryParametersを組み立てます。
// スライダーの範囲（100〜1000）と列挙はここで弾き、falseを返した場合は
// 既に400を書き込み済みです。
func (h *DashboardHandler) queryParams(c *gin.Context) (dashentity.QueryParameters, bool) {
	defaults := dashentity.DefaultQueryParameters()

	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaults.Limit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < dashentity.MinLimit || limit > dashentity.MaxLimit {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "limit must be an integer between 100 and 1000",
		})
		return dashentity.QueryParameters{}, false
	}

	params := dashentity.QueryParameters{
		Symbol:   c.DefaultQuery("symbol", defaults.Symbol),
		Interval: c.DefaultQuery("interval", defaults.Interval),
		Limit:    limit,
	}
	return params, true
}

func (h *DashboardHandler) paramError(c *gin.Context, err error) {
	if errors.Is(err, marketusecase.ErrUnsupportedSymbol) || errors.Is(err, marketusecase.ErrUnsupportedInterval) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
