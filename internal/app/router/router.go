package router

import (
	dashhandler "crypto_dashboard/internal/feature/dashboard/transport/handler"
	symbolhandler "crypto_dashboard/internal/feature/symbols/transport/handler"
	"crypto_dashboard/internal/platform/http/handler"

	"github.com/gin-gonic/gin"
)

func NewRouter(dashboard *dashhandler.DashboardHandler, symbols *symbolhandler.SymbolHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", handler.Health)

	// 公開の読み取り専用API（認証なし）
	api := r.Group("/api/v1")
	{
		// 1回の描画サイクル
		api.GET("/dashboard", dashboard.GetDashboardHandler)
		// 自動更新セッション（WebSocket）
		api.GET("/dashboard/ws", dashboard.StreamDashboardHandler)
		// セレクター構築用のカタログ
		api.GET("/symbols", symbols.List)
	}

	return r
}
