// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// pingTimeout は依存サービスへの疎通確認の最大時間です。
const pingTimeout = time.Second

// HealthInfo はヘルスチェックで返すサービス情報です。
type HealthInfo struct {
	Classifier string                          // 分類器の種類（"http" または "vision"）
	Categories int                             // 廃棄物カテゴリ数
	PingRedis  func(ctx context.Context) error // nil の場合 Redis は無効
}

// HealthResponse は /healthz のレスポンスボディです。
type HealthResponse struct {
	Status          string `json:"status"`
	Classifier      string `json:"classifier"`
	WasteCategories int    `json:"waste_categories"`
	Redis           string `json:"redis"`
}

// NewHealth はサービスヘルスチェック用の /healthz ハンドラーを返します。
// HTTPメソッドに応じて適切にレスポンスし、キャッシュを防止します。
// Redis の障害はサービス停止ではないため、status は常に "ok" です。
func NewHealth(info HealthInfo) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
		default:
			c.JSON(http.StatusOK, HealthResponse{
				Status:          "ok",
				Classifier:      info.Classifier,
				WasteCategories: info.Categories,
				Redis:           redisStatus(c.Request.Context(), info.PingRedis),
			})
		}
	}
}

func redisStatus(ctx context.Context, ping func(ctx context.Context) error) string {
	if ping == nil {
		return "disabled"
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := ping(ctx); err != nil {
		return "unavailable"
	}
	return "ok"
}
