// Package router はアプリケーションのルーティングを定義します。
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	classhandler "smartbin/internal/feature/classification/transport/handler"
	workspacehandler "smartbin/internal/feature/workspace/transport/handler"
)

// NewRouter はハンドラーを登録したgin.Engineを生成します。
func NewRouter(health gin.HandlerFunc, classification *classhandler.ClassificationHandler,
	workspace *workspacehandler.WorkspaceHandler) *gin.Engine {
	r := gin.Default()
	// ブラウザのフロントエンドから直接呼ばれるため CORS を許可
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	r.OPTIONS("/healthz", health)

	v1 := r.Group("/v1")
	{
		v1.GET("/categories", classification.Categories)
		v1.POST("/classify", classification.Classify)
		v1.GET("/samples", classification.ListSamples)
		v1.GET("/samples/:key", classification.GetSample)
		v1.GET("/demo", classification.Demo)
		v1.GET("/chart", classification.Chart)

		ws := v1.Group("/workspaces")
		ws.POST("", workspace.Create)
		ws.GET("/:id", workspace.Get)
		ws.GET("/:id/view", workspace.View)
		ws.POST("/:id/file", workspace.SelectFile)
		ws.POST("/:id/analyze", workspace.Analyze)
		ws.POST("/:id/samples/:key", workspace.LoadSample)
		ws.POST("/:id/reset", workspace.Reset)
	}

	return r
}
