// Package handler はclassificationフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"smartbin/internal/feature/classification/domain/entity"
	"smartbin/internal/feature/classification/transport/http/dto"
	"smartbin/internal/feature/classification/usecase"
	"smartbin/internal/platform/chart"
)

// ClassificationUsecase は分類結果取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ClassificationUsecase interface {
	Analyze(ctx context.Context, upload entity.Upload) (*entity.Analysis, error)
	Sample(key string) (*entity.Analysis, error)
	Demo() *entity.Analysis
	SampleKeys() []string
}

// CategoryCatalog は廃棄物カテゴリの一覧を提供します。
type CategoryCatalog interface {
	Categories() []entity.CategoryPrediction
}

// ClassificationHandler は分類・サンプル・チャートのHTTPリクエストを処理します。
type ClassificationHandler struct {
	uc      ClassificationUsecase
	catalog CategoryCatalog
}

// NewClassificationHandler はClassificationHandlerの新しいインスタンスを生成します。
func NewClassificationHandler(uc ClassificationUsecase, catalog CategoryCatalog) *ClassificationHandler {
	return &ClassificationHandler{uc: uc, catalog: catalog}
}

// Categories は廃棄物カテゴリの一覧を返します。
//
// エンドポイント: GET /v1/categories
func (h *ClassificationHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FromCategories(h.catalog.Categories()))
}

// Classify は画像をアップロードして分類結果の表示モデルを返します。
// バックエンドに到達できない場合はデモデータと notice を返します。
//
// エンドポイント: POST /v1/classify
// Content-Type: multipart/form-data
// フィールド: file（JPEG/PNG/GIF、最大5MB）
func (h *ClassificationHandler) Classify(c *gin.Context) {
	form, err := ReadFormUpload(c)
	if err != nil {
		slog.Warn("画像ファイルの取得に失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: FormErrorMessage(err)})
		return
	}

	analysis, err := h.uc.Analyze(c.Request.Context(), entity.Upload{
		Filename:    form.Filename,
		ContentType: form.ContentType,
		Data:        form.Data,
	})
	if err != nil {
		status, msg := errorStatus(err)
		if status >= http.StatusInternalServerError {
			slog.Error("分類に失敗", "error", err, "filename", form.Filename)
		} else {
			slog.Warn("アップロードを拒否", "error", err, "filename", form.Filename, "remote_addr", c.ClientIP())
		}
		c.JSON(status, dto.ErrorResponse{Error: msg})
		return
	}

	c.JSON(http.StatusOK, dto.FromAnalysis(analysis))
}

// ListSamples は利用可能なサンプルキーを返します。
//
// エンドポイント: GET /v1/samples
func (h *ClassificationHandler) ListSamples(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SamplesResponse{Samples: h.uc.SampleKeys()})
}

// GetSample はサンプルデータの表示モデルを返します。
//
// エンドポイント: GET /v1/samples/:key
func (h *ClassificationHandler) GetSample(c *gin.Context) {
	key := c.Param("key")
	analysis, err := h.uc.Sample(key)
	if err != nil {
		status, msg := errorStatus(err)
		slog.Warn("サンプルの取得に失敗", "error", err, "key", key)
		c.JSON(status, dto.ErrorResponse{Error: msg})
		return
	}
	c.JSON(http.StatusOK, dto.FromAnalysis(analysis))
}

// Demo はデモデータの表示モデルを返します。
//
// エンドポイント: GET /v1/demo
func (h *ClassificationHandler) Demo(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FromAnalysis(h.uc.Demo()))
}

// Chart は二値集計のドーナツチャート画像を返します。
//
// エンドポイント: GET /v1/chart?bio=14.5&nonbio=85.5&format=png|svg
func (h *ClassificationHandler) Chart(c *gin.Context) {
	bio, err1 := parsePercent(c.Query("bio"))
	nonBio, err2 := parsePercent(c.Query("nonbio"))
	if err := errors.Join(err1, err2); err != nil {
		slog.Warn("チャートのパラメータが不正", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "bio and nonbio must be numbers"})
		return
	}

	format, err := chart.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "format must be png or svg"})
		return
	}

	agg := entity.BinaryAggregate{Biodegradable: bio, NonBiodegradable: nonBio}
	var buf bytes.Buffer
	if err := chart.RenderDonut(&buf, agg, format); err != nil {
		if errors.Is(err, chart.ErrEmptyChart) {
			c.Status(http.StatusNoContent)
			return
		}
		slog.Error("チャートの描画に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to render chart"})
		return
	}
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// FormErrorMessage はフォーム読み取りエラーをユーザー向けメッセージに変換します。
func FormErrorMessage(err error) string {
	if errors.Is(err, usecase.ErrValidation) {
		return usecase.ValidationMessage(err)
	}
	return "image file is required"
}

// parsePercent は空文字を0として解釈します。
func parsePercent(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// errorStatus はユースケースのエラーをHTTPステータスとメッセージに変換します。
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return http.StatusBadRequest, usecase.ValidationMessage(err)
	case errors.Is(err, usecase.ErrEmptyPredictions):
		return http.StatusBadGateway, "No predictions received from server"
	case errors.Is(err, usecase.ErrUnknownSample):
		return http.StatusNotFound, "sample not found"
	default:
		return http.StatusInternalServerError, "classification failed"
	}
}
