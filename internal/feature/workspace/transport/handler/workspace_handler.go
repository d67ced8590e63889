// Package handler はworkspaceフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	classentity "smartbin/internal/feature/classification/domain/entity"
	classhandler "smartbin/internal/feature/classification/transport/handler"
	classdto "smartbin/internal/feature/classification/transport/http/dto"
	classusecase "smartbin/internal/feature/classification/usecase"
	"smartbin/internal/feature/workspace/domain/entity"
	"smartbin/internal/feature/workspace/transport/http/dto"
	"smartbin/internal/feature/workspace/usecase"
)

//go:embed templates/workspace.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/workspace.html"))

// WorkspaceUsecase はワークスペース操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type WorkspaceUsecase interface {
	Create(ctx context.Context) (*entity.State, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.State, error)
	SelectFile(ctx context.Context, id uuid.UUID, filename, contentType string, data []byte) (*entity.State, error)
	Analyze(ctx context.Context, id uuid.UUID) (*entity.State, error)
	LoadSample(ctx context.Context, id uuid.UUID, key string) (*entity.State, error)
	Reset(ctx context.Context, id uuid.UUID) (*entity.State, error)
}

// WorkspaceHandler はワークスペースのHTTPリクエストを処理します。
type WorkspaceHandler struct {
	uc WorkspaceUsecase
}

// NewWorkspaceHandler はWorkspaceHandlerの新しいインスタンスを生成します。
func NewWorkspaceHandler(uc WorkspaceUsecase) *WorkspaceHandler {
	return &WorkspaceHandler{uc: uc}
}

// Create は新しいワークスペースを作成します。
//
// エンドポイント: POST /v1/workspaces
func (h *WorkspaceHandler) Create(c *gin.Context) {
	st, err := h.uc.Create(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromState(st))
}

// Get はワークスペースの状態を返します。
//
// エンドポイント: GET /v1/workspaces/:id
func (h *WorkspaceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	st, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromState(st))
}

// SelectFile は画像を選択します。検証に失敗した場合は 400 と拒否後の状態を返します。
//
// エンドポイント: POST /v1/workspaces/:id/file
// Content-Type: multipart/form-data
// フィールド: file
func (h *WorkspaceHandler) SelectFile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	form, err := classhandler.ReadFormUpload(c)
	if err != nil {
		slog.Warn("画像ファイルの取得に失敗", "error", err, "workspace_id", id)
		c.JSON(http.StatusBadRequest, classdto.ErrorResponse{Error: classhandler.FormErrorMessage(err)})
		return
	}

	st, err := h.uc.SelectFile(c.Request.Context(), id, form.Filename, form.ContentType, form.Data)
	if err != nil {
		if st != nil && errors.Is(err, classusecase.ErrValidation) {
			slog.Warn("ファイルを拒否", "error", err, "workspace_id", id, "filename", form.Filename)
			c.JSON(http.StatusBadRequest, dto.FromState(st))
			return
		}
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromState(st))
}

// Analyze は選択中の画像を解析します。
//
// エンドポイント: POST /v1/workspaces/:id/analyze
func (h *WorkspaceHandler) Analyze(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	st, err := h.uc.Analyze(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromState(st))
}

// LoadSample はサンプルデータを表示します。
//
// エンドポイント: POST /v1/workspaces/:id/samples/:key
func (h *WorkspaceHandler) LoadSample(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	st, err := h.uc.LoadSample(c.Request.Context(), id, c.Param("key"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromState(st))
}

// Reset はワークスペースを初期状態に戻します。
//
// エンドポイント: POST /v1/workspaces/:id/reset
func (h *WorkspaceHandler) Reset(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	st, err := h.uc.Reset(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromState(st))
}

// View はワークスペースの状態をHTMLページとして描画します。
//
// エンドポイント: GET /v1/workspaces/:id/view
func (h *WorkspaceHandler) View(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	st, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, newPage(st)); err != nil {
		slog.Error("ページの描画に失敗", "error", err, "workspace_id", id)
		c.JSON(http.StatusInternalServerError, classdto.ErrorResponse{Error: "failed to render page"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// fail はユースケースのエラーをHTTPステータスに変換して返します。
func (h *WorkspaceHandler) fail(c *gin.Context, err error) {
	status, msg := errorStatus(err)
	if status >= http.StatusInternalServerError {
		slog.Error("ワークスペース操作に失敗", "error", err, "path", c.FullPath())
	} else {
		slog.Warn("ワークスペース操作を拒否", "error", err, "path", c.FullPath())
	}
	c.JSON(status, classdto.ErrorResponse{Error: msg})
}

func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrWorkspaceNotFound):
		return http.StatusNotFound, "workspace not found"
	case errors.Is(err, usecase.ErrAnalysisInProgress):
		return http.StatusConflict, "analysis already in progress"
	case errors.Is(err, usecase.ErrNoFileSelected):
		return http.StatusConflict, "no file selected"
	case errors.Is(err, classusecase.ErrUnknownSample):
		return http.StatusNotFound, "sample not found"
	case errors.Is(err, classusecase.ErrValidation):
		return http.StatusBadRequest, classusecase.ValidationMessage(err)
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// parseID はパスパラメータ :id をUUIDとして解釈します。不正な場合は 400 を返します。
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, classdto.ErrorResponse{Error: "invalid workspace id"})
		return uuid.Nil, false
	}
	return id, true
}

// page はHTMLテンプレートに渡す値です。
type page struct {
	ID             string
	Busy           bool
	AnalyzeEnabled bool
	Notice         string
	Source         string
	File           *dto.FileResponse
	Summary        classentity.TopSummary
	Categories     []classentity.CategoryCard
	Binary         classentity.BinaryView
	Disposal       *classentity.DisposalView
	ChartURL       string
}

func newPage(st *entity.State) page {
	res := dto.FromState(st)
	p := page{
		ID:             res.ID,
		Busy:           st.Busy,
		AnalyzeEnabled: st.AnalyzeEnabled,
		Notice:         st.Notice,
		Source:         string(st.Source),
		File:           res.File,
		Binary:         classentity.BinaryView{BioPercent: "0%", NonBioPercent: "0%"},
	}
	if st.View == nil {
		return p
	}

	vm := st.View
	p.Summary = vm.Summary
	p.Categories = vm.Categories
	p.Binary = vm.Binary
	p.Disposal = &vm.Disposal
	if vm.Binary.Biodegradable > 0 || vm.Binary.NonBiodegradable > 0 {
		p.ChartURL = chartURL(vm.Binary.BinaryAggregate)
	}
	return p
}

// chartURL はドーナツチャート画像のURLを組み立てます。
func chartURL(agg classentity.BinaryAggregate) string {
	q := url.Values{}
	q.Set("bio", strconv.FormatFloat(agg.Biodegradable, 'f', -1, 64))
	q.Set("nonbio", strconv.FormatFloat(agg.NonBiodegradable, 'f', -1, 64))
	q.Set("format", "svg")
	return "/v1/chart?" + q.Encode()
}
