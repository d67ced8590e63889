package predictapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/tidwall/gjson"

	"smartbin/internal/feature/classification/domain/entity"
	"smartbin/internal/feature/classification/usecase"
	"smartbin/internal/platform/externalapi/predictapi/dto"
)

// maxErrorBody はエラーメッセージに含めるレスポンスボディの最大長です。
const maxErrorBody = 200

// PredictClient は分類バックエンドの /predict を呼び出すClassifier実装です。
type PredictClient struct {
	cfg    Config
	client *http.Client
}

// PredictClientがClassifierを実装していることをコンパイル時に検証します。
var _ usecase.Classifier = (*PredictClient)(nil)

// NewPredictClient は指定された設定とHTTPクライアントでPredictClientの新しいインスタンスを生成します。
func NewPredictClient(cfg Config, client *http.Client) *PredictClient {
	return &PredictClient{cfg: cfg, client: client}
}

// Classify は画像を multipart/form-data（フィールド名 "file"）で送信し、
// レスポンスを entity.ClassificationResult に変換します。
func (p *PredictClient) Classify(ctx context.Context, upload entity.Upload) (*entity.ClassificationResult, error) {
	body, contentType, err := encodeUpload(upload)
	if err != nil {
		return nil, fmt.Errorf("encode upload: %w", err)
	}

	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+"/predict", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	// リクエストを実行
	res, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("predict http %d: %s", res.StatusCode, errorMessage(raw))
	}

	// JSONレスポンスをDTOにデコード
	var resp dto.PredictResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return toEntity(resp), nil
}

// encodeUpload は画像を "file" パートに詰めた multipart ボディを作成します。
func encodeUpload(upload entity.Upload) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	filename := upload.Filename
	if filename == "" {
		filename = "upload"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", upload.ContentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(upload.Data); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

// errorMessage はエラーレスポンスからメッセージを取り出します。
// JSON の "error" があればそれを、なければボディの先頭を返します。
func errorMessage(raw []byte) string {
	if msg := gjson.GetBytes(raw, "error"); msg.Exists() && msg.String() != "" {
		return msg.String()
	}
	s := strings.TrimSpace(string(raw))
	if len(s) > maxErrorBody {
		s = s[:maxErrorBody] + "..."
	}
	if s == "" {
		return "empty response body"
	}
	return s
}

func toEntity(resp dto.PredictResponse) *entity.ClassificationResult {
	preds := make([]entity.CategoryPrediction, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		preds = append(preds, toPrediction(p))
	}

	result := &entity.ClassificationResult{Predictions: preds}
	if resp.TopPrediction != nil {
		result.TopPrediction = toPrediction(*resp.TopPrediction)
	}
	if d := resp.Disposal; d != nil {
		result.Disposal = &entity.DisposalGuide{
			Category:      d.Category,
			RecyclingInfo: d.RecyclingInfo,
			Decomposition: d.Decomposition,
			Instructions:  d.Instructions,
			Tips:          d.Tips,
			Examples:      d.Examples,
		}
	}
	return result
}

func toPrediction(p dto.CategoryPrediction) entity.CategoryPrediction {
	return entity.CategoryPrediction{
		ID:          p.ID,
		Name:        p.Name,
		Type:        entity.WasteType(p.Type),
		Probability: p.Probability,
		Color:       p.Color,
		Icon:        p.Icon,
	}
}
