// Package usecase はclassificationフィーチャーのビジネスロジック（集計・表示モデル構築・入力アダプタ）を実装します。
package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"smartbin/internal/feature/classification/domain/entity"
)

// Classifier は画像を分類するリポジトリインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type Classifier interface {
	// Classify は画像を分類し、バックエンドのレスポンスを返します。
	Classify(ctx context.Context, upload entity.Upload) (*entity.ClassificationResult, error)
}

// SampleProvider は固定のサンプル／デモデータを提供します。
type SampleProvider interface {
	// Sample はキーに対応するサンプル結果を返します。
	Sample(key string) (*entity.ClassificationResult, bool)
	// SampleKeys は利用可能なサンプルキーを表示順で返します。
	SampleKeys() []string
	// Demo はバックエンドに到達できない場合のデモ結果を返します。
	Demo() *entity.ClassificationResult
}

// classificationUsecase は分類結果の取得と表示モデルへの変換を提供します。
type classificationUsecase struct {
	classifier Classifier
	samples    SampleProvider
	inflight   singleflight.Group
}

// NewClassificationUsecase はclassificationUsecaseの新しいインスタンスを生成します。
func NewClassificationUsecase(c Classifier, s SampleProvider) *classificationUsecase {
	return &classificationUsecase{classifier: c, samples: s}
}

// Classify は画像を検証してバックエンドで分類します。フォールバックは行いません。
//
// 同じ画像に対する同時リクエストは1回のバックエンド呼び出しを共有します。
func (u *classificationUsecase) Classify(ctx context.Context, upload entity.Upload) (*entity.ClassificationResult, error) {
	upload, err := ValidateUpload(upload.Filename, upload.ContentType, upload.Data)
	if err != nil {
		return nil, err
	}

	v, err, _ := u.inflight.Do(contentKey(upload.Data), func() (any, error) {
		return u.classifier.Classify(ctx, upload)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	result, _ := v.(*entity.ClassificationResult)
	if result == nil || len(result.Predictions) == 0 {
		return nil, ErrEmptyPredictions
	}
	return result, nil
}

// Analyze は画像を分類して表示モデルを返します。
//
// バックエンド呼び出しが失敗した場合はデモデータに置き換え、Notice にエラーを設定します。
// 検証エラーと ErrEmptyPredictions はそのまま返します。
func (u *classificationUsecase) Analyze(ctx context.Context, upload entity.Upload) (*entity.Analysis, error) {
	result, err := u.Classify(ctx, upload)
	switch {
	case err == nil:
		return newAnalysis(entity.SourceLive, *result, ""), nil
	case errors.Is(err, ErrRequestFailed):
		slog.Warn("分類リクエストに失敗したためデモデータを表示", "error", err, "filename", upload.Filename)
		return newAnalysis(entity.SourceDemo, *u.samples.Demo(), "Error: "+err.Error()), nil
	default:
		return nil, err
	}
}

// SampleResult はサンプルキーに対応する分類結果を返します。
func (u *classificationUsecase) SampleResult(key string) (*entity.ClassificationResult, error) {
	result, ok := u.samples.Sample(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSample, key)
	}
	return result, nil
}

// Sample はサンプルデータから表示モデルを返します（ネットワーク呼び出しなし）。
func (u *classificationUsecase) Sample(key string) (*entity.Analysis, error) {
	result, err := u.SampleResult(key)
	if err != nil {
		return nil, err
	}
	notice := SampleNotice(*result)
	return newAnalysis(entity.SourceSample, *result, notice), nil
}

// Demo はデモデータから表示モデルを返します。
func (u *classificationUsecase) Demo() *entity.Analysis {
	return newAnalysis(entity.SourceDemo, *u.samples.Demo(), "")
}

// SampleKeys は利用可能なサンプルキーを返します。
func (u *classificationUsecase) SampleKeys() []string {
	return u.samples.SampleKeys()
}

// SampleNotice はサンプル表示完了時のメッセージを返します。
func SampleNotice(result entity.ClassificationResult) string {
	return fmt.Sprintf("Sample analysis complete! Showing results for %s.", result.TopPrediction.Name)
}

func newAnalysis(source entity.Source, result entity.ClassificationResult, notice string) *entity.Analysis {
	return &entity.Analysis{
		ID:        uuid.New(),
		Source:    source,
		ViewModel: BuildViewModel(result),
		Notice:    notice,
	}
}

// contentKey は画像内容のハッシュを返します。
func contentKey(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
