// Package vision はGoogle Cloud Vision APIのラベル検出を使った分類クライアントを提供します。
package vision

import (
	"context"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"smartbin/internal/feature/classification/domain/entity"
	"smartbin/internal/feature/classification/usecase"
	"smartbin/internal/shared/ratelimiter"
)

// maxLabels はVision APIに要求するラベル数の上限です。
const maxLabels = 20

// VisionClassifier はGoogle Cloud Vision APIのラベルを廃棄物カテゴリに対応付けて分類します。
type VisionClassifier struct {
	client  *gvision.ImageAnnotatorClient
	limiter ratelimiter.Limiter // nil の場合は制限なし
}

// VisionClassifierがClassifierを実装していることをコンパイル時に検証します。
var _ usecase.Classifier = (*VisionClassifier)(nil)

// NewVisionClassifier はADCを使用してVisionClassifierの新しいインスタンスを生成します。
// limiter はAPIクォータを超えないよう呼び出し頻度を制限します。
func NewVisionClassifier(ctx context.Context, limiter ratelimiter.Limiter) (*VisionClassifier, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &VisionClassifier{client: client, limiter: limiter}, nil
}

// Close はVision APIクライアントを解放します。
func (v *VisionClassifier) Close() error {
	return v.client.Close()
}

// Classify は画像のラベルを検出し、カテゴリごとの予測に変換します。
func (v *VisionClassifier) Classify(ctx context.Context, upload entity.Upload) (*entity.ClassificationResult, error) {
	if v.limiter != nil {
		if err := v.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("vision rate limit: %w", err)
		}
	}

	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: upload.Data},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_LABEL_DETECTION, MaxResults: maxLabels},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("vision API request failed: %w", err)
	}

	if len(resp.Responses) == 0 {
		return MapLabels(nil), nil
	}

	if resp.Responses[0].Error != nil {
		return nil, fmt.Errorf("vision API error: %s", resp.Responses[0].Error.Message)
	}

	labels := make([]Label, 0, len(resp.Responses[0].LabelAnnotations))
	for _, a := range resp.Responses[0].LabelAnnotations {
		labels = append(labels, Label{Description: a.Description, Score: a.Score})
	}
	return MapLabels(labels), nil
}
