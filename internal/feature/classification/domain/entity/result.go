package entity

import "github.com/google/uuid"

// ClassificationResult は1回の分類（解析・サンプル・デモ）のレスポンス全体です。
// 次の解析で丸ごと置き換えられ、変更されることはありません。
type ClassificationResult struct {
	Predictions   []CategoryPrediction
	TopPrediction CategoryPrediction // Name が空の場合は「トップなし」
	Disposal      *DisposalGuide     // nil の場合はプレースホルダー表示
}

// Source は分類結果の出所です。
type Source string

const (
	SourceLive   Source = "live"
	SourceSample Source = "sample"
	SourceDemo   Source = "demo"
)

// Analysis は分類結果から導出した表示用モデルと、その付帯情報です。
type Analysis struct {
	ID        uuid.UUID
	Source    Source
	ViewModel ViewModel
	// Notice はユーザーにブロッキング表示すべきメッセージです（空なら表示なし）。
	Notice string
}
