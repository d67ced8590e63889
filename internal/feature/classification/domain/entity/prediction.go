// Package entity はclassificationフィーチャーのドメインモデルを定義します。
package entity

// WasteType はカテゴリの生分解性区分です。
type WasteType string

const (
	// Biodegradable は生分解性のカテゴリです。
	Biodegradable WasteType = "Biodegradable"
	// NonBiodegradable は非生分解性のカテゴリです。
	NonBiodegradable WasteType = "Non-Biodegradable"
	// UnknownType は区分不明のカテゴリです（集計対象外）。
	UnknownType WasteType = "Unknown"
)

// CategoryPrediction は1カテゴリ分の分類結果を表します。
type CategoryPrediction struct {
	ID          int       // カテゴリID
	Name        string    // カテゴリ名（例: "Plastic"）
	Type        WasteType // 生分解性区分
	Probability float64   // 確率（パーセント、0〜100）
	Color       string    // 表示色（例: "#e74c3c"）
	Icon        string    // アイコンクラス（例: "fas fa-wine-bottle"）
}

// TopOf は確率が最大の予測を返します。空の場合は false を返します。
// 同率の場合は先頭側を優先します。
func TopOf(predictions []CategoryPrediction) (CategoryPrediction, bool) {
	if len(predictions) == 0 {
		return CategoryPrediction{}, false
	}
	top := predictions[0]
	for _, p := range predictions[1:] {
		if p.Probability > top.Probability {
			top = p
		}
	}
	return top, true
}
