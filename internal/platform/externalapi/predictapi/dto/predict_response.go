package dto

// PredictResponse は /predict のレスポンスボディです。
type PredictResponse struct {
	Success       bool                 `json:"success"`
	Predictions   []CategoryPrediction `json:"predictions"`
	TopPrediction *CategoryPrediction  `json:"top_prediction"`
	Disposal      *DisposalGuide       `json:"disposal"`
	ImageInfo     *ImageInfo           `json:"image_info,omitempty"`
	ModelInfo     *ModelInfo           `json:"model_info,omitempty"`
}

// CategoryPrediction は1カテゴリ分の予測です。
type CategoryPrediction struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Probability float64 `json:"probability"`
	Color       string  `json:"color"`
	Icon        string  `json:"icon"`
}

// DisposalGuide は廃棄ガイドです。
type DisposalGuide struct {
	Category      string   `json:"category"`
	Instructions  []string `json:"instructions"`
	Tips          []string `json:"tips"`
	RecyclingInfo string   `json:"recycling_info"`
	Decomposition string   `json:"decomposition"`
	Examples      string   `json:"examples"`
}

// ImageInfo はバックエンドが解析した画像の情報です。
type ImageInfo struct {
	Filename string `json:"filename"`
	Size     string `json:"size"`
	Format   string `json:"format"`
}

// ModelInfo はバックエンドのモデル情報です。
type ModelInfo struct {
	TotalCategories int  `json:"total_categories"`
	IsDemo          bool `json:"is_demo"`
}
