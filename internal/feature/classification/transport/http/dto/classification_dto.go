// Package dto はclassificationフィーチャーのHTTPリクエスト／レスポンス型を定義します。
package dto

import "smartbin/internal/feature/classification/domain/entity"

// ErrorResponse はエラー時のレスポンスボディです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// CategoryResponse は廃棄物カテゴリ1件です。
type CategoryResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// CategoriesResponse は GET /v1/categories のレスポンスです。
type CategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Total      int                `json:"total"`
}

// SamplesResponse は GET /v1/samples のレスポンスです。
type SamplesResponse struct {
	Samples []string `json:"samples"`
}

// AnalysisResponse は表示モデルとその付帯情報です。
type AnalysisResponse struct {
	ID        string            `json:"id"`
	Source    string            `json:"source"`
	Notice    string            `json:"notice,omitempty"`
	ViewModel ViewModelResponse `json:"view_model"`
}

// ViewModelResponse は表示モデルです。
type ViewModelResponse struct {
	Summary    SummaryResponse        `json:"summary"`
	Categories []CategoryCardResponse `json:"categories"`
	Binary     BinaryResponse         `json:"binary"`
	Disposal   DisposalResponse       `json:"disposal"`
}

// SummaryResponse はトップ予測のサマリーです。
type SummaryResponse struct {
	Present    bool   `json:"present"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Confidence string `json:"confidence"`
	Color      string `json:"color"`
	Icon       string `json:"icon"`
	IsBio      bool   `json:"is_bio"`
}

// CategoryCardResponse はランキングの1行です。
type CategoryCardResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Probability float64 `json:"probability"`
	Percent     string  `json:"percent"`
	Color       string  `json:"color"`
	Icon        string  `json:"icon"`
	IsTop       bool    `json:"is_top"`
}

// BinaryResponse は二値チャートの値です。
type BinaryResponse struct {
	Biodegradable    float64 `json:"biodegradable"`
	NonBiodegradable float64 `json:"non_biodegradable"`
	BioPercent       string  `json:"bio_percent"`
	NonBioPercent    string  `json:"non_bio_percent"`
}

// DisposalResponse は廃棄ガイドの表示値です。
type DisposalResponse struct {
	Placeholder     bool     `json:"placeholder"`
	PlaceholderText string   `json:"placeholder_text,omitempty"`
	Category        string   `json:"category,omitempty"`
	RecyclingInfo   string   `json:"recycling_info,omitempty"`
	Decomposition   string   `json:"decomposition,omitempty"`
	Instructions    []string `json:"instructions"`
	Tips            []string `json:"tips"`
	Examples        string   `json:"examples,omitempty"`
	Color           string   `json:"color"`
	Icon            string   `json:"icon"`
}

// FromAnalysis は Analysis をレスポンス型に変換します。
func FromAnalysis(a *entity.Analysis) AnalysisResponse {
	return AnalysisResponse{
		ID:        a.ID.String(),
		Source:    string(a.Source),
		Notice:    a.Notice,
		ViewModel: FromViewModel(a.ViewModel),
	}
}

// FromViewModel は ViewModel をレスポンス型に変換します。
func FromViewModel(vm entity.ViewModel) ViewModelResponse {
	cards := make([]CategoryCardResponse, 0, len(vm.Categories))
	for _, c := range vm.Categories {
		cards = append(cards, CategoryCardResponse{
			ID:          c.ID,
			Name:        c.Name,
			Type:        string(c.Type),
			Probability: c.Probability,
			Percent:     c.Percent,
			Color:       c.Color,
			Icon:        c.Icon,
			IsTop:       c.IsTop,
		})
	}

	d := vm.Disposal
	return ViewModelResponse{
		Summary: SummaryResponse{
			Present:    vm.Summary.Present,
			Name:       vm.Summary.Name,
			Type:       vm.Summary.Type,
			Confidence: vm.Summary.Confidence,
			Color:      vm.Summary.Color,
			Icon:       vm.Summary.Icon,
			IsBio:      vm.Summary.IsBio,
		},
		Categories: cards,
		Binary: BinaryResponse{
			Biodegradable:    vm.Binary.Biodegradable,
			NonBiodegradable: vm.Binary.NonBiodegradable,
			BioPercent:       vm.Binary.BioPercent,
			NonBioPercent:    vm.Binary.NonBioPercent,
		},
		Disposal: DisposalResponse{
			Placeholder:     d.Placeholder,
			PlaceholderText: d.PlaceholderText,
			Category:        d.Category,
			RecyclingInfo:   d.RecyclingInfo,
			Decomposition:   d.Decomposition,
			Instructions:    nonNil(d.Instructions),
			Tips:            nonNil(d.Tips),
			Examples:        d.Examples,
			Color:           d.Color,
			Icon:            d.Icon,
		},
	}
}

// FromCategories はカテゴリ一覧をレスポンス型に変換します。
func FromCategories(cats []entity.CategoryPrediction) CategoriesResponse {
	out := make([]CategoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, CategoryResponse{
			ID:    c.ID,
			Name:  c.Name,
			Type:  string(c.Type),
			Color: c.Color,
			Icon:  c.Icon,
		})
	}
	return CategoriesResponse{Categories: out, Total: len(out)}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
