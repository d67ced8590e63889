package usecase

import (
	"fmt"
	"sort"
	"strconv"

	"smartbin/internal/feature/classification/domain/entity"
)

const (
	// FallbackColor は色が未指定の場合のニュートラルグレーです。
	FallbackColor = "#7f8c8d"
	// FallbackIcon はアイコンが未指定の場合の汎用アイコンです。
	FallbackIcon = "fas fa-question"
	// EmptyField はトップ予測がない場合のサマリー表示です。
	EmptyField = "-"
	// DefaultDisposalCategory は廃棄ガイドの見出しが未指定の場合の表示です。
	DefaultDisposalCategory = "Waste Disposal Guide"
	// DisposalFallbackColor はトップ予測に色がない場合の廃棄ガイド見出しの色です。
	DisposalFallbackColor = "#2c3e50"
	// DisposalFallbackIcon はトップ予測にアイコンがない場合の廃棄ガイド見出しのアイコンです。
	DisposalFallbackIcon = "fas fa-trash-alt"
	// DisposalPlaceholderIcon は廃棄ガイドがない場合のアイコンです。
	DisposalPlaceholderIcon = "fas fa-info-circle"
)

// BuildViewModel は分類結果から表示用モデルを組み立てます。
// 入力は変更しません。
func BuildViewModel(result entity.ClassificationResult) entity.ViewModel {
	ranked := rank(result.Predictions)
	topIdx := topIndex(ranked, result.TopPrediction.Name)

	cards := make([]entity.CategoryCard, 0, len(ranked))
	for i, p := range ranked {
		cards = append(cards, entity.CategoryCard{
			ID:          p.ID,
			Name:        p.Name,
			Type:        p.Type,
			Probability: p.Probability,
			Percent:     formatPercent(p.Probability),
			Color:       orDefault(p.Color, FallbackColor),
			Icon:        orDefault(p.Icon, FallbackIcon),
			IsTop:       i == topIdx,
		})
	}

	agg := Aggregate(result.Predictions)

	return entity.ViewModel{
		Summary:    buildSummary(result.TopPrediction),
		Categories: cards,
		Binary: entity.BinaryView{
			BinaryAggregate: agg,
			BioPercent:      fmt.Sprintf("%.1f%%", agg.Biodegradable),
			NonBioPercent:   fmt.Sprintf("%.1f%%", agg.NonBiodegradable),
		},
		Disposal: buildDisposal(result.Disposal, result.TopPrediction),
	}
}

// rank は確率の降順に安定ソートしたコピーを返します。
// 既に降順に並んでいる入力は順序が保たれます。
func rank(predictions []entity.CategoryPrediction) []entity.CategoryPrediction {
	out := make([]entity.CategoryPrediction, len(predictions))
	copy(out, predictions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Probability > out[j].Probability
	})
	return out
}

// topIndex はトップとしてマークする位置を返します。
// 名前が空なら -1、一致するエントリがなければ 0 です。
func topIndex(ranked []entity.CategoryPrediction, topName string) int {
	if topName == "" || len(ranked) == 0 {
		return -1
	}
	for i, p := range ranked {
		if p.Name == topName {
			return i
		}
	}
	return 0
}

func buildSummary(top entity.CategoryPrediction) entity.TopSummary {
	if top.Name == "" {
		return entity.TopSummary{
			Name:       EmptyField,
			Type:       EmptyField,
			Confidence: EmptyField,
			Color:      FallbackColor,
			Icon:       FallbackIcon,
		}
	}
	return entity.TopSummary{
		Present:    true,
		Name:       top.Name,
		Type:       orDefault(string(top.Type), EmptyField),
		Confidence: formatPercent(top.Probability) + " confidence",
		Color:      orDefault(top.Color, FallbackColor),
		Icon:       orDefault(top.Icon, FallbackIcon),
		IsBio:      top.Type == entity.Biodegradable,
	}
}

func buildDisposal(guide *entity.DisposalGuide, top entity.CategoryPrediction) entity.DisposalView {
	if guide.IsEmpty() {
		subject := top.Name
		if subject == "" {
			subject = "this item"
		}
		return entity.DisposalView{
			Placeholder:     true,
			PlaceholderText: "No disposal information available for " + subject,
			Instructions:    []string{},
			Tips:            []string{},
			Icon:            DisposalPlaceholderIcon,
		}
	}
	return entity.DisposalView{
		Category:      orDefault(guide.Category, DefaultDisposalCategory),
		RecyclingInfo: guide.RecyclingInfo,
		Decomposition: guide.Decomposition,
		Instructions:  cloneStrings(guide.Instructions),
		Tips:          cloneStrings(guide.Tips),
		Examples:      guide.Examples,
		Color:         orDefault(top.Color, DisposalFallbackColor),
		Icon:          orDefault(top.Icon, DisposalFallbackIcon),
	}
}

// formatPercent は "85.5%" のように余分な0を付けずに整形します。
func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
