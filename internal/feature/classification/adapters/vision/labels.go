package vision

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"smartbin/internal/feature/classification/adapters/catalog"
	"smartbin/internal/feature/classification/domain/entity"
)

// maxPredictions はレスポンスに含める予測数の上限です。
const maxPredictions = 4

// Label はVision APIが返したラベル1件です。
type Label struct {
	Description string
	Score       float32 // 0〜1
}

// keywordMapping はラベルに含まれるキーワードとカテゴリの対応表です（評価順）。
var keywordMapping = []struct {
	category string
	keywords []string
}{
	{"Plastic", []string{"plastic", "bottle", "bag", "container", "wrapper", "packaging"}},
	{"Glass", []string{"glass", "bottle", "jar", "container", "broken"}},
	{"Metal", []string{"metal", "can", "aluminum", "steel", "foil", "container"}},
	{"Paper", []string{"paper", "newspaper", "magazine", "book", "notebook"}},
	{"Cardboard", []string{"cardboard", "box", "carton", "package"}},
	{"Organic/Food", []string{"food", "organic", "compost", "kitchen", "scraps"}},
	{"Fruit/Veg", []string{"fruit", "vegetable", "banana", "apple", "orange", "peel", "core"}},
	{"Textile", []string{"cloth", "fabric", "textile", "clothing", "shirt", "pants", "towel"}},
	{"E-waste", []string{"electronic", "battery", "phone", "laptop", "cable", "charger"}},
}

// MapLabels はラベルをカテゴリ予測に変換します。
//
// カテゴリごとに一致したラベルの最大スコアを確率（パーセント、小数2桁）とし、
// 確率の降順で上位4件を返します。どのカテゴリにも一致しない場合は
// 最も高いラベルのスコアで "Other" を返し、ラベルが無い場合は予測なしを返します。
func MapLabels(labels []Label) *entity.ClassificationResult {
	best := make(map[string]float32)
	order := make([]string, 0, len(keywordMapping))
	var topScore float32

	for _, l := range labels {
		if l.Score > topScore {
			topScore = l.Score
		}
		desc := strings.ToLower(l.Description)
		for _, m := range keywordMapping {
			if !containsAny(desc, m.keywords) {
				continue
			}
			prev, seen := best[m.category]
			if !seen {
				order = append(order, m.category)
			}
			if !seen || l.Score > prev {
				best[m.category] = l.Score
			}
		}
	}

	if len(labels) > 0 && len(order) == 0 {
		order = append(order, "Other")
		best["Other"] = topScore
	}

	preds := make([]entity.CategoryPrediction, 0, len(order))
	for _, name := range order {
		c, _ := catalog.Category(name)
		c.Probability = toPercent(best[name])
		preds = append(preds, c)
	}
	sort.SliceStable(preds, func(i, j int) bool {
		return preds[i].Probability > preds[j].Probability
	})
	if len(preds) > maxPredictions {
		preds = preds[:maxPredictions]
	}

	result := &entity.ClassificationResult{Predictions: preds}
	if top, ok := entity.TopOf(preds); ok {
		result.TopPrediction = top
		result.Disposal = catalog.DisposalFor(top.Name)
	}
	return result
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// toPercent はスコアをパーセントに変換し、小数2桁に丸めます。
func toPercent(score float32) float64 {
	return decimal.NewFromFloat32(score).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
}
