package catalog

import "smartbin/internal/feature/classification/domain/entity"

// sampleSpec はサンプル1件分の「カテゴリ名と確率」の並びです（表示順）。
type sampleSpec struct {
	key    string
	scores []score
}

type score struct {
	name        string
	probability float64
}

var sampleSpecs = []sampleSpec{
	{key: "plastic", scores: []score{{"Plastic", 85.5}, {"Glass", 8.2}, {"Metal", 4.3}, {"Paper", 2.0}}},
	{key: "glass", scores: []score{{"Glass", 92.5}, {"Plastic", 5.2}, {"Metal", 1.8}, {"Paper", 0.5}}},
	{key: "paper", scores: []score{{"Paper", 78.5}, {"Cardboard", 15.2}, {"Plastic", 4.3}, {"Glass", 2.0}}},
	{key: "organic", scores: []score{{"Organic/Food", 88.5}, {"Fruit/Veg", 9.2}, {"Paper", 1.8}, {"Plastic", 0.5}}},
	{key: "metal", scores: []score{{"Metal", 91.5}, {"Plastic", 5.2}, {"Glass", 2.8}, {"Paper", 0.5}}},
	{key: "cardboard", scores: []score{{"Cardboard", 82.5}, {"Paper", 12.2}, {"Plastic", 3.8}, {"Glass", 1.5}}},
}

var demoScores = []score{{"Plastic", 65.5}, {"Glass", 20.2}, {"Metal", 8.3}, {"Paper", 6.0}}

// demoGuide はバックエンド未接続時に表示する汎用ガイドです。
var demoGuide = entity.DisposalGuide{
	Category: "Recyclable Waste",
	Instructions: []string{
		"Check local recycling guidelines",
		"Clean item before disposal",
		"Separate different materials",
		"Use appropriate recycling bins",
	},
	Tips: []string{
		"When in doubt, check with local authorities",
		"Reduce consumption when possible",
		"Reuse items before recycling",
		"Stay informed about recycling changes",
	},
	RecyclingInfo: "Demo mode - connect to backend for accurate classification",
	Decomposition: "Varies by material",
	Examples:      "Various waste materials",
}

// buildPredictions はカテゴリ表から色・アイコン・区分を補って予測を組み立てます。
// 先頭の要素をトップ予測とします。
func buildPredictions(scores []score) ([]entity.CategoryPrediction, entity.CategoryPrediction) {
	preds := make([]entity.CategoryPrediction, 0, len(scores))
	for _, s := range scores {
		c, ok := Category(s.name)
		if !ok {
			c = entity.CategoryPrediction{Name: s.name, Type: entity.UnknownType}
		}
		c.Probability = s.probability
		preds = append(preds, c)
	}
	var top entity.CategoryPrediction
	if len(preds) > 0 {
		top = preds[0]
	}
	return preds, top
}
