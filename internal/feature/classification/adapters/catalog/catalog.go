package catalog

import (
	"smartbin/internal/feature/classification/domain/entity"
	"smartbin/internal/feature/classification/usecase"
)

// Catalog は固定のサンプル／デモデータを提供します。
type Catalog struct {
	samples map[string]entity.ClassificationResult
	keys    []string
	demo    entity.ClassificationResult
}

var _ usecase.SampleProvider = (*Catalog)(nil)

// NewCatalog はサンプル6件とデモデータを持つ Catalog を生成します。
func NewCatalog() *Catalog {
	c := &Catalog{samples: make(map[string]entity.ClassificationResult, len(sampleSpecs))}
	for _, s := range sampleSpecs {
		preds, top := buildPredictions(s.scores)
		c.samples[s.key] = entity.ClassificationResult{
			Predictions:   preds,
			TopPrediction: top,
			Disposal:      DisposalFor(top.Name),
		}
		c.keys = append(c.keys, s.key)
	}

	preds, top := buildPredictions(demoScores)
	c.demo = entity.ClassificationResult{
		Predictions:   preds,
		TopPrediction: top,
		Disposal:      cloneGuide(demoGuide),
	}
	return c
}

// Sample はキーに対応するサンプル結果のコピーを返します。
func (c *Catalog) Sample(key string) (*entity.ClassificationResult, bool) {
	r, ok := c.samples[key]
	if !ok {
		return nil, false
	}
	return cloneResult(r), true
}

// SampleKeys はサンプルキーを表示順で返します。
func (c *Catalog) SampleKeys() []string {
	return append([]string(nil), c.keys...)
}

// Demo はデモ結果のコピーを返します。
func (c *Catalog) Demo() *entity.ClassificationResult {
	return cloneResult(c.demo)
}

// Categories は全カテゴリを返します。
func (c *Catalog) Categories() []entity.CategoryPrediction {
	return Categories()
}

func cloneResult(r entity.ClassificationResult) *entity.ClassificationResult {
	r.Predictions = append([]entity.CategoryPrediction(nil), r.Predictions...)
	if r.Disposal != nil {
		r.Disposal = cloneGuide(*r.Disposal)
	}
	return &r
}
