package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartbin/internal/feature/classification/adapters/catalog"
	"smartbin/internal/feature/classification/domain/entity"
	"smartbin/internal/feature/classification/usecase"
)

func countTop(cards []entity.CategoryCard) int {
	n := 0
	for _, c := range cards {
		if c.IsTop {
			n++
		}
	}
	return n
}

func TestBuildViewModel_Ranking(t *testing.T) {
	t.Parallel()

	result := entity.ClassificationResult{
		Predictions: []entity.CategoryPrediction{
			{ID: 3, Name: "Paper", Type: entity.Biodegradable, Probability: 14.5},
			{ID: 0, Name: "Plastic", Type: entity.NonBiodegradable, Probability: 85.5, Color: "#e74c3c", Icon: "fas fa-wine-bottle"},
			{ID: 1, Name: "Glass", Type: entity.NonBiodegradable, Probability: 14.5},
		},
		TopPrediction: entity.CategoryPrediction{Name: "Plastic", Type: entity.NonBiodegradable, Probability: 85.5, Color: "#e74c3c"},
	}

	vm := usecase.BuildViewModel(result)

	require.Len(t, vm.Categories, 3)
	// 同率は入力順を保つ
	assert.Equal(t, "Plastic", vm.Categories[0].Name)
	assert.Equal(t, "Paper", vm.Categories[1].Name)
	assert.Equal(t, "Glass", vm.Categories[2].Name)

	assert.True(t, vm.Categories[0].IsTop)
	assert.Equal(t, 1, countTop(vm.Categories))
	assert.Equal(t, "85.5%", vm.Categories[0].Percent)

	// 色・アイコンのフォールバック
	assert.Equal(t, usecase.FallbackColor, vm.Categories[1].Color)
	assert.Equal(t, usecase.FallbackIcon, vm.Categories[1].Icon)

	assert.Equal(t, "Plastic", vm.Summary.Name)
	assert.Equal(t, "85.5% confidence", vm.Summary.Confidence)
	assert.False(t, vm.Summary.IsBio)

	assert.Equal(t, 14.5, vm.Binary.Biodegradable)
	assert.Equal(t, 100.0, vm.Binary.NonBiodegradable)
	assert.Equal(t, "14.5%", vm.Binary.BioPercent)
	assert.Equal(t, "100.0%", vm.Binary.NonBioPercent)

	// 入力は変更されない
	assert.Equal(t, "Paper", result.Predictions[0].Name)
}

func TestBuildViewModel_TopFlag(t *testing.T) {
	t.Parallel()

	preds := []entity.CategoryPrediction{
		{Name: "Glass", Type: entity.NonBiodegradable, Probability: 60},
		{Name: "Paper", Type: entity.Biodegradable, Probability: 40},
	}

	tests := []struct {
		name        string
		topName     string
		wantTopIdx  int
		wantPresent bool
	}{
		{name: "matching name", topName: "Paper", wantTopIdx: 1, wantPresent: true},
		{name: "no match falls back to first", topName: "Metal", wantTopIdx: 0, wantPresent: true},
		{name: "absent top flags nothing", topName: "", wantTopIdx: -1, wantPresent: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vm := usecase.BuildViewModel(entity.ClassificationResult{
				Predictions:   preds,
				TopPrediction: entity.CategoryPrediction{Name: tt.topName},
			})

			assert.Equal(t, tt.wantPresent, vm.Summary.Present)
			if tt.wantTopIdx < 0 {
				assert.Zero(t, countTop(vm.Categories))
				assert.Equal(t, usecase.EmptyField, vm.Summary.Name)
				assert.Equal(t, usecase.EmptyField, vm.Summary.Type)
				assert.Equal(t, usecase.EmptyField, vm.Summary.Confidence)
				return
			}
			assert.Equal(t, 1, countTop(vm.Categories))
			assert.True(t, vm.Categories[tt.wantTopIdx].IsTop)
		})
	}
}

func TestBuildViewModel_Disposal(t *testing.T) {
	t.Parallel()

	t.Run("absent guide renders placeholder", func(t *testing.T) {
		t.Parallel()
		vm := usecase.BuildViewModel(entity.ClassificationResult{
			Predictions:   []entity.CategoryPrediction{{Name: "Textile", Type: entity.NonBiodegradable, Probability: 90}},
			TopPrediction: entity.CategoryPrediction{Name: "Textile"},
		})
		assert.True(t, vm.Disposal.Placeholder)
		assert.Equal(t, "No disposal information available for Textile", vm.Disposal.PlaceholderText)
		assert.NotNil(t, vm.Disposal.Instructions)
		assert.NotNil(t, vm.Disposal.Tips)
	})

	t.Run("empty guide without top", func(t *testing.T) {
		t.Parallel()
		vm := usecase.BuildViewModel(entity.ClassificationResult{Disposal: &entity.DisposalGuide{}})
		assert.True(t, vm.Disposal.Placeholder)
		assert.Equal(t, "No disposal information available for this item", vm.Disposal.PlaceholderText)
		assert.Equal(t, usecase.DisposalPlaceholderIcon, vm.Disposal.Icon)
		assert.Empty(t, vm.Disposal.Color)
	})

	t.Run("header falls back to guide colors, not card colors", func(t *testing.T) {
		t.Parallel()
		vm := usecase.BuildViewModel(entity.ClassificationResult{
			TopPrediction: entity.CategoryPrediction{Name: "Mystery"},
			Disposal:      &entity.DisposalGuide{Category: "General Waste", Instructions: []string{"Bin it"}},
		})
		assert.Equal(t, "#2c3e50", vm.Disposal.Color)
		assert.Equal(t, "fas fa-trash-alt", vm.Disposal.Icon)
		assert.Equal(t, usecase.FallbackColor, vm.Summary.Color)
		assert.Equal(t, usecase.FallbackIcon, vm.Summary.Icon)
	})

	t.Run("guide passed through with fallbacks", func(t *testing.T) {
		t.Parallel()
		guide := &entity.DisposalGuide{Instructions: []string{"Rinse"}, Decomposition: "2 months"}
		vm := usecase.BuildViewModel(entity.ClassificationResult{
			TopPrediction: entity.CategoryPrediction{Name: "Cardboard", Color: "#d35400"},
			Disposal:      guide,
		})
		assert.False(t, vm.Disposal.Placeholder)
		assert.Equal(t, usecase.DefaultDisposalCategory, vm.Disposal.Category)
		assert.Equal(t, []string{"Rinse"}, vm.Disposal.Instructions)
		assert.Equal(t, []string{}, vm.Disposal.Tips)
		assert.Equal(t, "#d35400", vm.Disposal.Color)
		assert.Equal(t, usecase.DisposalFallbackIcon, vm.Disposal.Icon)

		vm.Disposal.Instructions[0] = "changed"
		assert.Equal(t, "Rinse", guide.Instructions[0])
	})
}

func TestBuildViewModel_AggregateRoundTrip(t *testing.T) {
	t.Parallel()

	c := catalog.NewCatalog()
	for _, key := range c.SampleKeys() {
		t.Run(key, func(t *testing.T) {
			t.Parallel()
			r, ok := c.Sample(key)
			require.True(t, ok)

			vm := usecase.BuildViewModel(*r)

			// 表示モデルのカテゴリから再集計しても同じ値になる
			back := make([]entity.CategoryPrediction, 0, len(vm.Categories))
			for _, card := range vm.Categories {
				back = append(back, entity.CategoryPrediction{Name: card.Name, Type: card.Type, Probability: card.Probability})
			}
			assert.Equal(t, vm.Binary.BinaryAggregate, usecase.Aggregate(back))
			assert.Equal(t, 1, countTop(vm.Categories))
			assert.True(t, vm.Categories[0].IsTop)
		})
	}
}
