// Package catalog は廃棄物カテゴリ・廃棄ガイド・サンプルデータの静的テーブルを提供します。
package catalog

import (
	"strings"

	"smartbin/internal/feature/classification/domain/entity"
)

// categories はモデルが出力する10カテゴリです（ID順）。
var categories = []entity.CategoryPrediction{
	{ID: 0, Name: "Plastic", Type: entity.NonBiodegradable, Color: "#e74c3c", Icon: "fas fa-wine-bottle"},
	{ID: 1, Name: "Glass", Type: entity.NonBiodegradable, Color: "#3498db", Icon: "fas fa-wine-glass"},
	{ID: 2, Name: "Metal", Type: entity.NonBiodegradable, Color: "#95a5a6", Icon: "fas fa-cog"},
	{ID: 3, Name: "Paper", Type: entity.Biodegradable, Color: "#f1c40f", Icon: "fas fa-newspaper"},
	{ID: 4, Name: "Cardboard", Type: entity.Biodegradable, Color: "#d35400", Icon: "fas fa-box"},
	{ID: 5, Name: "Organic/Food", Type: entity.Biodegradable, Color: "#27ae60", Icon: "fas fa-apple-alt"},
	{ID: 6, Name: "Fruit/Veg", Type: entity.Biodegradable, Color: "#2ecc71", Icon: "fas fa-leaf"},
	{ID: 7, Name: "Textile", Type: entity.NonBiodegradable, Color: "#9b59b6", Icon: "fas fa-tshirt"},
	{ID: 8, Name: "E-waste", Type: entity.NonBiodegradable, Color: "#34495e", Icon: "fas fa-laptop"},
	{ID: 9, Name: "Other", Type: entity.UnknownType, Color: "#7f8c8d", Icon: "fas fa-question"},
}

// Categories は全カテゴリのコピーを返します（Probability は0）。
func Categories() []entity.CategoryPrediction {
	out := make([]entity.CategoryPrediction, len(categories))
	copy(out, categories)
	return out
}

// Category は名前（大文字小文字を区別しない）でカテゴリを検索します。
func Category(name string) (entity.CategoryPrediction, bool) {
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return entity.CategoryPrediction{}, false
}
