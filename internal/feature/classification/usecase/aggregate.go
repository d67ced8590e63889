package usecase

import (
	"math"

	"github.com/shopspring/decimal"

	"smartbin/internal/feature/classification/domain/entity"
)

// Aggregate は予測の確率を生分解性／非生分解性の2つのバケットに合計します。
//
// 未知の区分は両方のバケットから除外されます（エラーにはしません）。
// 正規化は行わず、空の入力は {0, 0} を返します。
// 10進で加算するため、表示されている確率の合計と一致します。
func Aggregate(predictions []entity.CategoryPrediction) entity.BinaryAggregate {
	bio, nonBio := decimal.Zero, decimal.Zero
	for _, p := range predictions {
		if math.IsNaN(p.Probability) || math.IsInf(p.Probability, 0) {
			continue
		}
		switch p.Type {
		case entity.Biodegradable:
			bio = bio.Add(decimal.NewFromFloat(p.Probability))
		case entity.NonBiodegradable:
			nonBio = nonBio.Add(decimal.NewFromFloat(p.Probability))
		}
	}
	return entity.BinaryAggregate{
		Biodegradable:    bio.InexactFloat64(),
		NonBiodegradable: nonBio.InexactFloat64(),
	}
}
