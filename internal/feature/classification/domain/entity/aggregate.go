package entity

// BinaryAggregate は生分解性／非生分解性ごとの確率合計です。
// 正規化はしないため、合計が100になるとは限りません。
type BinaryAggregate struct {
	Biodegradable    float64
	NonBiodegradable float64
}
