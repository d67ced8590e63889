package entity

// DisposalGuide はカテゴリごとの廃棄方法ガイドです。
type DisposalGuide struct {
	Category      string   // ガイドの見出し（例: "Recyclable Plastic"）
	RecyclingInfo string   // リサイクル情報（任意）
	Decomposition string   // 分解にかかる期間（任意）
	Instructions  []string // 廃棄手順（順序あり）
	Tips          []string // ヒント（順序あり）
	Examples      string   // 代表例（任意）
}

// IsEmpty はガイドに表示できる内容が何もない場合に true を返します。
func (g *DisposalGuide) IsEmpty() bool {
	if g == nil {
		return true
	}
	return g.Category == "" && g.RecyclingInfo == "" && g.Decomposition == "" &&
		len(g.Instructions) == 0 && len(g.Tips) == 0 && g.Examples == ""
}
