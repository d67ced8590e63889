package entity

// ViewModel はプレゼンテーション層へ渡す表示用の構造です。
// すべてのフィールドにフォールバック値が設定済みで、欠損はありません。
type ViewModel struct {
	Summary    TopSummary
	Categories []CategoryCard
	Binary     BinaryView
	Disposal   DisposalView
}

// TopSummary はトップ予測のサマリー表示です。
type TopSummary struct {
	Present    bool // false の場合、各フィールドは "-"
	Name       string
	Type       string
	Confidence string // 例: "85.5% confidence"
	Color      string
	Icon       string
	IsBio      bool
}

// CategoryCard はランキング表示の1行分です。
type CategoryCard struct {
	ID          int
	Name        string
	Type        WasteType
	Probability float64
	Percent     string // 例: "85.5%"
	Color       string
	Icon        string
	IsTop       bool
}

// BinaryView は二値チャートの表示値です。
type BinaryView struct {
	BinaryAggregate
	BioPercent    string // 小数1桁（例: "14.5%"）
	NonBioPercent string
}

// DisposalView は廃棄ガイドの表示です。Placeholder が true の場合は PlaceholderText のみを表示します。
type DisposalView struct {
	Placeholder     bool
	PlaceholderText string
	Category        string
	RecyclingInfo   string
	Decomposition   string
	Instructions    []string
	Tips            []string
	Examples        string
	Color           string
	Icon            string
}
