package entity

import classentity "smartbin/internal/feature/classification/domain/entity"

// Action はワークスペースに対する操作です。
type Action interface {
	isAction()
}

// FileSelected は検証済みのファイルが選択されたことを表します。
type FileSelected struct {
	Upload classentity.Upload
}

// FileRejected はファイルが検証で拒否されたことを表します。
type FileRejected struct {
	Notice string
}

// AnalyzeStarted は解析の開始を表します。
type AnalyzeStarted struct{}

// AnalyzeSucceeded はバックエンドの結果を受け取ったことを表します。
type AnalyzeSucceeded struct {
	Analysis classentity.Analysis
}

// AnalyzeFailed はバックエンド呼び出しが失敗し、デモデータに置き換えたことを表します。
type AnalyzeFailed struct {
	Fallback classentity.Analysis
}

// AnalyzeEmpty は予測が空だったことを表します。表示中の結果は変えません。
type AnalyzeEmpty struct {
	Notice string
}

// AnalyzeAborted はそれ以外の理由で解析が終了したことを表します。表示中の結果は変えません。
type AnalyzeAborted struct {
	Notice string
}

// SampleLoaded はサンプルデータが読み込まれたことを表します。
type SampleLoaded struct {
	Analysis classentity.Analysis
}

// Reset はワークスペースの初期化を表します。
type Reset struct{}

func (FileSelected) isAction()     {}
func (FileRejected) isAction()     {}
func (AnalyzeStarted) isAction()   {}
func (AnalyzeSucceeded) isAction() {}
func (AnalyzeFailed) isAction()    {}
func (AnalyzeEmpty) isAction()     {}
func (AnalyzeAborted) isAction()   {}
func (SampleLoaded) isAction()     {}
func (Reset) isAction()            {}
