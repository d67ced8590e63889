package usecase

import (
	classentity "smartbin/internal/feature/classification/domain/entity"
	"smartbin/internal/feature/workspace/domain/entity"
)

// Reduce は状態に Action を適用した新しい状態を返します。副作用はありません。
//
// 不変条件:
//   - 拒否されたファイルで解析ボタンが有効になることはない
//   - Busy の間は解析ボタンが無効
//   - 解析の結果（成功・失敗・空）に関わらず、終了後はファイルが選択されていれば解析ボタンを再度有効にする
func Reduce(s entity.State, a entity.Action) entity.State {
	switch a := a.(type) {
	case entity.FileSelected:
		up := a.Upload
		s.File = &up
		s.AnalyzeEnabled = !s.Busy
		s.Notice = ""

	case entity.FileRejected:
		// 以前に選択したファイルはそのまま
		s.Notice = a.Notice

	case entity.AnalyzeStarted:
		if s.File == nil || s.Busy {
			return s
		}
		s.Busy = true
		s.AnalyzeEnabled = false
		s.Notice = ""

	case entity.AnalyzeSucceeded:
		s = finishAnalysis(s)
		s = showAnalysis(s, a.Analysis)

	case entity.AnalyzeFailed:
		s = finishAnalysis(s)
		s = showAnalysis(s, a.Fallback)

	case entity.AnalyzeEmpty:
		s = finishAnalysis(s)
		s.Notice = a.Notice

	case entity.AnalyzeAborted:
		s = finishAnalysis(s)
		s.Notice = a.Notice

	case entity.SampleLoaded:
		s = showAnalysis(s, a.Analysis)

	case entity.Reset:
		// 実行中の解析は取り消せないため Busy だけは引き継ぐ
		s = entity.State{ID: s.ID, Busy: s.Busy, UpdatedAt: s.UpdatedAt}
	}
	return s
}

func finishAnalysis(s entity.State) entity.State {
	s.Busy = false
	s.AnalyzeEnabled = s.File != nil
	return s
}

// showAnalysis は表示中の結果を丸ごと置き換えます。
func showAnalysis(s entity.State, an classentity.Analysis) entity.State {
	vm := an.ViewModel
	s.Source = an.Source
	s.View = &vm
	s.Notice = an.Notice
	return s
}
