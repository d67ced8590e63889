// Package entity はworkspaceフィーチャーのドメインモデルを定義します。
//
// ワークスペースは1ユーザー分の画面状態（選択中のファイル・解析状態・表示中の結果）で、
// Action を Reduce に渡すことでのみ遷移します。
package entity

import (
	"time"

	"github.com/google/uuid"

	classentity "smartbin/internal/feature/classification/domain/entity"
)

// State はワークスペースの状態です。
type State struct {
	ID uuid.UUID
	// File は選択中の画像です（未選択なら nil）。
	File *classentity.Upload
	// AnalyzeEnabled は解析ボタンが押せるかどうかです。
	AnalyzeEnabled bool
	// Busy は解析中かどうかです。Busy の間 AnalyzeEnabled は常に false です。
	Busy bool
	// Source は表示中の結果の出所です（結果なしなら空）。
	Source classentity.Source
	// View は表示中の結果です（結果なしなら nil）。
	View *classentity.ViewModel
	// Notice はユーザーに表示するメッセージです。
	Notice    string
	UpdatedAt time.Time
}

// NewState は空のワークスペースを生成します。
func NewState(id uuid.UUID, now time.Time) *State {
	return &State{ID: id, UpdatedAt: now}
}

// Clone は State のディープコピーを返します。
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	out := *s
	if s.File != nil {
		f := *s.File
		out.File = &f
	}
	if s.View != nil {
		v := *s.View
		v.Categories = append([]classentity.CategoryCard(nil), s.View.Categories...)
		v.Disposal.Instructions = append([]string{}, s.View.Disposal.Instructions...)
		v.Disposal.Tips = append([]string{}, s.View.Disposal.Tips...)
		out.View = &v
	}
	return &out
}
