// Package dto はworkspaceフィーチャーのHTTPレスポンス型を定義します。
package dto

import (
	"time"

	classdto "smartbin/internal/feature/classification/transport/http/dto"
	"smartbin/internal/feature/workspace/domain/entity"
)

// FileResponse は選択中のファイルの概要です（画像本体は返しません）。
type FileResponse struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
}

// StateResponse はワークスペースの状態です。
type StateResponse struct {
	ID             string                      `json:"id"`
	File           *FileResponse               `json:"file"`
	AnalyzeEnabled bool                        `json:"analyze_enabled"`
	Busy           bool                        `json:"busy"`
	Source         string                      `json:"source,omitempty"`
	ViewModel      *classdto.ViewModelResponse `json:"view_model"`
	Notice         string                      `json:"notice,omitempty"`
	UpdatedAt      time.Time                   `json:"updated_at"`
}

// FromState は State をレスポンス型に変換します。
func FromState(s *entity.State) StateResponse {
	res := StateResponse{
		ID:             s.ID.String(),
		AnalyzeEnabled: s.AnalyzeEnabled,
		Busy:           s.Busy,
		Source:         string(s.Source),
		Notice:         s.Notice,
		UpdatedAt:      s.UpdatedAt,
	}
	if s.File != nil {
		res.File = &FileResponse{
			Filename:    s.File.Filename,
			ContentType: s.File.ContentType,
			Size:        s.File.Size(),
		}
	}
	if s.View != nil {
		vm := classdto.FromViewModel(*s.View)
		res.ViewModel = &vm
	}
	return res
}
