package usecase

import "errors"

var (
	// ErrWorkspaceNotFound は指定されたワークスペースが存在しない（または期限切れの）場合のエラーです。
	ErrWorkspaceNotFound = errors.New("workspace not found")

	// ErrAnalysisInProgress は同じワークスペースで解析が実行中の場合のエラーです。
	ErrAnalysisInProgress = errors.New("analysis already in progress")

	// ErrNoFileSelected はファイル未選択のまま解析しようとした場合のエラーです。
	ErrNoFileSelected = errors.New("no file selected")
)
