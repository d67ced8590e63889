package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartbin/internal/feature/classification/usecase"
)

// FileField はアップロード画像のフォームフィールド名です。
const FileField = "file"

// maxFormOverhead は画像以外の multipart ヘッダーや境界文字列に許容するバイト数です。
const maxFormOverhead = 1 << 20

// MaxRequestSize はアップロードリクエスト全体の上限です。
const MaxRequestSize = usecase.MaxUploadSize + maxFormOverhead

// FormUpload はフォームから読み取った画像です（未検証）。
type FormUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ReadFormUpload は multipart フォームの "file" フィールドを読み取ります。
// ファイル本体は上限を1バイト超えた時点で読み取りを打ち切ります。
//
// multipart の解析前にリクエスト全体を MaxRequestSize で制限し、
// 超過した場合は usecase.ErrFileTooLarge を返します。
func ReadFormUpload(c *gin.Context) (*FormUpload, error) {
	if c.Request.ContentLength > MaxRequestSize {
		return nil, usecase.ErrFileTooLarge
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxRequestSize)

	file, err := c.FormFile(FileField)
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return nil, fmt.Errorf("%w: request body exceeds %d bytes", usecase.ErrFileTooLarge, mbe.Limit)
		}
		return nil, fmt.Errorf("form file %q: %w", FileField, err)
	}

	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open form file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("画像ファイルのクローズに失敗", "error", err)
		}
	}()

	data, err := io.ReadAll(io.LimitReader(f, usecase.MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("read form file: %w", err)
	}

	return &FormUpload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
