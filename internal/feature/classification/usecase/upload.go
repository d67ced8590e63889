package usecase

import (
	"errors"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"smartbin/internal/feature/classification/domain/entity"
)

// MaxUploadSize はアップロード画像の最大サイズ（5MiB）です。
const MaxUploadSize = 5 * 1024 * 1024

// allowedContentTypes は受け付ける画像のMIMEタイプです。
var allowedContentTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
}

// ValidateUpload はファイルの種類とサイズを検証し、Upload を返します。
//
// 申告された Content-Type を優先し、未指定または application/octet-stream の
// 場合のみ内容から判定します。
func ValidateUpload(filename, contentType string, data []byte) (entity.Upload, error) {
	if len(data) == 0 {
		return entity.Upload{}, ErrEmptyFile
	}
	if len(data) > MaxUploadSize {
		return entity.Upload{}, ErrFileTooLarge
	}

	ct := mediaType(contentType)
	if ct == "" || ct == "application/octet-stream" {
		ct = mediaType(mimetype.Detect(data).String())
	}
	if _, ok := allowedContentTypes[ct]; !ok {
		return entity.Upload{}, ErrUnsupportedType
	}

	return entity.Upload{Filename: filename, ContentType: ct, Data: data}, nil
}

// mediaType はパラメータを除いた小文字のメディアタイプを返します。
func mediaType(contentType string) string {
	mt, _, _ := strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}

// ValidationMessage は検証エラーをユーザー向けメッセージに変換します。
func ValidationMessage(err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedType):
		return "Please upload a valid image file (JPEG, PNG, or GIF)"
	case errors.Is(err, ErrFileTooLarge):
		return "File size should be less than 5MB"
	case errors.Is(err, ErrEmptyFile):
		return "The selected file is empty"
	default:
		return "Error: " + err.Error()
	}
}
