package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation はアップロードされたファイルが受け付けられない場合のエラーです。
	// 解析は開始されません。
	ErrValidation = errors.New("invalid upload")

	// ErrEmptyFile はファイルが空の場合に返されます。
	ErrEmptyFile = fmt.Errorf("%w: file is empty", ErrValidation)

	// ErrUnsupportedType は画像形式が JPEG/PNG/GIF 以外の場合に返されます。
	ErrUnsupportedType = fmt.Errorf("%w: please upload a valid image file (JPEG, PNG, or GIF)", ErrValidation)

	// ErrFileTooLarge はファイルサイズが上限を超えた場合に返されます。
	ErrFileTooLarge = fmt.Errorf("%w: file size should be less than 5MB", ErrValidation)

	// ErrRequestFailed は分類バックエンドへの呼び出しが失敗した場合のエラーです。
	// 呼び出し側はデモデータへフォールバックします。
	ErrRequestFailed = errors.New("classification request failed")

	// ErrEmptyPredictions はレスポンスの predictions が空の場合のエラーです。
	// フォールバックは行いません。
	ErrEmptyPredictions = errors.New("no predictions received from server")

	// ErrUnknownSample は存在しないサンプルキーが指定された場合のエラーです。
	ErrUnknownSample = errors.New("unknown sample")
)
