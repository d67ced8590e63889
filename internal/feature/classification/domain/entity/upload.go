package entity

// Upload はバリデーション済みのアップロード画像です。
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Size は画像のバイト数を返します。
func (u Upload) Size() int {
	return len(u.Data)
}
