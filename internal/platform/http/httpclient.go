// Package http はアウトバウンドHTTP呼び出しの共通設定を提供します。
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient は分類バックエンド呼び出し用のHTTPクライアントを作成します。
//
// 設定:
//   - Dialer.Timeout: TCP接続タイムアウト（推論より先に接続失敗を検知するため短め）
//   - MaxIdleConnsPerHost: 接続先は単一のバックエンドなので、ホスト単位で接続を再利用
//   - ResponseHeaderTimeout: 推論中はヘッダーが返らないため、全体タイムアウトと同じ値
//   - Client.Timeout: アップロードを含むリクエスト全体のタイムアウト（PREDICT_API_TIMEOUT）
//
// 注意:
//   - http.DefaultClientにはタイムアウトがないため、常にこのクライアントを使用すること
//   - リトライは行わない
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          20,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
