package processor

import "errors"

var (
	// ErrUpstreamAuth プロセッサーのトークン取得に失敗したエラー
	ErrUpstreamAuth = errors.New("upstream auth error")
	// ErrUpstreamOrder プロセッサーの注文作成に失敗したエラー
	ErrUpstreamOrder = errors.New("upstream order error")
	// ErrUpstreamCapture プロセッサーのキャプチャに失敗したエラー
	ErrUpstreamCapture = errors.New("upstream capture error")
	// ErrUpstreamProtocol プロセッサーのレスポンスが期待する形式でないエラー
	ErrUpstreamProtocol = errors.New("upstream protocol error")
	// ErrUpstreamTimeout プロセッサーへの呼び出しがタイムアウトしたエラー
	// 明示的な失敗レスポンスとは区別される
	ErrUpstreamTimeout = errors.New("upstream timeout")
)
