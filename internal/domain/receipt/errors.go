package receipt

import "errors"

var (
	// ErrReceiptNotFound 領収書が見つからないエラー
	ErrReceiptNotFound = errors.New("receipt not found")
	// ErrInvalidReceiptData 領収書データが不完全なエラー
	ErrInvalidReceiptData = errors.New("invalid receipt data")
)
