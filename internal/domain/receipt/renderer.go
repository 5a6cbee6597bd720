package receipt

// Renderer 領収書ドキュメントのレンダラーインターフェース
// 実装は決定的であること: 同一のReceiptからはバイト単位で同一の出力を生成する
type Renderer interface {
	// Render 領収書からドキュメントのバイト列を生成
	Render(receipt *Receipt) ([]byte, error)
}
