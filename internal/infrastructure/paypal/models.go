package paypal

// tokenResponse トークンエンドポイントのレスポンス
type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// orderRequest 注文作成リクエスト
type orderRequest struct {
	Intent             string             `json:"intent"`
	PurchaseUnits      []purchaseUnit     `json:"purchase_units"`
	ApplicationContext applicationContext `json:"application_context"`
}

// purchaseUnit 注文の購入単位
type purchaseUnit struct {
	Amount      amountPayload `json:"amount"`
	Description string        `json:"description,omitempty"`
}

// amountPayload 金額のワイヤー形式
type amountPayload struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

// applicationContext コールバックURLとチェックアウト画面の設定
type applicationContext struct {
	ReturnURL   string `json:"return_url"`
	CancelURL   string `json:"cancel_url"`
	BrandName   string `json:"brand_name,omitempty"`
	LandingPage string `json:"landing_page,omitempty"`
	UserAction  string `json:"user_action,omitempty"`
}

// orderResponse 注文作成レスポンス
type orderResponse struct {
	ID    string      `json:"id"`
	Links []orderLink `json:"links"`
}

// orderLink 注文レスポンスのリンク
type orderLink struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// approveLink rel == "approve" のリンクを返す（存在しない場合は空文字）
func (r *orderResponse) approveLink() string {
	for _, link := range r.Links {
		if link.Rel == "approve" {
			return link.Href
		}
	}
	return ""
}

// captureResponse キャプチャレスポンス
type captureResponse struct {
	Status string `json:"status"`
	Payer  struct {
		EmailAddress string `json:"email_address"`
		Name         struct {
			GivenName string `json:"given_name"`
			Surname   string `json:"surname"`
		} `json:"name"`
	} `json:"payer"`
	PurchaseUnits []struct {
		Payments struct {
			Captures []struct {
				ID     string        `json:"id"`
				Amount amountPayload `json:"amount"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
}
