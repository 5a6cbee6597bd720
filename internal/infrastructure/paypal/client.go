package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"checkout-server/internal/domain/checkout"
	"checkout-server/internal/domain/processor"
	"checkout-server/internal/infrastructure/config"
	otelinfra "checkout-server/internal/infrastructure/observability/otel"
)

// Client PayPal REST APIを使ったprocessor.Clientの実装
// 全ての呼び出しはhttpClientのタイムアウトで制限される
type Client struct {
	apiBase       string
	clientID      string
	clientSecret  string
	currency      string
	brandName     string
	tokenMaxTries uint
	httpClient    *http.Client
	logger        *otelinfra.Logger
	metrics       *otelinfra.Metrics
	tracer        trace.Tracer
}

// NewClient 新しいClientを作成
func NewClient(
	paypalCfg *config.PayPalConfig,
	checkoutCfg *config.CheckoutConfig,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
) *Client {
	tokenMaxTries := paypalCfg.TokenMaxTries
	if tokenMaxTries < 1 {
		tokenMaxTries = 1
	}
	return &Client{
		apiBase:       strings.TrimRight(paypalCfg.APIBase, "/"),
		clientID:      paypalCfg.ClientID,
		clientSecret:  paypalCfg.ClientSecret,
		currency:      checkoutCfg.Currency,
		brandName:     checkoutCfg.BrandName,
		tokenMaxTries: uint(tokenMaxTries),
		httpClient: &http.Client{
			Timeout: paypalCfg.RequestTimeout,
		},
		logger:  logger,
		metrics: metrics,
		tracer:  otel.Tracer("paypal-client"),
	}
}

// CreateOrder 注文を作成し、支払者の承認URLを返す
func (c *Client) CreateOrder(ctx context.Context, amount checkout.Amount, returnURL, cancelURL string) (*processor.Order, error) {
	ctx, span := c.tracer.Start(ctx, "paypal.Client.CreateOrder")
	defer span.End()

	span.SetAttributes(
		attribute.String("paypal.amount", amount.Value()),
		attribute.String("paypal.currency", c.currency),
	)

	token, err := c.fetchToken(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	payload := orderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []purchaseUnit{
			{
				Amount: amountPayload{
					CurrencyCode: c.currency,
					Value:        amount.Value(),
				},
				Description: "Payment for services",
			},
		},
		ApplicationContext: applicationContext{
			ReturnURL:   returnURL,
			CancelURL:   cancelURL,
			BrandName:   c.brandName,
			LandingPage: "BILLING",
			UserAction:  "PAY_NOW",
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+"/v2/checkout/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.RecordUpstreamLatency(ctx, "create_order", time.Since(start).Seconds())
	if err != nil {
		err = classifyTransportError(err, processor.ErrUpstreamOrder)
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err = fmt.Errorf("%w: status %d: %s", processor.ErrUpstreamOrder, resp.StatusCode, readErrorBody(resp.Body))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	var orderResp orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&orderResp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode order response: %v", processor.ErrUpstreamProtocol, err)
	}

	// レスポンス形式の検証（暗黙の信頼はしない）
	if orderResp.ID == "" {
		return nil, fmt.Errorf("%w: missing order id", processor.ErrUpstreamProtocol)
	}
	approvalURL := orderResp.approveLink()
	if approvalURL == "" {
		return nil, fmt.Errorf("%w: missing approve link", processor.ErrUpstreamProtocol)
	}

	span.SetAttributes(attribute.String("paypal.order_id", orderResp.ID))
	span.SetStatus(otelcodes.Ok, "order created")
	c.metrics.RecordOrderCreated(ctx, c.currency)

	c.logger.Info(ctx, "PayPal order created", map[string]interface{}{
		"order_id": orderResp.ID,
		"amount":   amount.Value(),
		"currency": c.currency,
	})

	return &processor.Order{
		OrderID:     orderResp.ID,
		ApprovalURL: approvalURL,
	}, nil
}

// CaptureOrder 承認済みの注文をキャプチャする
// 実際に資金が移動するため、この呼び出しはリトライしない
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (*processor.CaptureResult, error) {
	ctx, span := c.tracer.Start(ctx, "paypal.Client.CaptureOrder")
	defer span.End()

	span.SetAttributes(attribute.String("paypal.order_id", orderID))

	token, err := c.fetchToken(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+"/v2/checkout/orders/"+orderID+"/capture", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build capture request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.RecordUpstreamLatency(ctx, "capture_order", time.Since(start).Seconds())
	if err != nil {
		err = classifyTransportError(err, processor.ErrUpstreamCapture)
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err = fmt.Errorf("%w: status %d: %s", processor.ErrUpstreamCapture, resp.StatusCode, readErrorBody(resp.Body))
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	var captureResp captureResponse
	if err := json.NewDecoder(resp.Body).Decode(&captureResp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode capture response: %v", processor.ErrUpstreamProtocol, err)
	}

	result, err := captureResultFromResponse(&captureResp, orderID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("paypal.transaction_id", result.TransactionID),
		attribute.String("paypal.status", result.Status),
	)
	span.SetStatus(otelcodes.Ok, "order captured")
	c.metrics.RecordCapture(ctx, result.Status)

	c.logger.Info(ctx, "PayPal order captured", map[string]interface{}{
		"order_id":       orderID,
		"transaction_id": result.TransactionID,
		"status":         result.Status,
	})

	return result, nil
}

// fetchToken アクセストークンを取得する
// トークン取得のみ限定的にバックオフ付きでリトライする（明示的な失敗レスポンスは除く）
func (c *Client) fetchToken(ctx context.Context) (string, error) {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 200 * time.Millisecond

	operation := func() (string, error) {
		token, err := c.requestToken(ctx)
		if err != nil {
			if errors.Is(err, processor.ErrUpstreamAuth) || errors.Is(err, processor.ErrUpstreamProtocol) {
				return "", backoff.Permanent(err)
			}
			return "", err
		}
		return token, nil
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(expBackoff),
		backoff.WithMaxTries(c.tokenMaxTries),
	)
}

// requestToken トークンエンドポイントを1回呼び出す
func (c *Client) requestToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+"/v1/oauth2/token",
		strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.RecordUpstreamLatency(ctx, "token", time.Since(start).Seconds())
	if err != nil {
		return "", classifyTransportError(err, processor.ErrUpstreamAuth)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", processor.ErrUpstreamAuth, resp.StatusCode, readErrorBody(resp.Body))
	}

	var tokenResp tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("%w: failed to decode token response: %v", processor.ErrUpstreamProtocol, err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("%w: missing access_token", processor.ErrUpstreamProtocol)
	}

	return tokenResp.AccessToken, nil
}

// captureResultFromResponse キャプチャレスポンスを検証してCaptureResultを構築
func captureResultFromResponse(resp *captureResponse, orderID string) (*processor.CaptureResult, error) {
	if resp.Status == "" {
		return nil, fmt.Errorf("%w: missing capture status", processor.ErrUpstreamProtocol)
	}
	if resp.Payer.EmailAddress == "" {
		return nil, fmt.Errorf("%w: missing payer email", processor.ErrUpstreamProtocol)
	}
	payerName := strings.TrimSpace(resp.Payer.Name.GivenName + " " + resp.Payer.Name.Surname)
	if payerName == "" {
		return nil, fmt.Errorf("%w: missing payer name", processor.ErrUpstreamProtocol)
	}
	if len(resp.PurchaseUnits) == 0 || len(resp.PurchaseUnits[0].Payments.Captures) == 0 {
		return nil, fmt.Errorf("%w: missing captures in response", processor.ErrUpstreamProtocol)
	}

	capture := resp.PurchaseUnits[0].Payments.Captures[0]
	if capture.ID == "" {
		return nil, fmt.Errorf("%w: missing capture id", processor.ErrUpstreamProtocol)
	}
	if capture.Amount.Value == "" || capture.Amount.CurrencyCode == "" {
		return nil, fmt.Errorf("%w: missing capture amount", processor.ErrUpstreamProtocol)
	}

	return &processor.CaptureResult{
		Status:        resp.Status,
		PayerName:     payerName,
		PayerEmail:    resp.Payer.EmailAddress,
		Amount:        capture.Amount.Value,
		Currency:      capture.Amount.CurrencyCode,
		TransactionID: capture.ID,
		OrderID:       orderID,
	}, nil
}

// classifyTransportError トランスポートエラーを分類する
// タイムアウトは明示的な失敗レスポンスと区別してErrUpstreamTimeoutにする
func classifyTransportError(err error, kind error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %v", processor.ErrUpstreamTimeout, err)
	}
	return fmt.Errorf("%w: %v", kind, err)
}

// readErrorBody 診断用にレスポンスボディを読み取る（サイズ制限付き）
func readErrorBody(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 2048))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
