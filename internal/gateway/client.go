package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// Client talks to the external payment gateway. Confirm captures an
// authorized payment; Cancel refunds a captured one.
type Client interface {
	Confirm(ctx context.Context, paymentKey, orderID string, amount float64) error
	Cancel(ctx context.Context, paymentKey, reason string) error
}

type httpClient struct {
	baseURL   string
	secretKey string
	client    *http.Client
	log       *zap.Logger
}

func NewClient(config utils.GatewayConfig, log *zap.Logger) Client {
	return &httpClient{
		baseURL:   config.BaseURL,
		secretKey: config.SecretKey,
		client:    &http.Client{Timeout: 10 * time.Second},
		log:       log.With(zap.String("component", "payment_gateway")),
	}
}

func (c *httpClient) Confirm(ctx context.Context, paymentKey, orderID string, amount float64) error {
	body := map[string]any{
		"paymentKey": paymentKey,
		"orderId":    orderID,
		"amount":     amount,
	}

	return c.post(ctx, "/v1/payments/confirm", body)
}

func (c *httpClient) Cancel(ctx context.Context, paymentKey, reason string) error {
	body := map[string]any{
		"cancelReason": reason,
	}

	return c.post(ctx, fmt.Sprintf("/v1/payments/%s/cancel", paymentKey), body)
}

func (c *httpClient) post(ctx context.Context, path string, body map[string]any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal gateway request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build gateway request: %w", err)
	}

	// The gateway uses basic auth with the secret key as username.
	credentials := base64.StdEncoding.EncodeToString([]byte(c.secretKey + ":"))
	req.Header.Set("Authorization", "Basic "+credentials)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("call gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Error("gateway returned error",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", data))
		return fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	return nil
}
