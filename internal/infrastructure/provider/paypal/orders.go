package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainErrors "github.com/seampay/checkout-demo/internal/domain/errors"
	"github.com/seampay/checkout-demo/internal/domain/order"
)

// CreateOrder creates a checkout order with CAPTURE intent for the given USD
// amount. Each logical attempt gets its own random idempotency key.
// POST /v2/checkout/orders
func (c *Client) CreateOrder(ctx context.Context, amount string, source order.Source) (*order.Order, error) {
	requestBody := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{
			{
				"amount": map[string]interface{}{
					"currency_code": "USD",
					"value":         amount,
				},
			},
		},
		"payment_source": BuildPaymentSource(source, c.returnURL),
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare order request: %w", err)
	}

	token, err := c.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v2/checkout/orders", bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create order request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("PayPal-Request-Id", uuid.NewString())

	c.logger.Info("PayPal: creating checkout order",
		zap.String("amount", amount),
		zap.String("payment_source", string(source)))

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var created order.Order
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("failed to parse order response: %w", err)
	}

	c.logger.Info("PayPal: order created",
		zap.String("order_id", created.ID),
		zap.String("status", created.Status))

	return &created, nil
}

// CaptureOrder finalizes the transfer of the approved funds.
// POST /v2/checkout/orders/{id}/capture
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (*order.CaptureResult, error) {
	body, err := c.postOrderAction(ctx, orderID, "capture")
	if err != nil {
		return nil, err
	}

	var result order.CaptureResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse capture response: %w", err)
	}

	c.logger.Info("PayPal: order captured",
		zap.String("order_id", orderID),
		zap.String("status", result.Status))

	return &result, nil
}

// AuthorizeOrder reserves the approved funds without finalizing the transfer.
// POST /v2/checkout/orders/{id}/authorize
func (c *Client) AuthorizeOrder(ctx context.Context, orderID string) (*order.AuthorizeResult, error) {
	body, err := c.postOrderAction(ctx, orderID, "authorize")
	if err != nil {
		return nil, err
	}

	var result order.AuthorizeResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse authorize response: %w", err)
	}

	c.logger.Info("PayPal: order authorized",
		zap.String("order_id", orderID),
		zap.String("status", result.Status))

	return &result, nil
}

func (c *Client) postOrderAction(ctx context.Context, orderID, action string) ([]byte, error) {
	token, err := c.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v2/checkout/orders/%s/%s", c.baseURL, orderID, action)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", action, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	return c.do(req)
}

// do executes a signed request and normalizes any non-2xx response into an
// UpstreamOrderError carrying the raw upstream status and body.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("PayPal: API request failed", zap.Error(err))
		return nil, &domainErrors.UpstreamOrderError{Status: http.StatusBadGateway, Body: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domainErrors.UpstreamOrderError{Status: resp.StatusCode, Body: err.Error()}
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		c.logger.Error("PayPal: API call rejected",
			zap.Int("status_code", resp.StatusCode),
			zap.String("response", string(body)))
		return nil, &domainErrors.UpstreamOrderError{Status: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
