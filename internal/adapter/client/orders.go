package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	domainErrors "github.com/seampay/checkout-demo/internal/domain/errors"
	"github.com/seampay/checkout-demo/internal/domain/order"
)

// OrderAPIClient drives the order-proxy endpoints the way the checkout page
// does, and satisfies usecase.OrderService for headless runs of the flows.
type OrderAPIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewOrderAPIClient(baseURL string) *OrderAPIClient {
	return &OrderAPIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type createOrderPayload struct {
	TotalAmount   string `json:"totalAmount"`
	PaymentSource string `json:"paymentSource"`
}

// CreateOrder posts to /api/checkout-orders.
func (c *OrderAPIClient) CreateOrder(ctx context.Context, amount string, source order.Source) (*order.Order, error) {
	body, err := json.Marshal(createOrderPayload{
		TotalAmount:   amount,
		PaymentSource: string(source),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/checkout-orders", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	var created order.Order
	if err := c.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CaptureOrder posts to /api/orders/{id}/capture.
func (c *OrderAPIClient) CaptureOrder(ctx context.Context, orderID string) (*order.CaptureResult, error) {
	url := fmt.Sprintf("%s/api/orders/%s/capture", c.baseURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return nil, err
	}

	var result order.CaptureResult
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *OrderAPIClient) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domainErrors.UpstreamOrderError{Status: http.StatusBadGateway, Body: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domainErrors.UpstreamOrderError{Status: resp.StatusCode, Body: err.Error()}
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return &domainErrors.UpstreamOrderError{Status: resp.StatusCode, Body: string(body)}
	}

	return json.Unmarshal(body, out)
}
