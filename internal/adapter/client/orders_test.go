package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seampay/checkout-demo/internal/adapter/client"
	domainErrors "github.com/seampay/checkout-demo/internal/domain/errors"
	"github.com/seampay/checkout-demo/internal/domain/order"
)

func TestOrderAPIClient(t *testing.T) {
	t.Run("create posts the checkout order body", func(t *testing.T) {
		var received map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/checkout-orders", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"id":"ORDER1","status":"CREATED"}`))
		}))
		defer server.Close()

		created, err := client.NewOrderAPIClient(server.URL).
			CreateOrder(context.Background(), "25.00", order.SourcePayPal)

		require.NoError(t, err)
		assert.Equal(t, "ORDER1", created.ID)
		assert.Equal(t, "25.00", received["totalAmount"])
		assert.Equal(t, "paypal", received["paymentSource"])
	})

	t.Run("capture hits the order's capture endpoint", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/orders/ORDER1/capture", r.URL.Path)
			w.Write([]byte(`{"id":"ORDER1","status":"COMPLETED","purchase_units":[]}`))
		}))
		defer server.Close()

		result, err := client.NewOrderAPIClient(server.URL).
			CaptureOrder(context.Background(), "ORDER1")

		require.NoError(t, err)
		assert.Equal(t, order.StatusCompleted, result.Status)
	})

	t.Run("error responses carry status and body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"message":"payment provider authentication failed"}`))
		}))
		defer server.Close()

		_, err := client.NewOrderAPIClient(server.URL).
			CreateOrder(context.Background(), "25.00", order.SourceCard)

		var orderErr *domainErrors.UpstreamOrderError
		require.True(t, errors.As(err, &orderErr))
		assert.Equal(t, http.StatusBadGateway, orderErr.Status)
		assert.Contains(t, orderErr.Body, "authentication failed")
	})
}
