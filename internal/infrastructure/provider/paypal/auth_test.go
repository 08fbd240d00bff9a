package paypal_test

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/seampay/checkout-demo/internal/config"
	domainErrors "github.com/seampay/checkout-demo/internal/domain/errors"
	"github.com/seampay/checkout-demo/internal/infrastructure/provider/paypal"
)

func newTestClient(baseURL string) *paypal.Client {
	return paypal.NewClient(config.PayPalConfig{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		APIBaseURL:   baseURL,
		ReturnURL:    "http://localhost:8888",
	}, zap.NewNop())
}

func TestGetAccessToken(t *testing.T) {
	t.Run("successful exchange", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/oauth2/token", r.URL.Path)

			expectedAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("test-client:test-secret"))
			assert.Equal(t, expectedAuth, r.Header.Get("Authorization"))
			assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, "grant_type=client_credentials", string(body))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"access_token":"A21.token","token_type":"Bearer","expires_in":32400}`))
		}))
		defer server.Close()

		token, err := newTestClient(server.URL).GetAccessToken(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, "A21.token", token)
	})

	t.Run("missing credentials", func(t *testing.T) {
		client := paypal.NewClient(config.PayPalConfig{APIBaseURL: "http://unused"}, zap.NewNop())

		token, err := client.GetAccessToken(context.Background())

		assert.Empty(t, token)
		assert.ErrorIs(t, err, domainErrors.ErrCredentialsMissing)
	})

	t.Run("upstream rejection carries status and body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid_client"}`))
		}))
		defer server.Close()

		token, err := newTestClient(server.URL).GetAccessToken(context.Background())

		assert.Empty(t, token)
		var authErr *domainErrors.UpstreamAuthError
		assert.True(t, errors.As(err, &authErr))
		assert.Equal(t, http.StatusUnauthorized, authErr.Status)
		assert.Contains(t, authErr.Body, "invalid_client")
	})

	t.Run("network failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		_, err := newTestClient(server.URL).GetAccessToken(context.Background())

		var authErr *domainErrors.UpstreamAuthError
		assert.True(t, errors.As(err, &authErr))
	})
}
