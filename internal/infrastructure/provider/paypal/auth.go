package paypal

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	domainErrors "github.com/seampay/checkout-demo/internal/domain/errors"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// GetAccessToken performs the OAuth client-credentials exchange.
// POST /v1/oauth2/token
func (c *Client) GetAccessToken(ctx context.Context) (string, error) {
	if c.clientID == "" || c.clientSecret == "" {
		return "", domainErrors.ErrCredentialsMissing
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/oauth2/token",
		strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", &domainErrors.UpstreamAuthError{Err: err}
	}

	auth := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("PayPal: token exchange request failed", zap.Error(err))
		return "", &domainErrors.UpstreamAuthError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &domainErrors.UpstreamAuthError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("PayPal: token exchange failed",
			zap.Int("status_code", resp.StatusCode),
			zap.String("response", string(body)))
		return "", &domainErrors.UpstreamAuthError{Status: resp.StatusCode, Body: string(body)}
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", &domainErrors.UpstreamAuthError{Err: err}
	}
	if token.AccessToken == "" {
		return "", &domainErrors.UpstreamAuthError{Status: resp.StatusCode, Body: string(body)}
	}

	c.logger.Debug("PayPal: access token acquired",
		zap.Int("expires_in", token.ExpiresIn))

	return token.AccessToken, nil
}
