package paypal

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/seampay/checkout-demo/internal/config"
)

// Client talks to the PayPal Checkout Orders v2 API. It holds no order state;
// every operation is a self-contained round trip authenticated with a freshly
// fetched bearer token.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	returnURL    string
	httpClient   *http.Client
	logger       *zap.Logger
}

func NewClient(cfg config.PayPalConfig, logger *zap.Logger) *Client {
	return &Client{
		baseURL:      cfg.APIBaseURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		returnURL:    cfg.ReturnURL,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		logger:       logger,
	}
}
