package http

import (
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PageHandler renders the checkout page and serves the wallet provider's
// domain-association file.
type PageHandler struct {
	logger   *zap.Logger
	clientID string
	webRoot  string
}

func NewPageHandler(logger *zap.Logger, clientID, webRoot string) *PageHandler {
	return &PageHandler{
		logger:   logger,
		clientID: clientID,
		webRoot:  webRoot,
	}
}

// Root redirects to the checkout page.
func (h *PageHandler) Root(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/checkout")
}

// Checkout renders the checkout page with the client id the hosted SDK needs.
func (h *PageHandler) Checkout(c echo.Context) error {
	if h.clientID == "" {
		h.logger.Error("CLIENT_ID not configured; cannot render checkout")
		return c.String(http.StatusInternalServerError, "PayPal configuration error")
	}

	return c.Render(http.StatusOK, "checkout.html", map[string]interface{}{
		"ClientID": h.clientID,
	})
}

// DomainAssociation serves the wallet provider's verification file as a
// byte-for-byte passthrough. Required for production domain association.
func (h *PageHandler) DomainAssociation(c echo.Context) error {
	return c.File(filepath.Join(h.webRoot, ".well-known", "apple-developer-merchantid-domain-association"))
}
