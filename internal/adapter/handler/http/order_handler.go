package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	domainErrors "github.com/seampay/checkout-demo/internal/domain/errors"
	"github.com/seampay/checkout-demo/internal/domain/order"
	"github.com/seampay/checkout-demo/internal/domain/provider"
)

// OrderHandler exposes the order lifecycle over HTTP. It forwards gateway
// errors with status passthrough and performs no retries.
type OrderHandler struct {
	logger   *zap.Logger
	gateway  provider.OrderGateway
	validate *validator.Validate
}

func NewOrderHandler(logger *zap.Logger, gateway provider.OrderGateway) *OrderHandler {
	return &OrderHandler{
		logger:   logger,
		gateway:  gateway,
		validate: validator.New(),
	}
}

type CreateOrderRequest struct {
	TotalAmount   string `json:"totalAmount" validate:"required"`
	PaymentSource string `json:"paymentSource" validate:"required,oneof=paypal card venmo applepay"`
}

// CreateCheckoutOrder handles POST /api/checkout-orders.
func (h *OrderHandler) CreateCheckoutOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Invalid request body",
		})
	}

	// The checkout page omits both fields when untouched.
	if req.TotalAmount == "" {
		req.TotalAmount = "10.00"
	}
	if req.PaymentSource == "" {
		req.PaymentSource = string(order.SourcePayPal)
	}

	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warn("Rejected checkout order request",
			zap.String("payment_source", req.PaymentSource),
			zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Unsupported payment source",
		})
	}

	amount, err := order.NormalizeAmount(req.TotalAmount)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "totalAmount must be a positive decimal",
		})
	}

	h.logger.Info("Creating checkout order",
		zap.String("total_amount", amount),
		zap.String("payment_source", req.PaymentSource))

	created, err := h.gateway.CreateOrder(c.Request().Context(), amount, order.Source(req.PaymentSource))
	if err != nil {
		return h.gatewayError(c, err)
	}

	return c.JSON(http.StatusCreated, created)
}

// CapturePayment handles POST /api/orders/:orderID/capture.
func (h *OrderHandler) CapturePayment(c echo.Context) error {
	orderID := c.Param("orderID")
	if orderID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "order id is required",
		})
	}

	h.logger.Info("Capturing payment", zap.String("order_id", orderID))

	result, err := h.gateway.CaptureOrder(c.Request().Context(), orderID)
	if err != nil {
		return h.gatewayError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// AuthorizePayment handles POST /api/orders/:orderID/authorize.
func (h *OrderHandler) AuthorizePayment(c echo.Context) error {
	orderID := c.Param("orderID")
	if orderID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "order id is required",
		})
	}

	h.logger.Info("Authorizing payment", zap.String("order_id", orderID))

	result, err := h.gateway.AuthorizeOrder(c.Request().Context(), orderID)
	if err != nil {
		return h.gatewayError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *OrderHandler) gatewayError(c echo.Context, err error) error {
	var orderErr *domainErrors.UpstreamOrderError
	if errors.As(err, &orderErr) {
		status := orderErr.Status
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}
		h.logger.Error("Processor order call failed",
			zap.Int("upstream_status", orderErr.Status),
			zap.String("upstream_body", orderErr.Body))
		return c.JSON(status, echo.Map{
			"message": orderErr.Body,
		})
	}

	var authErr *domainErrors.UpstreamAuthError
	if errors.As(err, &authErr) {
		h.logger.Error("Processor token exchange failed", zap.Error(authErr))
		return c.JSON(http.StatusBadGateway, echo.Map{
			"message": "payment provider authentication failed",
		})
	}

	if errors.Is(err, domainErrors.ErrCredentialsMissing) {
		h.logger.Error("Processor credentials missing")
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "payment provider is not configured",
		})
	}

	h.logger.Error("Order operation failed", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"message": err.Error(),
	})
}
