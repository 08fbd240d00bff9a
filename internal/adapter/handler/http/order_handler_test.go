package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	handlers "github.com/seampay/checkout-demo/internal/adapter/handler/http"
	domainErrors "github.com/seampay/checkout-demo/internal/domain/errors"
	"github.com/seampay/checkout-demo/internal/domain/order"
)

// MockOrderGateway is a mock implementation of provider.OrderGateway
type MockOrderGateway struct {
	mock.Mock
}

func (m *MockOrderGateway) CreateOrder(ctx context.Context, amount string, source order.Source) (*order.Order, error) {
	args := m.Called(ctx, amount, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderGateway) CaptureOrder(ctx context.Context, orderID string) (*order.CaptureResult, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.CaptureResult), args.Error(1)
}

func (m *MockOrderGateway) AuthorizeOrder(ctx context.Context, orderID string) (*order.AuthorizeResult, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.AuthorizeResult), args.Error(1)
}

func newCreateContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/checkout-orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateCheckoutOrder(t *testing.T) {
	e := echo.New()

	t.Run("creates order and returns 201", func(t *testing.T) {
		gateway := new(MockOrderGateway)
		gateway.On("CreateOrder", mock.Anything, "25.00", order.SourcePayPal).
			Return(&order.Order{ID: "ORDER1", Status: order.StatusCreated}, nil)

		handler := handlers.NewOrderHandler(zap.NewNop(), gateway)
		c, rec := newCreateContext(e, `{"totalAmount":"25.00","paymentSource":"paypal"}`)

		require.NoError(t, handler.CreateCheckoutOrder(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var got order.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "ORDER1", got.ID)

		gateway.AssertExpectations(t)
	})

	t.Run("defaults apply when fields are omitted", func(t *testing.T) {
		gateway := new(MockOrderGateway)
		gateway.On("CreateOrder", mock.Anything, "10.00", order.SourcePayPal).
			Return(&order.Order{ID: "ORDER2"}, nil)

		handler := handlers.NewOrderHandler(zap.NewNop(), gateway)
		c, rec := newCreateContext(e, `{}`)

		require.NoError(t, handler.CreateCheckoutOrder(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		gateway.AssertExpectations(t)
	})

	t.Run("unknown payment source is rejected", func(t *testing.T) {
		gateway := new(MockOrderGateway)
		handler := handlers.NewOrderHandler(zap.NewNop(), gateway)
		c, rec := newCreateContext(e, `{"totalAmount":"25.00","paymentSource":"bitcoin"}`)

		require.NoError(t, handler.CreateCheckoutOrder(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("non-decimal amount is rejected", func(t *testing.T) {
		gateway := new(MockOrderGateway)
		handler := handlers.NewOrderHandler(zap.NewNop(), gateway)
		c, rec := newCreateContext(e, `{"totalAmount":"lots","paymentSource":"card"}`)

		require.NoError(t, handler.CreateCheckoutOrder(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		gateway.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("upstream order error status passes through", func(t *testing.T) {
		gateway := new(MockOrderGateway)
		gateway.On("CreateOrder", mock.Anything, "25.00", order.SourceCard).
			Return(nil, &domainErrors.UpstreamOrderError{
				Status: http.StatusUnprocessableEntity,
				Body:   `{"name":"UNPROCESSABLE_ENTITY"}`,
			})

		handler := handlers.NewOrderHandler(zap.NewNop(), gateway)
		c, rec := newCreateContext(e, `{"totalAmount":"25.00","paymentSource":"card"}`)

		require.NoError(t, handler.CreateCheckoutOrder(c))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "UNPROCESSABLE_ENTITY")
	})

	t.Run("auth failure maps to 502", func(t *testing.T) {
		gateway := new(MockOrderGateway)
		gateway.On("CreateOrder", mock.Anything, "25.00", order.SourcePayPal).
			Return(nil, &domainErrors.UpstreamAuthError{Status: http.StatusServiceUnavailable})

		handler := handlers.NewOrderHandler(zap.NewNop(), gateway)
		c, rec := newCreateContext(e, `{"totalAmount":"25.00","paymentSource":"paypal"}`)

		require.NoError(t, handler.CreateCheckoutOrder(c))
		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "message")
	})
}

func TestCapturePayment(t *testing.T) {
	e := echo.New()

	newCaptureContext := func(orderID string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodPost, "/api/orders/"+orderID+"/capture", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("orderID")
		c.SetParamValues(orderID)
		return c, rec
	}

	t.Run("returns capture payload", func(t *testing.T) {
		gateway := new(MockOrderGateway)
		gateway.On("CaptureOrder", mock.Anything, "ORDER1").
			Return(&order.CaptureResult{
				ID:     "ORDER1",
				Status: order.StatusCompleted,
				PurchaseUnits: []order.PurchaseUnit{{
					Payments: &order.Payments{Captures: []order.Capture{{
						ID:     "CAP1",
						Status: order.StatusCompleted,
						Amount: order.Amount{Value: "25.00", CurrencyCode: "USD"},
					}}},
				}},
			}, nil)

		handler := handlers.NewOrderHandler(zap.NewNop(), gateway)
		c, rec := newCaptureContext("ORDER1")

		require.NoError(t, handler.CapturePayment(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"captures"`)
		assert.Contains(t, rec.Body.String(), "CAP1")
	})

	t.Run("upstream failure passes status through", func(t *testing.T) {
		gateway := new(MockOrderGateway)
		gateway.On("CaptureOrder", mock.Anything, "MISSING").
			Return(nil, &domainErrors.UpstreamOrderError{Status: http.StatusNotFound, Body: "not found"})

		handler := handlers.NewOrderHandler(zap.NewNop(), gateway)
		c, rec := newCaptureContext("MISSING")

		require.NoError(t, handler.CapturePayment(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAuthorizePayment(t *testing.T) {
	e := echo.New()
	gateway := new(MockOrderGateway)
	gateway.On("AuthorizeOrder", mock.Anything, "ORDER1").
		Return(&order.AuthorizeResult{
			ID: "ORDER1",
			PurchaseUnits: []order.PurchaseUnit{{
				Payments: &order.Payments{Authorizations: []order.Authorization{{
					ID:     "AUTH1",
					Status: order.StatusCreated,
					Amount: order.Amount{Value: "25.00", CurrencyCode: "USD"},
				}}},
			}},
		}, nil)

	handler := handlers.NewOrderHandler(zap.NewNop(), gateway)
	req := httptest.NewRequest(http.MethodPost, "/api/orders/ORDER1/authorize", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("orderID")
	c.SetParamValues("ORDER1")

	require.NoError(t, handler.AuthorizePayment(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authorizations"`)
}
