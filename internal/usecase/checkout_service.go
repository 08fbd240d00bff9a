package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/seampay/checkout-demo/internal/domain/order"
)

// CheckoutPhase names the states of the hosted-widget flow.
type CheckoutPhase string

const (
	CheckoutIdle      CheckoutPhase = "idle"
	CheckoutCreated   CheckoutPhase = "created"
	CheckoutCaptured  CheckoutPhase = "captured"
	CheckoutFailed    CheckoutPhase = "failed"
	CheckoutCancelled CheckoutPhase = "cancelled"
)

var errNoOrderInFlow = errors.New("no order was created in this flow")

// CheckoutService drives the hosted-widget callback protocol: the SDK asks it
// to create an order, reports approval, cancellation, or an error. Each run is
// a fresh attempt; nothing is retried. The SDK invokes callbacks one at a
// time, so the service assumes cooperative single-threaded use.
type CheckoutService struct {
	orders  OrderService
	display Display
	logger  *zap.Logger
	amount  func() string

	phase   CheckoutPhase
	orderID string
}

func NewCheckoutService(orders OrderService, display Display, amount func() string, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		orders:  orders,
		display: display,
		logger:  logger,
		amount:  amount,
		phase:   CheckoutIdle,
	}
}

// Phase returns the current state of the flow.
func (s *CheckoutService) Phase() CheckoutPhase {
	return s.phase
}

// CreateOrder begins a fresh attempt with the currently displayed amount and
// the active payment method. The returned order id is handed to the SDK; a
// returned error tells the SDK to abort its UI flow.
func (s *CheckoutService) CreateOrder(ctx context.Context, source order.Source) (string, error) {
	amount, err := order.NormalizeAmount(s.amount())
	if err != nil {
		amount = "10.00"
	}

	created, err := s.orders.CreateOrder(ctx, amount, source)
	if err != nil {
		s.phase = CheckoutFailed
		s.logger.Error("Checkout: order creation failed", zap.Error(err))
		s.display.ShowInfo("Error", fmt.Sprintf("Failed to create order: %v", err))
		return "", err
	}

	s.phase = CheckoutCreated
	s.orderID = created.ID
	s.display.ShowInfo("Order Created", "Order ID: "+created.ID)
	return created.ID, nil
}

// OnApprove captures the approved order and shows the transaction. Capture is
// only ever issued with the id produced by this flow's CreateOrder.
func (s *CheckoutService) OnApprove(ctx context.Context, orderID string) error {
	if s.phase != CheckoutCreated || orderID == "" || orderID != s.orderID {
		s.logger.Warn("Checkout: approval for unknown order ignored",
			zap.String("order_id", orderID),
			zap.String("phase", string(s.phase)))
		return errNoOrderInFlow
	}

	result, err := s.orders.CaptureOrder(ctx, orderID)
	if err != nil {
		s.phase = CheckoutFailed
		s.logger.Error("Checkout: capture failed",
			zap.String("order_id", orderID),
			zap.Error(err))
		s.display.ShowInfo("Error", fmt.Sprintf("Failed to capture payment: %v", err))
		return err
	}

	capture, ok := result.FirstCapture()
	if !ok {
		s.phase = CheckoutFailed
		s.display.ShowInfo("Error", "Capture result contained no transaction")
		return fmt.Errorf("capture result for order %s contained no transaction", orderID)
	}

	s.phase = CheckoutCaptured
	s.display.ShowInfo("Payment Successful", fmt.Sprintf(
		"Transaction ID: %s\nAmount: %s %s\nStatus: %s",
		capture.ID, capture.Amount.Value, capture.Amount.CurrencyCode, capture.Status))
	s.display.ShowSuccess("Payment completed successfully!")
	return nil
}

// OnCancel is terminal; no network calls are made.
func (s *CheckoutService) OnCancel() {
	s.phase = CheckoutCancelled
	s.display.ShowInfo("Payment Cancelled", "User cancelled the payment")
}

// OnError is terminal; no network calls are made.
func (s *CheckoutService) OnError(err error) {
	s.phase = CheckoutFailed
	s.logger.Error("Checkout: SDK reported an error", zap.Error(err))
	s.display.ShowInfo("Payment Error", "An error occurred during payment processing")
}
