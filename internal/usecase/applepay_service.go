package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domainErrors "github.com/seampay/checkout-demo/internal/domain/errors"
	"github.com/seampay/checkout-demo/internal/domain/order"
)

// WalletPhase names the states of one native-wallet session.
type WalletPhase string

const (
	WalletStarted   WalletPhase = "started"
	WalletValidated WalletPhase = "validated"
	WalletCaptured  WalletPhase = "captured"
	WalletFailed    WalletPhase = "failed"
	WalletCancelled WalletPhase = "cancelled"
)

// WalletFlow is one run of the native-wallet payment. It is created when the
// user actuates the wallet button and becomes inactive when any terminal
// callback fires. Callback bodies gate on the active flag after every network
// round trip so a late resolution from an abandoned session cannot render.
type WalletFlow struct {
	Request PaymentRequest

	session WalletSession
	amount  string
	phase   WalletPhase
	active  bool
}

func (f *WalletFlow) Phase() WalletPhase {
	return f.phase
}

func (f *WalletFlow) Active() bool {
	return f.active
}

// ApplePayService drives the native-wallet flow: eligibility, session start,
// merchant validation, payment authorization, cancellation.
type ApplePayService struct {
	orders      OrderService
	wallet      WalletGateway
	runtime     WalletRuntime
	display     Display
	logger      *zap.Logger
	displayName string

	config *WalletConfig
}

func NewApplePayService(orders OrderService, wallet WalletGateway, runtime WalletRuntime, display Display, displayName string, logger *zap.Logger) *ApplePayService {
	return &ApplePayService{
		orders:      orders,
		wallet:      wallet,
		runtime:     runtime,
		display:     display,
		logger:      logger,
		displayName: displayName,
	}
}

// CheckEligibility queries the processor's wallet configuration. An
// ineligible or failed check hides the wallet affordance; no error is shown
// to the user.
func (s *ApplePayService) CheckEligibility(ctx context.Context) bool {
	cfg, err := s.wallet.Config(ctx)
	if err != nil {
		s.logger.Warn("ApplePay: eligibility check failed", zap.Error(err))
		return false
	}
	if !cfg.IsEligible {
		s.logger.Info("ApplePay: merchant not eligible")
		return false
	}

	s.config = cfg
	return true
}

// StartSession builds the payment request from the eligibility response and
// begins a device session for the given amount.
func (s *ApplePayService) StartSession(amount string) (*WalletFlow, error) {
	if s.config == nil || !s.config.IsEligible {
		return nil, fmt.Errorf("wallet session requires a successful eligibility check")
	}

	normalized, err := order.NormalizeAmount(amount)
	if err != nil {
		normalized = "10.00"
	}

	flow := &WalletFlow{
		Request: PaymentRequest{
			CountryCode:          s.config.CountryCode,
			CurrencyCode:         s.config.CurrencyCode,
			SupportedNetworks:    s.config.SupportedNetworks,
			MerchantCapabilities: s.config.MerchantCapabilities,
			Total: LineItem{
				Label:  s.displayName,
				Amount: normalized,
				Type:   "final",
			},
		},
		amount: normalized,
		phase:  WalletStarted,
		active: true,
	}
	flow.session = s.runtime.NewSession(flow.Request)

	s.logger.Info("ApplePay: session started",
		zap.String("amount", normalized),
		zap.String("country", s.config.CountryCode))

	return flow, nil
}

// OnValidateMerchant handles the merchant-validation callback. On success the
// session resumes with the merchant session blob; on failure the session is
// aborted and payment authorization must never run.
func (s *ApplePayService) OnValidateMerchant(ctx context.Context, flow *WalletFlow, validationURL string) error {
	if !flow.active {
		return domainErrors.ErrSessionAbandoned
	}
	if flow.phase != WalletStarted {
		return fmt.Errorf("merchant validation received in phase %s", flow.phase)
	}

	merchantSession, err := s.wallet.ValidateMerchant(ctx, validationURL, s.displayName)
	if !flow.active {
		return domainErrors.ErrSessionAbandoned
	}
	if err != nil {
		flow.session.Abort()
		flow.phase = WalletFailed
		flow.active = false
		s.logger.Error("ApplePay: merchant validation failed", zap.Error(err))
		s.display.ShowInfo("Apple Pay Error", fmt.Sprintf("Merchant validation failed: %v", err))
		return &domainErrors.ValidationFailedError{Err: err}
	}

	flow.session.CompleteMerchantValidation(merchantSession)
	flow.phase = WalletValidated
	return nil
}

// OnPaymentAuthorized handles the payment-token callback. The steps are
// strictly ordered: create the order, confirm it with the wallet token,
// signal success to the session before capturing so the wallet sheet closes
// promptly, then capture and display the result. Any failure signals payment
// failure to the session; the session is never left open.
func (s *ApplePayService) OnPaymentAuthorized(ctx context.Context, flow *WalletFlow, payment Payment) error {
	if !flow.active {
		return domainErrors.ErrSessionAbandoned
	}
	if flow.phase != WalletValidated {
		err := fmt.Errorf("payment authorized before merchant validation completed")
		s.failPayment(flow, err)
		return err
	}

	created, err := s.orders.CreateOrder(ctx, flow.amount, order.SourceApplePay)
	if !flow.active {
		return domainErrors.ErrSessionAbandoned
	}
	if err != nil {
		s.failPayment(flow, err)
		return err
	}

	confirmed, err := s.wallet.ConfirmOrder(ctx, ConfirmOrderRequest{
		OrderID:         created.ID,
		Token:           payment.Token,
		BillingContact:  payment.BillingContact,
		ShippingContact: payment.ShippingContact,
	})
	if !flow.active {
		return domainErrors.ErrSessionAbandoned
	}
	if err != nil {
		s.failPayment(flow, err)
		return err
	}

	// The wallet protocol requires the success signal before capture.
	flow.session.CompletePayment(PaymentSuccess)

	result, err := s.orders.CaptureOrder(ctx, confirmed.OrderID)
	if !flow.active {
		return domainErrors.ErrSessionAbandoned
	}
	if err != nil {
		s.failPayment(flow, err)
		return err
	}

	capture, ok := result.FirstCapture()
	if !ok {
		err := fmt.Errorf("capture result for order %s contained no transaction", confirmed.OrderID)
		s.failPayment(flow, err)
		return err
	}

	flow.phase = WalletCaptured
	flow.active = false
	s.display.ShowInfo("Apple Pay Payment Successful", fmt.Sprintf(
		"Transaction ID: %s\nAmount: %s %s\nStatus: %s",
		capture.ID, capture.Amount.Value, capture.Amount.CurrencyCode, capture.Status))
	s.display.ShowSuccess("Apple Pay payment completed successfully!")
	return nil
}

// OnCancel is terminal at any point before authorization completes; no
// network calls are made and later callbacks are ignored.
func (s *ApplePayService) OnCancel(flow *WalletFlow) {
	if !flow.active {
		return
	}
	flow.phase = WalletCancelled
	flow.active = false
	s.display.ShowInfo("Apple Pay Cancelled", "User cancelled Apple Pay")
}

func (s *ApplePayService) failPayment(flow *WalletFlow, err error) {
	flow.session.CompletePayment(PaymentFailure)
	flow.phase = WalletFailed
	flow.active = false
	s.logger.Error("ApplePay: payment failed", zap.Error(err))
	s.display.ShowInfo("Apple Pay Error", fmt.Sprintf("Payment failed: %v", err))
}
