package usecase

import (
	"context"

	"github.com/seampay/checkout-demo/internal/domain/order"
)

// OrderService is the slice of the order lifecycle the checkout flows drive.
// On the server it is satisfied by the PayPal gateway; from a client's point
// of view it is the order-proxy API.
type OrderService interface {
	CreateOrder(ctx context.Context, amount string, source order.Source) (*order.Order, error)
	CaptureOrder(ctx context.Context, orderID string) (*order.CaptureResult, error)
}

// Display is the user-interface sink the flows report progress to.
type Display interface {
	ShowInfo(title, message string)
	ShowSuccess(message string)
}

// WalletConfig is the processor's eligibility response for the native wallet.
// The payment request is built from these values, never hardcoded.
type WalletConfig struct {
	IsEligible           bool
	CountryCode          string
	CurrencyCode         string
	SupportedNetworks    []string
	MerchantCapabilities []string
}

// PaymentToken and Contact are opaque payloads handed over by the wallet
// runtime and passed through to the confirm step untouched.
type PaymentToken map[string]interface{}

type Contact map[string]interface{}

// MerchantSession is the opaque session blob returned by merchant validation.
type MerchantSession map[string]interface{}

// Payment is the wallet runtime's authorization payload.
type Payment struct {
	Token           PaymentToken
	BillingContact  Contact
	ShippingContact Contact
}

type ConfirmOrderRequest struct {
	OrderID         string
	Token           PaymentToken
	BillingContact  Contact
	ShippingContact Contact
}

type ConfirmOrderResult struct {
	OrderID string
}

// WalletGateway is the hosted SDK's native-wallet surface.
type WalletGateway interface {
	Config(ctx context.Context) (*WalletConfig, error)
	ValidateMerchant(ctx context.Context, validationURL, displayName string) (MerchantSession, error)
	ConfirmOrder(ctx context.Context, req ConfirmOrderRequest) (*ConfirmOrderResult, error)
}

// PaymentStatus is the terminal signal sent back to the wallet session.
type PaymentStatus int

const (
	PaymentSuccess PaymentStatus = iota
	PaymentFailure
)

// WalletSession is one run of the device-native wallet UI.
type WalletSession interface {
	CompleteMerchantValidation(session MerchantSession)
	CompletePayment(status PaymentStatus)
	Abort()
}

// PaymentRequest describes the sheet the wallet runtime presents.
type PaymentRequest struct {
	CountryCode          string
	CurrencyCode         string
	SupportedNetworks    []string
	MerchantCapabilities []string
	Total                LineItem
}

type LineItem struct {
	Label  string
	Amount string
	Type   string
}

// WalletRuntime creates device sessions from a payment request.
type WalletRuntime interface {
	NewSession(request PaymentRequest) WalletSession
}
