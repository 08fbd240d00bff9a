package order

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Lifecycle statuses as reported by the processor. Every transition is a
// fresh remote call returning a new representation; nothing is stored locally.
const (
	StatusCreated   = "CREATED"
	StatusApproved  = "APPROVED"
	StatusCompleted = "COMPLETED"
	StatusVoided    = "VOIDED"
)

// Order is the processor's representation of a checkout order.
type Order struct {
	ID            string         `json:"id"`
	Status        string         `json:"status,omitempty"`
	PurchaseUnits []PurchaseUnit `json:"purchase_units,omitempty"`
	Links         []Link         `json:"links,omitempty"`
}

type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method,omitempty"`
}

type Amount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type PurchaseUnit struct {
	ReferenceID string    `json:"reference_id,omitempty"`
	Amount      *Amount   `json:"amount,omitempty"`
	Payments    *Payments `json:"payments,omitempty"`
}

type Payments struct {
	Captures       []Capture       `json:"captures,omitempty"`
	Authorizations []Authorization `json:"authorizations,omitempty"`
}

// Capture is a finalized transfer of authorized funds.
type Capture struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Amount Amount `json:"amount"`
}

// Authorization is a reservation of funds that has not been finalized.
type Authorization struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Amount Amount `json:"amount"`
}

// CaptureResult is the processor payload returned by a capture call.
type CaptureResult struct {
	ID            string         `json:"id"`
	Status        string         `json:"status,omitempty"`
	PurchaseUnits []PurchaseUnit `json:"purchase_units"`
}

// FirstCapture returns the first capture of the first purchase unit, which is
// the transaction shown to the payer.
func (r *CaptureResult) FirstCapture() (*Capture, bool) {
	if len(r.PurchaseUnits) == 0 {
		return nil, false
	}
	payments := r.PurchaseUnits[0].Payments
	if payments == nil || len(payments.Captures) == 0 {
		return nil, false
	}
	return &payments.Captures[0], true
}

// AuthorizeResult is the processor payload returned by an authorize call. It
// mirrors CaptureResult under authorizations.
type AuthorizeResult struct {
	ID            string         `json:"id"`
	Status        string         `json:"status,omitempty"`
	PurchaseUnits []PurchaseUnit `json:"purchase_units"`
}

func (r *AuthorizeResult) FirstAuthorization() (*Authorization, bool) {
	if len(r.PurchaseUnits) == 0 {
		return nil, false
	}
	payments := r.PurchaseUnits[0].Payments
	if payments == nil || len(payments.Authorizations) == 0 {
		return nil, false
	}
	return &payments.Authorizations[0], true
}

var ErrInvalidAmount = errors.New("amount must be a positive decimal")

// NormalizeAmount parses a decimal amount string and renders it with two
// fractional digits, the form the processor expects for USD.
func NormalizeAmount(value string) (string, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return "", ErrInvalidAmount
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return "", ErrInvalidAmount
	}
	return amount.StringFixed(2), nil
}
