package order

// Source identifies the payment method chosen by the payer.
type Source string

const (
	SourcePayPal   Source = "paypal"
	SourceCard     Source = "card"
	SourceVenmo    Source = "venmo"
	SourceApplePay Source = "applepay"
)

// Known reports whether the tag is one the checkout understands. Unknown tags
// are rejected at the HTTP boundary; the request-fragment builder itself stays
// permissive.
func (s Source) Known() bool {
	switch s {
	case SourcePayPal, SourceCard, SourceVenmo, SourceApplePay:
		return true
	}
	return false
}
