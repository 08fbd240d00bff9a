package paypal

import "github.com/seampay/checkout-demo/internal/domain/order"

// BuildPaymentSource maps a payment method tag to the processor-specific
// payment_source request fragment. Unrecognized tags produce an empty
// fragment; rejecting them is the HTTP boundary's job.
func BuildPaymentSource(source order.Source, returnURL string) map[string]interface{} {
	switch source {
	case order.SourcePayPal:
		return map[string]interface{}{
			"paypal": map[string]interface{}{
				"experience_context": map[string]interface{}{
					"return_url":  returnURL + "/checkout",
					"cancel_url":  returnURL + "/checkout",
					"user_action": "PAY_NOW",
				},
			},
		}
	case order.SourceCard:
		return map[string]interface{}{"card": map[string]interface{}{}}
	case order.SourceVenmo:
		return map[string]interface{}{"venmo": map[string]interface{}{}}
	case order.SourceApplePay:
		return map[string]interface{}{"apple_pay": map[string]interface{}{}}
	default:
		return map[string]interface{}{}
	}
}
