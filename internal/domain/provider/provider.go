package provider

import (
	"context"

	"github.com/seampay/checkout-demo/internal/domain/order"
)

// AccessTokenProvider exchanges the configured client credentials for a
// short-lived bearer token. Tokens are opaque and fetched fresh per call;
// callers decide about retries.
type AccessTokenProvider interface {
	GetAccessToken(ctx context.Context) (string, error)
}

// OrderGateway is the stateless proxy to the processor's checkout order API.
// A capture or authorize call must only ever be issued with an id returned by
// a successful CreateOrder.
type OrderGateway interface {
	CreateOrder(ctx context.Context, amount string, source order.Source) (*order.Order, error)
	CaptureOrder(ctx context.Context, orderID string) (*order.CaptureResult, error)
	AuthorizeOrder(ctx context.Context, orderID string) (*order.AuthorizeResult, error)
}
