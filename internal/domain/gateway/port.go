// Package gateway defines the capability-bounded port to the external
// payment processor and the pure mapping from external statuses to
// internal decisions.
package gateway

import "context"

//go:generate mockgen -source port.go -destination mock_port.go -package gateway

// Provider creates an external payment order and polls its result. Calls
// are blocking round trips; callers must not hold database transactions
// or locks across them.
type Provider interface {
	CreateExternalOrder(ctx context.Context, req CreateOrderRequest) (ExternalOrder, error)
	FetchExternalOrder(ctx context.Context, token string) (ExternalOrderState, error)
}

type CreateOrderRequest struct {
	Amount    float64
	Currency  string
	ReturnURL string
	CancelURL string
}

/// ExternalOrder is the gateway's handle for a created payment: the URL
// the buyer is redirected to and the correlation token stored on the
// local transaction.
type ExternalOrder struct {
	ApprovalURL string
	Token       string
}

type ExternalOrderState struct {
	Token  string
	Status string
}
