// Package notify defines the fire-and-forget outbound signal contracts.
// Implementations must never fail a financial transition; callers log
// and swallow errors.
package notify

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source port.go -destination mock_port.go -package notify

// PurchaseNote describes a settled order for the buyer notification.
type PurchaseNote struct {
	UserID     uuid.UUID
	OrderID    uuid.UUID
	PaidAmount float64
	Courses    []string
}

// PayoutNote describes a payout decision for the instructor notification.
type PayoutNote struct {
	InstructorID  uuid.UUID
	TransactionID uuid.UUID
	Amount        float64
	Reason        string
}

type Notifier interface {
	NotifyPurchase(ctx context.Context, note PurchaseNote) error
	NotifyPayoutApproved(ctx context.Context, note PayoutNote) error
	NotifyPayoutDenied(ctx context.Context, note PayoutNote) error
}

// StatsRefresher signals the dashboards to recompute after a completed
// purchase or a payout decision.
type StatsRefresher interface {
	RefreshStats(ctx context.Context, scope string) error
}
