package transaction

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Transaction is the gateway-facing record of money movement, independent
// of what it pays for. Token holds the external correlation id once the
// gateway order is created.
type Transaction struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"payment_method"`
	Kind          Kind      `json:"kind"`
	Status        Status    `json:"status"`
	Token         string    `json:"token,omitempty"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Kind discriminates purchase transactions from payout transactions.
type Kind string

const (
	KindPurchase Kind = "purchase"
	KindPayout   Kind = "payout"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

var AvailableStatuses = []Status{StatusPending, StatusCompleted, StatusFailed}

// CanBeUpdatedTo reports whether the status transition is legal. Completed
// and Failed are terminal; retried gateway callbacks must not reopen them.
func (s Status) CanBeUpdatedTo(newStatus Status) bool {
	switch s {
	case StatusPending:
		return slices.Contains([]Status{StatusCompleted, StatusFailed}, newStatus)
	default:
		return false
	}
}

// Terminal reports whether no further transition is permitted.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

func NewStatus(raw string) (Status, error) {
	if slices.Contains(AvailableStatuses, Status(raw)) {
		return Status(raw), nil
	}
	return "", errors.New("invalid transaction status")
}
