package order

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Order is a priced, checkout-time snapshot of a cart awaiting or having
// completed payment. Amount already includes tax; PaidAmount is what the
// gateway actually charges after the discount.
type Order struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	CartID         uuid.UUID `json:"cart_id"`
	TransactionID  uuid.UUID `json:"transaction_id"`
	Amount         float64   `json:"amount"`
	DiscountCode   *string   `json:"discount_code,omitempty"`
	DiscountAmount float64   `json:"discount_amount"`
	PaidAmount     float64   `json:"paid_amount"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Status string

const (
	StatusPendingPayment Status = "pending_payment"
	StatusPaid           Status = "paid"
	StatusFailed         Status = "failed"
)

var AvailableStatuses = []Status{StatusPendingPayment, StatusPaid, StatusFailed}

// CanBeUpdatedTo reports whether the status transition is legal. Paid and
// Failed are terminal.
func (s Status) CanBeUpdatedTo(newStatus Status) bool {
	switch s {
	case StatusPendingPayment:
		return slices.Contains([]Status{StatusPaid, StatusFailed}, newStatus)
	default:
		return false
	}
}

func NewStatus(raw string) (Status, error) {
	if slices.Contains(AvailableStatuses, Status(raw)) {
		return Status(raw), nil
	}
	return "", errors.New("invalid order status")
}
