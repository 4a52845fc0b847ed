package wallet

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
)

// PayoutRequest is an instructor's withdrawal request. It references the
// payout's own pending transaction; the wallet is debited only when the
// request is approved, so a rejected payout never touched the balance.
type PayoutRequest struct {
	ID            uuid.UUID    `json:"id"`
	InstructorID  uuid.UUID    `json:"instructor_id"`
	TransactionID uuid.UUID    `json:"transaction_id"`
	Amount        float64      `json:"amount"`
	Status        PayoutStatus `json:"status"`
	Reason        *string      `json:"reason,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type PayoutStatus string

const (
	PayoutPending  PayoutStatus = "pending"
	PayoutApproved PayoutStatus = "approved"
	PayoutRejected PayoutStatus = "rejected"
)

var AvailablePayoutStatuses = []PayoutStatus{PayoutPending, PayoutApproved, PayoutRejected}

// CanBeUpdatedTo reports whether the status transition is legal.
// Approved and Rejected are terminal.
func (s PayoutStatus) CanBeUpdatedTo(newStatus PayoutStatus) bool {
	switch s {
	case PayoutPending:
		return slices.Contains([]PayoutStatus{PayoutApproved, PayoutRejected}, newStatus)
	default:
		return false
	}
}

func NewPayoutStatus(raw string) (PayoutStatus, error) {
	if slices.Contains(AvailablePayoutStatuses, PayoutStatus(raw)) {
		return PayoutStatus(raw), nil
	}
	return "", errors.New("invalid payout status")
}
