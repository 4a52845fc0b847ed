package voucher

import (
	"time"

	"github.com/google/uuid"
)

// Voucher is a single-use percentage discount issued to one user.
type Voucher struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Code       string    `json:"code"`
	Percentage float64   `json:"percentage"`
	Valid      bool      `json:"valid"`
	CreateDate time.Time `json:"create_date"`
	ExpireDate time.Time `json:"expire_date"`
}

// UsableAt reports whether the voucher can be redeemed at the given time.
func (v Voucher) UsableAt(now time.Time) bool {
	return v.Valid && !now.Before(v.CreateDate) && !now.After(v.ExpireDate)
}
