package wallet

import (
	"time"

	"github.com/google/uuid"
)

// Wallet holds an instructor's withdrawable earnings. Created lazily when
// the instructor is approved; it is one of the two mutable money stores,
// every balance change goes through the settlement or payout service and
// is paired with a History line in the same database transaction.
type Wallet struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// History is an append-only ledger line written whenever a wallet balance
// changes. Never mutated or deleted.
type History struct {
	ID            uuid.UUID `json:"id"`
	WalletID      uuid.UUID `json:"wallet_id"`
	Platform      bool      `json:"platform"`
	AmountChanged float64   `json:"amount_changed"`
	NewBalance    float64   `json:"new_balance"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}

// Platform is the operator's single-row wallet accumulating the platform
// cut. Read and written only inside the settlement unit of work; never
// cached across requests.
type Platform struct {
	ID        int       `json:"id"`
	Balance   float64   `json:"balance"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InstructorInfo aggregates reporting figures mirrored from the wallet.
type InstructorInfo struct {
	UserID         uuid.UUID `json:"user_id"`
	TotalEarning   float64   `json:"total_earning"`
	TotalWithdrawn float64   `json:"total_withdrawn"`
	UpdatedAt      time.Time `json:"updated_at"`
}
