package settlement

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source sink.go -destination mock_sink.go -package settlement

// Doc is the searchable record of a settled order, indexed for the
// earnings dashboard. Indexing is best-effort and happens after commit.
type Doc struct {
	OrderID        uuid.UUID `json:"order_id"`
	UserID         uuid.UUID `json:"user_id"`
	PaidAmount     float64   `json:"paid_amount"`
	PlatformAmount float64   `json:"platform_amount"`
	Courses        []string  `json:"courses"`
	Credits        []Credit  `json:"credits"`
	SettledAt      time.Time `json:"settled_at"`
}

// Credit is one instructor's share of a settled order.
type Credit struct {
	InstructorID uuid.UUID `json:"instructor_id"`
	WalletID     uuid.UUID `json:"wallet_id"`
	Amount       float64   `json:"amount"`
}

// EventSink indexes settlement records for search and reporting.
type EventSink interface {
	IndexSettlement(ctx context.Context, doc Doc) error
}
