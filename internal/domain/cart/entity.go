package cart

import (
	"time"

	"github.com/google/uuid"
)

// Cart is a user's open collection of course selections. A user has at
// most one non-purchased cart at a time; checkout reuses the open cart
// and settlement marks it purchased. Purchased carts are never deleted.
type Cart struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Purchased bool       `json:"purchased"`
	Items     []Item     `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Item snapshots a course and its price at add-to-cart time. Immutable
// once the cart is purchased.
type Item struct {
	ID          uuid.UUID `json:"id"`
	CartID      uuid.UUID `json:"cart_id"`
	CourseID    uuid.UUID `json:"course_id"`
	CourseTitle string    `json:"course_title"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

// Subtotal is the sum of the item price snapshots.
func (c Cart) Subtotal() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.Price
	}
	return total
}

// Empty reports whether the cart has no items.
func (c Cart) Empty() bool {
	return len(c.Items) == 0
}
