// Package ledger defines the persistence port for the payment pipeline:
// carts, orders, transactions, wallets, payout requests and enrollments.
// Status transitions are conditional updates; the boolean result reports
// whether this caller won the transition, so two writers racing to close
// the same transaction resolve to exactly one outcome.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"coursepay/internal/domain/cart"
	"coursepay/internal/domain/order"
	"coursepay/internal/domain/transaction"
	"coursepay/internal/domain/voucher"
	"coursepay/internal/domain/wallet"
)

//go:generate mockgen -source store.go -destination mock_store.go -package ledger

// Enrollment records granted course access. Written once per
// (user, course) at settlement.
type Enrollment struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	CourseID  uuid.UUID `json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TxStore is the ledger surface available both on the pool and inside a
// database transaction.
type TxStore interface {
	// Carts.
	GetOpenCart(ctx context.Context, userID uuid.UUID) (cart.Cart, error)
	GetCartByID(ctx context.Context, id uuid.UUID) (cart.Cart, error)
	CreateCart(ctx context.Context, c cart.Cart) error
	AddCartItem(ctx context.Context, item cart.Item) error
	MarkCartPurchased(ctx context.Context, cartID uuid.UUID) error

	// Orders.
	GetOrderByID(ctx context.Context, id uuid.UUID) (order.Order, error)
	GetPendingOrderByCartID(ctx context.Context, cartID uuid.UUID) (order.Order, error)
	GetOrderByTransactionID(ctx context.Context, transactionID uuid.UUID) (order.Order, error)
	CreateOrder(ctx context.Context, o order.Order) error
	TransitionOrder(ctx context.Context, id uuid.UUID, from, to order.Status) (bool, error)

	// Transactions.
	CreateTransaction(ctx context.Context, t transaction.Transaction) error
	GetTransactionByID(ctx context.Context, id uuid.UUID) (transaction.Transaction, error)
	GetTransactionByToken(ctx context.Context, token string) (transaction.Transaction, error)
	// SetTransactionToken stores the gateway correlation id; it succeeds
	// only while the transaction is pending and not yet tokenized.
	SetTransactionToken(ctx context.Context, id uuid.UUID, token string) (bool, error)
	TransitionTransaction(ctx context.Context, id uuid.UUID, from, to transaction.Status) (bool, error)
	ListPendingTransactionsBefore(ctx context.Context, kind transaction.Kind, cutoff time.Time) ([]transaction.Transaction, error)

	// Vouchers.
	GetVoucher(ctx context.Context, userID uuid.UUID, code string) (voucher.Voucher, error)
	InvalidateVoucher(ctx context.Context, id uuid.UUID) (bool, error)

	// Wallets. Credit and debit return the resulting balance; debit is
	// conditional on sufficient funds.
	GetWalletByUser(ctx context.Context, userID uuid.UUID) (wallet.Wallet, error)
	CreditWallet(ctx context.Context, walletID uuid.UUID, amount float64) (float64, error)
	DebitWallet(ctx context.Context, walletID uuid.UUID, amount float64) (float64, bool, error)
	AppendWalletHistory(ctx context.Context, h wallet.History) error
	GetWalletHistory(ctx context.Context, walletID uuid.UUID) ([]wallet.History, error)
	CreditPlatformWallet(ctx context.Context, amount float64) (float64, error)
	AddInstructorEarning(ctx context.Context, userID uuid.UUID, amount float64) error
	AddInstructorWithdrawn(ctx context.Context, userID uuid.UUID, amount float64) error

	// Enrollments.
	HasEnrollment(ctx context.Context, userID, courseID uuid.UUID) (bool, error)
	CreateEnrollment(ctx context.Context, e Enrollment) error

	// Payout requests.
	CreatePayoutRequest(ctx context.Context, r wallet.PayoutRequest) error
	GetPayoutRequest(ctx context.Context, id uuid.UUID) (wallet.PayoutRequest, error)
	TransitionPayout(ctx context.Context, id uuid.UUID, from, to wallet.PayoutStatus, reason *string) (bool, error)
}

// Store is the ledger port. InTransaction runs fn atomically; every
// money-moving unit of work in the pipeline goes through it.
type Store interface {
	TxStore
	InTransaction(ctx context.Context, fn func(tx TxStore) error) error
}
