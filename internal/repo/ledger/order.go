package ledger_repo

import (
	"context"
	"errors"
	"fmt"

	"coursepay/internal/controller/apperror"
	"coursepay/internal/domain/order"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (r *repo) GetOrderByID(ctx context.Context, id uuid.UUID) (order.Order, error) {
	return r.getOrder(ctx, squirrel.Eq{"id": id})
}

func (r *repo) GetPendingOrderByCartID(ctx context.Context, cartID uuid.UUID) (order.Order, error) {
	return r.getOrder(ctx, squirrel.Eq{"cart_id": cartID, "status": order.StatusPendingPayment})
}

func (r *repo) GetOrderByTransactionID(ctx context.Context, transactionID uuid.UUID) (order.Order, error) {
	return r.getOrder(ctx, squirrel.Eq{"transaction_id": transactionID})
}

func (r *repo) getOrder(ctx context.Context, where squirrel.Eq) (order.Order, error) {
	query, args, err := r.builder.
		Select("id", "user_id", "cart_id", "transaction_id", "amount", "discount_code",
			"discount_amount", "paid_amount", "status", "created_at", "updated_at").
		From("orders").
		Where(where).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return order.Order{}, fmt.Errorf("build order query: %w", err)
	}

	var o order.Order
	var rawStatus string
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&o.ID, &o.UserID, &o.CartID, &o.TransactionID, &o.Amount, &o.DiscountCode,
		&o.DiscountAmount, &o.PaidAmount, &rawStatus, &o.CreatedAt, &o.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return order.Order{}, apperror.ErrOrderNotFound
	}
	if err != nil {
		return order.Order{}, fmt.Errorf("query order: %w", err)
	}

	status, err := order.NewStatus(rawStatus)
	if err != nil {
		return order.Order{}, fmt.Errorf("invalid status in database: %w", err)
	}
	o.Status = status
	return o, nil
}

func (r *repo) CreateOrder(ctx context.Context, o order.Order) error {
	query, args, err := r.builder.
		Insert("orders").
		Columns("id", "user_id", "cart_id", "transaction_id", "amount", "discount_code",
			"discount_amount", "paid_amount", "status").
		Values(o.ID, o.UserID, o.CartID, o.TransactionID, o.Amount, o.DiscountCode,
			o.DiscountAmount, o.PaidAmount, o.Status).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert order query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

// TransitionOrder is a conditional update: it succeeds only when the
// order is still in the expected status, so two writers racing on the
// same terminal transition resolve to one winner.
func (r *repo) TransitionOrder(ctx context.Context, id uuid.UUID, from, to order.Status) (bool, error) {
	query, args, err := r.builder.
		Update("orders").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build order transition query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("transition order: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
