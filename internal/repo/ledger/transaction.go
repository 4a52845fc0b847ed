package ledger_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coursepay/internal/controller/apperror"
	"coursepay/internal/domain/transaction"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (r *repo) CreateTransaction(ctx context.Context, t transaction.Transaction) error {
	query, args, err := r.builder.
		Insert("transactions").
		Columns("id", "user_id", "amount", "payment_method", "kind", "status", "token", "description").
		Values(t.ID, t.UserID, t.Amount, t.PaymentMethod, t.Kind, t.Status, nullableToken(t.Token), t.Description).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert transaction query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

func (r *repo) GetTransactionByID(ctx context.Context, id uuid.UUID) (transaction.Transaction, error) {
	return r.getTransaction(ctx, squirrel.Eq{"id": id})
}

func (r *repo) GetTransactionByToken(ctx context.Context, token string) (transaction.Transaction, error) {
	return r.getTransaction(ctx, squirrel.Eq{"token": token})
}

func (r *repo) getTransaction(ctx context.Context, where squirrel.Eq) (transaction.Transaction, error) {
	query, args, err := r.builder.
		Select("id", "user_id", "amount", "payment_method", "kind", "status", "token", "description",
			"created_at", "updated_at").
		From("transactions").
		Where(where).
		ToSql()
	if err != nil {
		return transaction.Transaction{}, fmt.Errorf("build transaction query: %w", err)
	}

	row := r.db.QueryRow(ctx, query, args...)
	t, err := scanTransaction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return transaction.Transaction{}, apperror.ErrTransactionNotFound
	}
	if err != nil {
		return transaction.Transaction{}, fmt.Errorf("query transaction: %w", err)
	}
	return t, nil
}

// SetTransactionToken succeeds only for a pending, not-yet-tokenized
// transaction; a second tokenization attempt affects zero rows.
func (r *repo) SetTransactionToken(ctx context.Context, id uuid.UUID, token string) (bool, error) {
	query, args, err := r.builder.
		Update("transactions").
		Set("token", token).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": transaction.StatusPending}).
		Where("token IS NULL").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build set token query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("set transaction token: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// TransitionTransaction is the guarded status transition: the WHERE on
// the current status makes it a compare-and-swap, so a terminal
// transaction is never reopened and concurrent writers resolve to one
// winner.
func (r *repo) TransitionTransaction(ctx context.Context, id uuid.UUID, from, to transaction.Status) (bool, error) {
	query, args, err := r.builder.
		Update("transactions").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build transaction transition query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("transition transaction: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *repo) ListPendingTransactionsBefore(ctx context.Context, kind transaction.Kind, cutoff time.Time) ([]transaction.Transaction, error) {
	query, args, err := r.builder.
		Select("id", "user_id", "amount", "payment_method", "kind", "status", "token", "description",
			"created_at", "updated_at").
		From("transactions").
		Where(squirrel.Eq{"status": transaction.StatusPending, "kind": kind}).
		Where(squirrel.LtOrEq{"created_at": cutoff}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stale transactions query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query stale transactions: %w", err)
	}
	defer rows.Close()

	var out []transaction.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}
	return out, nil
}

func scanTransaction(row pgx.Row) (transaction.Transaction, error) {
	var t transaction.Transaction
	var rawStatus string
	var token *string

	err := row.Scan(&t.ID, &t.UserID, &t.Amount, &t.PaymentMethod, &t.Kind, &rawStatus,
		&token, &t.Description, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return transaction.Transaction{}, err
	}

	status, err := transaction.NewStatus(rawStatus)
	if err != nil {
		return transaction.Transaction{}, fmt.Errorf("invalid status in database: %w", err)
	}
	t.Status = status

	if token != nil {
		t.Token = *token
	}
	return t, nil
}

func nullableToken(token string) *string {
	if token == "" {
		return nil
	}
	return &token
}
