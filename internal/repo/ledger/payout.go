package ledger_repo

import (
	"context"
	"errors"
	"fmt"

	"coursepay/internal/controller/apperror"
	"coursepay/internal/domain/wallet"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (r *repo) CreatePayoutRequest(ctx context.Context, req wallet.PayoutRequest) error {
	query, args, err := r.builder.
		Insert("payout_requests").
		Columns("id", "instructor_id", "transaction_id", "amount", "status", "reason").
		Values(req.ID, req.InstructorID, req.TransactionID, req.Amount, req.Status, req.Reason).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert payout query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("create payout request: %w", err)
	}
	return nil
}

func (r *repo) GetPayoutRequest(ctx context.Context, id uuid.UUID) (wallet.PayoutRequest, error) {
	query, args, err := r.builder.
		Select("id", "instructor_id", "transaction_id", "amount", "status", "reason",
			"created_at", "updated_at").
		From("payout_requests").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return wallet.PayoutRequest{}, fmt.Errorf("build payout query: %w", err)
	}

	var req wallet.PayoutRequest
	var rawStatus string
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&req.ID, &req.InstructorID, &req.TransactionID, &req.Amount, &rawStatus,
		&req.Reason, &req.CreatedAt, &req.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return wallet.PayoutRequest{}, apperror.ErrPayoutNotFound
	}
	if err != nil {
		return wallet.PayoutRequest{}, fmt.Errorf("query payout request: %w", err)
	}

	status, err := wallet.NewPayoutStatus(rawStatus)
	if err != nil {
		return wallet.PayoutRequest{}, fmt.Errorf("invalid status in database: %w", err)
	}
	req.Status = status
	return req, nil
}

// TransitionPayout is the conditional terminal transition for payout
// requests; reason is written only when provided.
func (r *repo) TransitionPayout(ctx context.Context, id uuid.UUID, from, to wallet.PayoutStatus, reason *string) (bool, error) {
	update := r.builder.
		Update("payout_requests").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from})
	if reason != nil {
		update = update.Set("reason", *reason)
	}

	query, args, err := update.ToSql()
	if err != nil {
		return false, fmt.Errorf("build payout transition query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("transition payout: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
