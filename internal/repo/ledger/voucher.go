package ledger_repo

import (
	"context"
	"errors"
	"fmt"

	"coursepay/internal/controller/apperror"
	"coursepay/internal/domain/voucher"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GetVoucher requires an exact code match owned by the user; anything
// else is an invalid voucher, not a generic not-found.
func (r *repo) GetVoucher(ctx context.Context, userID uuid.UUID, code string) (voucher.Voucher, error) {
	query, args, err := r.builder.
		Select("id", "user_id", "code", "percentage", "valid", "create_date", "expire_date").
		From("vouchers").
		Where(squirrel.Eq{"user_id": userID, "code": code}).
		ToSql()
	if err != nil {
		return voucher.Voucher{}, fmt.Errorf("build voucher query: %w", err)
	}

	var v voucher.Voucher
	err = r.db.QueryRow(ctx, query, args...).
		Scan(&v.ID, &v.UserID, &v.Code, &v.Percentage, &v.Valid, &v.CreateDate, &v.ExpireDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return voucher.Voucher{}, apperror.ErrInvalidVoucher
	}
	if err != nil {
		return voucher.Voucher{}, fmt.Errorf("query voucher: %w", err)
	}
	return v, nil
}

// InvalidateVoucher flips valid to false; a voucher already redeemed
// affects zero rows, which enforces single use under concurrency.
func (r *repo) InvalidateVoucher(ctx context.Context, id uuid.UUID) (bool, error) {
	query, args, err := r.builder.
		Update("vouchers").
		Set("valid", false).
		Where(squirrel.Eq{"id": id, "valid": true}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build invalidate voucher query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("invalidate voucher: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
