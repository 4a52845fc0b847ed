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

func (r *repo) GetWalletByUser(ctx context.Context, userID uuid.UUID) (wallet.Wallet, error) {
	query, args, err := r.builder.
		Select("id", "user_id", "COALESCE(balance, 0)", "created_at", "updated_at").
		From("wallets").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return wallet.Wallet{}, fmt.Errorf("build wallet query: %w", err)
	}

	var w wallet.Wallet
	err = r.db.QueryRow(ctx, query, args...).
		Scan(&w.ID, &w.UserID, &w.Balance, &w.CreatedAt, &w.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return wallet.Wallet{}, apperror.ErrWalletNotFound
	}
	if err != nil {
		return wallet.Wallet{}, fmt.Errorf("query wallet: %w", err)
	}
	return w, nil
}

func (r *repo) CreditWallet(ctx context.Context, walletID uuid.UUID, amount float64) (float64, error) {
	query, args, err := r.builder.
		Update("wallets").
		Set("balance", squirrel.Expr("COALESCE(balance, 0) + ?", amount)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": walletID}).
		Suffix("RETURNING balance").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build credit wallet query: %w", err)
	}

	var balance float64
	err = r.db.QueryRow(ctx, query, args...).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, apperror.ErrWalletNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("credit wallet: %w", err)
	}
	return balance, nil
}

// DebitWallet is conditional on sufficient funds; an insufficient
// balance affects zero rows instead of going negative.
func (r *repo) DebitWallet(ctx context.Context, walletID uuid.UUID, amount float64) (float64, bool, error) {
	query, args, err := r.builder.
		Update("wallets").
		Set("balance", squirrel.Expr("balance - ?", amount)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": walletID}).
		Where(squirrel.GtOrEq{"balance": amount}).
		Suffix("RETURNING balance").
		ToSql()
	if err != nil {
		return 0, false, fmt.Errorf("build debit wallet query: %w", err)
	}

	var balance float64
	err = r.db.QueryRow(ctx, query, args...).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("debit wallet: %w", err)
	}
	return balance, true, nil
}

func (r *repo) AppendWalletHistory(ctx context.Context, h wallet.History) error {
	var walletID *uuid.UUID
	if !h.Platform {
		walletID = &h.WalletID
	}

	query, args, err := r.builder.
		Insert("wallet_history").
		Columns("id", "wallet_id", "platform", "amount_changed", "new_balance", "description").
		Values(h.ID, walletID, h.Platform, h.AmountChanged, h.NewBalance, h.Description).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert wallet history query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("append wallet history: %w", err)
	}
	return nil
}

func (r *repo) GetWalletHistory(ctx context.Context, walletID uuid.UUID) ([]wallet.History, error) {
	query, args, err := r.builder.
		Select("id", "wallet_id", "platform", "amount_changed", "new_balance", "description", "created_at").
		From("wallet_history").
		Where(squirrel.Eq{"wallet_id": walletID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build wallet history query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query wallet history: %w", err)
	}
	defer rows.Close()

	var out []wallet.History
	for rows.Next() {
		var h wallet.History
		var wid *uuid.UUID
		if err := rows.Scan(&h.ID, &wid, &h.Platform, &h.AmountChanged, &h.NewBalance, &h.Description, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan wallet history row: %w", err)
		}
		if wid != nil {
			h.WalletID = *wid
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallet history rows: %w", err)
	}
	return out, nil
}

func (r *repo) CreditPlatformWallet(ctx context.Context, amount float64) (float64, error) {
	query, args, err := r.builder.
		Update("platform_wallet").
		Set("balance", squirrel.Expr("balance + ?", amount)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": 1}).
		Suffix("RETURNING balance").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build credit platform wallet query: %w", err)
	}

	var balance float64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&balance); err != nil {
		return 0, fmt.Errorf("credit platform wallet: %w", err)
	}
	return balance, nil
}

func (r *repo) AddInstructorEarning(ctx context.Context, userID uuid.UUID, amount float64) error {
	return r.upsertInstructorInfo(ctx, userID, "total_earning", amount)
}

func (r *repo) AddInstructorWithdrawn(ctx context.Context, userID uuid.UUID, amount float64) error {
	return r.upsertInstructorInfo(ctx, userID, "total_withdrawn", amount)
}

func (r *repo) upsertInstructorInfo(ctx context.Context, userID uuid.UUID, column string, amount float64) error {
	earning, withdrawn := 0.0, 0.0
	if column == "total_earning" {
		earning = amount
	} else {
		withdrawn = amount
	}

	query, args, err := r.builder.
		Insert("instructor_info").
		Columns("user_id", "total_earning", "total_withdrawn").
		Values(userID, earning, withdrawn).
		Suffix(fmt.Sprintf(
			"ON CONFLICT (user_id) DO UPDATE SET %s = instructor_info.%s + EXCLUDED.%s, updated_at = NOW()",
			column, column, column)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build instructor info upsert: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update instructor info: %w", err)
	}
	return nil
}
