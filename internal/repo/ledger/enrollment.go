package ledger_repo

import (
	"context"
	"errors"
	"fmt"

	"coursepay/internal/domain/ledger"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (r *repo) HasEnrollment(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	query, args, err := r.builder.
		Select("1").
		From("enrollments").
		Where(squirrel.Eq{"user_id": userID, "course_id": courseID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build enrollment query: %w", err)
	}

	var one int
	err = r.db.QueryRow(ctx, query, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query enrollment: %w", err)
	}
	return true, nil
}

func (r *repo) CreateEnrollment(ctx context.Context, e ledger.Enrollment) error {
	query, args, err := r.builder.
		Insert("enrollments").
		Columns("id", "user_id", "course_id").
		Values(e.ID, e.UserID, e.CourseID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert enrollment query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("create enrollment: %w", err)
	}
	return nil
}
