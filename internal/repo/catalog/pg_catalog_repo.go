// Package catalog_repo reads the course catalog and user directory that
// other parts of the platform own. The payment pipeline only ever looks
// up prices, instructors and user existence.
package catalog_repo

import (
	"context"
	"errors"
	"fmt"

	"coursepay/internal/controller/apperror"
	"coursepay/internal/domain/catalog"
	"coursepay/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PgCatalogRepo struct {
	pg *postgres.Postgres
}

func NewPgCatalogRepo(pg *postgres.Postgres) *PgCatalogRepo {
	return &PgCatalogRepo{pg: pg}
}

var _ catalog.CourseCatalog = (*PgCatalogRepo)(nil)
var _ catalog.UserDirectory = (*PgCatalogRepo)(nil)

func (r *PgCatalogRepo) GetCourse(ctx context.Context, courseID uuid.UUID) (catalog.Course, error) {
	query, args, err := r.pg.Builder.
		Select("id", "title", "price", "instructor_id").
		From("courses").
		Where(squirrel.Eq{"id": courseID}).
		ToSql()
	if err != nil {
		return catalog.Course{}, fmt.Errorf("build course query: %w", err)
	}

	var c catalog.Course
	err = r.pg.Pool.QueryRow(ctx, query, args...).
		Scan(&c.ID, &c.Title, &c.Price, &c.InstructorID)
	if errors.Is(err, pgx.ErrNoRows) {
		return catalog.Course{}, apperror.ErrCourseNotFound
	}
	if err != nil {
		return catalog.Course{}, fmt.Errorf("query course: %w", err)
	}
	return c, nil
}

func (r *PgCatalogRepo) UserExists(ctx context.Context, userID uuid.UUID) (bool, error) {
	query, args, err := r.pg.Builder.
		Select("1").
		From("users").
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build user query: %w", err)
	}

	var one int
	err = r.pg.Pool.QueryRow(ctx, query, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query user: %w", err)
	}
	return true, nil
}
