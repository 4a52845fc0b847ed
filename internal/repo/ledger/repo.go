// Package ledger_repo is the Postgres implementation of the ledger
// store. All writes go through squirrel-built statements on a pgx pool;
// InTransaction hands callers the same repo bound to a pgx.Tx.
package ledger_repo

import (
	"context"

	"coursepay/internal/domain/ledger"
	"coursepay/pkg/postgres"

	"github.com/Masterminds/squirrel"
)

// PgLedger is the main repository.
type PgLedger struct {
	pg *postgres.Postgres
	repo
}

func NewPgLedger(pg *postgres.Postgres) ledger.Store {
	return &PgLedger{
		pg:   pg,
		repo: repo{db: pg.Pool, builder: pg.Builder},
	}
}

func (r *PgLedger) InTransaction(ctx context.Context, fn func(tx ledger.TxStore) error) error {
	return r.pg.InTransaction(ctx, func(tx postgres.Executor) error {
		txRepo := &repo{db: tx, builder: r.pg.Builder}
		return fn(txRepo)
	})
}

type repo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}
