package ledger_repo

import (
	"context"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursepay/internal/controller/apperror"
	"coursepay/internal/domain/order"
	"coursepay/internal/domain/transaction"
)

func newMockRepo(t *testing.T) (*repo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return &repo{db: mock, builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)}, mock
}

func TestTransitionTransaction(t *testing.T) {
	r, mock := newMockRepo(t)
	ctx := context.Background()

	t.Run("wins when the row is still in the expected status", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectExec(`UPDATE transactions SET status = \$1, updated_at = NOW\(\) WHERE id = \$2 AND status = \$3`).
			WithArgs(transaction.StatusCompleted, id, transaction.StatusPending).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		won, err := r.TransitionTransaction(ctx, id, transaction.StatusPending, transaction.StatusCompleted)

		require.NoError(t, err)
		assert.True(t, won)
	})

	t.Run("loses when the row moved on", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectExec(`UPDATE transactions SET status = \$1, updated_at = NOW\(\) WHERE id = \$2 AND status = \$3`).
			WithArgs(transaction.StatusFailed, id, transaction.StatusPending).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		won, err := r.TransitionTransaction(ctx, id, transaction.StatusPending, transaction.StatusFailed)

		require.NoError(t, err)
		assert.False(t, won)
	})
}

func TestSetTransactionToken(t *testing.T) {
	r, mock := newMockRepo(t)
	ctx := context.Background()

	t.Run("tokenizes a pending untokenized transaction", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectExec(`UPDATE transactions SET token = \$1, updated_at = NOW\(\) WHERE id = \$2 AND status = \$3 AND token IS NULL`).
			WithArgs("EC-1", id, transaction.StatusPending).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		won, err := r.SetTransactionToken(ctx, id, "EC-1")

		require.NoError(t, err)
		assert.True(t, won)
	})

	t.Run("refuses a second token", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectExec(`UPDATE transactions SET token = \$1, updated_at = NOW\(\) WHERE id = \$2 AND status = \$3 AND token IS NULL`).
			WithArgs("EC-2", id, transaction.StatusPending).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		won, err := r.SetTransactionToken(ctx, id, "EC-2")

		require.NoError(t, err)
		assert.False(t, won)
	})
}

func TestGetTransactionByToken(t *testing.T) {
	r, mock := newMockRepo(t)
	ctx := context.Background()

	t.Run("scans a tokenized row", func(t *testing.T) {
		id, userID := uuid.New(), uuid.New()
		now := time.Now()
		token := "EC-1"

		rows := mock.NewRows([]string{"id", "user_id", "amount", "payment_method", "kind", "status", "token", "description", "created_at", "updated_at"}).
			AddRow(id, userID, 110.00, "paypal", transaction.KindPurchase, "pending", &token, "Purchase of: Go Basics", now, now)

		mock.ExpectQuery(`SELECT id, user_id, amount, payment_method, kind, status, token, description, created_at, updated_at FROM transactions WHERE token = \$1`).
			WithArgs("EC-1").
			WillReturnRows(rows)

		txn, err := r.GetTransactionByToken(ctx, "EC-1")

		require.NoError(t, err)
		assert.Equal(t, id, txn.ID)
		assert.Equal(t, "EC-1", txn.Token)
		assert.Equal(t, transaction.StatusPending, txn.Status)
	})

	t.Run("maps no rows to not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, user_id, amount, payment_method, kind, status, token, description, created_at, updated_at FROM transactions WHERE token = \$1`).
			WithArgs("EC-MISSING").
			WillReturnError(pgx.ErrNoRows)

		_, err := r.GetTransactionByToken(ctx, "EC-MISSING")
		assert.ErrorIs(t, err, apperror.ErrTransactionNotFound)
	})
}

func TestTransitionOrder(t *testing.T) {
	r, mock := newMockRepo(t)
	ctx := context.Background()

	id := uuid.New()

	mock.ExpectExec(`UPDATE orders SET status = \$1, updated_at = NOW\(\) WHERE id = \$2 AND status = \$3`).
		WithArgs(order.StatusPaid, id, order.StatusPendingPayment).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	won, err := r.TransitionOrder(ctx, id, order.StatusPendingPayment, order.StatusPaid)

	require.NoError(t, err)
	assert.True(t, won)
}

func TestCreditWallet(t *testing.T) {
	r, mock := newMockRepo(t)
	ctx := context.Background()

	walletID := uuid.New()

	mock.ExpectQuery(`UPDATE wallets SET balance = COALESCE\(balance, 0\) \+ \$1, updated_at = NOW\(\) WHERE id = \$2 RETURNING balance`).
		WithArgs(46.20, walletID).
		WillReturnRows(mock.NewRows([]string{"balance"}).AddRow(146.20))

	balance, err := r.CreditWallet(ctx, walletID, 46.20)

	require.NoError(t, err)
	assert.InDelta(t, 146.20, balance, 1e-9)
}

func TestDebitWallet(t *testing.T) {
	r, mock := newMockRepo(t)
	ctx := context.Background()

	walletID := uuid.New()

	t.Run("debits when the balance covers the amount", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE wallets SET balance = balance - \$1, updated_at = NOW\(\) WHERE id = \$2 AND balance >= \$3 RETURNING balance`).
			WithArgs(200.00, walletID, 200.00).
			WillReturnRows(mock.NewRows([]string{"balance"}).AddRow(300.00))

		balance, won, err := r.DebitWallet(ctx, walletID, 200.00)

		require.NoError(t, err)
		assert.True(t, won)
		assert.InDelta(t, 300.00, balance, 1e-9)
	})

	t.Run("affects no rows instead of going negative", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE wallets SET balance = balance - \$1, updated_at = NOW\(\) WHERE id = \$2 AND balance >= \$3 RETURNING balance`).
			WithArgs(900.00, walletID, 900.00).
			WillReturnError(pgx.ErrNoRows)

		_, won, err := r.DebitWallet(ctx, walletID, 900.00)

		require.NoError(t, err)
		assert.False(t, won)
	})
}

func TestInvalidateVoucher(t *testing.T) {
	r, mock := newMockRepo(t)
	ctx := context.Background()

	id := uuid.New()

	t.Run("first redeem wins", func(t *testing.T) {
		mock.ExpectExec(`UPDATE vouchers SET valid = \$1 WHERE id = \$2 AND valid = \$3`).
			WithArgs(false, id, true).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		won, err := r.InvalidateVoucher(ctx, id)

		require.NoError(t, err)
		assert.True(t, won)
	})

	t.Run("second redeem loses", func(t *testing.T) {
		mock.ExpectExec(`UPDATE vouchers SET valid = \$1 WHERE id = \$2 AND valid = \$3`).
			WithArgs(false, id, true).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		won, err := r.InvalidateVoucher(ctx, id)

		require.NoError(t, err)
		assert.False(t, won)
	})
}
