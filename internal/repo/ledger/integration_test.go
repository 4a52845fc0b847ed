//go:build integration
// +build integration

package ledger_repo_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursepay/internal/controller/apperror"
	"coursepay/internal/domain/cart"
	"coursepay/internal/domain/ledger"
	"coursepay/internal/domain/transaction"
	"coursepay/internal/domain/wallet"
	ledger_repo "coursepay/internal/repo/ledger"
	"coursepay/internal/testinfra"
)

var (
	pg    *testinfra.PostgresContainer
	store ledger.Store
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	var err error
	pg, err = testinfra.NewPostgres(ctx)
	if err != nil {
		panic(fmt.Sprintf("failed to start postgres: %v", err))
	}

	store = ledger_repo.NewPgLedger(pg.Pool)

	code := m.Run()

	pg.Cleanup(ctx)
	os.Exit(code)
}

func seedUser(t *testing.T, id uuid.UUID) {
	t.Helper()
	_, err := pg.Pool.Pool.Exec(context.Background(),
		"INSERT INTO users (id, email, name) VALUES ($1, $2, $3)",
		id, fmt.Sprintf("%s@test.local", id), "Test User")
	require.NoError(t, err)
}

func seedCourse(t *testing.T, id, instructorID uuid.UUID, price float64) {
	t.Helper()
	_, err := pg.Pool.Pool.Exec(context.Background(),
		"INSERT INTO courses (id, title, price, instructor_id) VALUES ($1, $2, $3, $4)",
		id, "Go Basics", price, instructorID)
	require.NoError(t, err)
}

func seedWallet(t *testing.T, id, userID uuid.UUID, balance float64) {
	t.Helper()
	_, err := pg.Pool.Pool.Exec(context.Background(),
		"INSERT INTO wallets (id, user_id, balance) VALUES ($1, $2, $3)",
		id, userID, balance)
	require.NoError(t, err)
}

func TestCartLifecycle(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, pg.Truncate(ctx))

	buyer, instructor, course := uuid.New(), uuid.New(), uuid.New()
	seedUser(t, buyer)
	seedUser(t, instructor)
	seedCourse(t, course, instructor, 39.99)

	_, err := store.GetOpenCart(ctx, buyer)
	require.ErrorIs(t, err, apperror.ErrCartNotFound)

	c := cart.Cart{ID: uuid.New(), UserID: buyer}
	require.NoError(t, store.CreateCart(ctx, c))
	require.NoError(t, store.AddCartItem(ctx, cart.Item{
		ID:          uuid.New(),
		CartID:      c.ID,
		CourseID:    course,
		CourseTitle: "Go Basics",
		Price:       39.99,
	}))

	got, err := store.GetOpenCart(ctx, buyer)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Go Basics", got.Items[0].CourseTitle)
	assert.InDelta(t, 39.99, got.Items[0].Price, 1e-9)

	require.NoError(t, store.MarkCartPurchased(ctx, c.ID))

	_, err = store.GetOpenCart(ctx, buyer)
	assert.ErrorIs(t, err, apperror.ErrCartNotFound)
}

func TestTransactionTokenAndTransition(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, pg.Truncate(ctx))

	buyer := uuid.New()
	seedUser(t, buyer)

	txn := transaction.Transaction{
		ID:            uuid.New(),
		UserID:        buyer,
		Amount:        110.00,
		PaymentMethod: "paypal",
		Kind:          transaction.KindPurchase,
		Status:        transaction.StatusPending,
		Description:   "Purchase of: Go Basics",
	}
	require.NoError(t, store.CreateTransaction(ctx, txn))

	won, err := store.SetTransactionToken(ctx, txn.ID, "EC-1")
	require.NoError(t, err)
	assert.True(t, won)

	won, err = store.SetTransactionToken(ctx, txn.ID, "EC-2")
	require.NoError(t, err)
	assert.False(t, won, "a tokenized transaction must refuse a second token")

	byToken, err := store.GetTransactionByToken(ctx, "EC-1")
	require.NoError(t, err)
	assert.Equal(t, txn.ID, byToken.ID)
	assert.Equal(t, "EC-1", byToken.Token)

	won, err = store.TransitionTransaction(ctx, txn.ID, transaction.StatusPending, transaction.StatusCompleted)
	require.NoError(t, err)
	assert.True(t, won)

	won, err = store.TransitionTransaction(ctx, txn.ID, transaction.StatusPending, transaction.StatusFailed)
	require.NoError(t, err)
	assert.False(t, won, "a completed transaction must not fail afterwards")
}

func TestListPendingTransactionsBefore(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, pg.Truncate(ctx))

	buyer := uuid.New()
	seedUser(t, buyer)

	mk := func(kind transaction.Kind) transaction.Transaction {
		txn := transaction.Transaction{
			ID:            uuid.New(),
			UserID:        buyer,
			Amount:        10,
			PaymentMethod: "paypal",
			Kind:          kind,
			Status:        transaction.StatusPending,
		}
		require.NoError(t, store.CreateTransaction(ctx, txn))
		return txn
	}

	stale := mk(transaction.KindPurchase)
	mk(transaction.KindPayout)

	found, err := store.ListPendingTransactionsBefore(ctx, transaction.KindPurchase, time.Now().Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, found, 1, "payout transactions must not be swept as purchases")
	assert.Equal(t, stale.ID, found[0].ID)

	found, err = store.ListPendingTransactionsBefore(ctx, transaction.KindPurchase, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestWalletMoneyMovement(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, pg.Truncate(ctx))

	instructor := uuid.New()
	seedUser(t, instructor)
	walletID := uuid.New()
	seedWallet(t, walletID, instructor, 100.00)

	balance, err := store.CreditWallet(ctx, walletID, 46.20)
	require.NoError(t, err)
	assert.InDelta(t, 146.20, balance, 1e-9)

	balance, won, err := store.DebitWallet(ctx, walletID, 46.20)
	require.NoError(t, err)
	assert.True(t, won)
	assert.InDelta(t, 100.00, balance, 1e-9)

	_, won, err = store.DebitWallet(ctx, walletID, 1000.00)
	require.NoError(t, err)
	assert.False(t, won, "a debit past the balance must not go through")

	require.NoError(t, store.AppendWalletHistory(ctx, wallet.History{
		ID:            uuid.New(),
		WalletID:      walletID,
		AmountChanged: 46.20,
		NewBalance:    146.20,
		Description:   "Course sale",
	}))

	history, err := store.GetWalletHistory(ctx, walletID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.InDelta(t, 46.20, history[0].AmountChanged, 1e-9)

	platformBalance, err := store.CreditPlatformWallet(ctx, 33.00)
	require.NoError(t, err)
	assert.InDelta(t, 33.00, platformBalance, 1e-9)
}

func TestInTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, pg.Truncate(ctx))

	buyer := uuid.New()
	seedUser(t, buyer)

	txnID := uuid.New()
	boom := errors.New("boom")

	err := store.InTransaction(ctx, func(tx ledger.TxStore) error {
		if err := tx.CreateTransaction(ctx, transaction.Transaction{
			ID:            txnID,
			UserID:        buyer,
			Amount:        10,
			PaymentMethod: "paypal",
			Kind:          transaction.KindPurchase,
			Status:        transaction.StatusPending,
		}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = store.GetTransactionByID(ctx, txnID)
	assert.ErrorIs(t, err, apperror.ErrTransactionNotFound)
}
