package payment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"coursepay/internal/controller/apperror"
	"coursepay/internal/domain/cart"
	"coursepay/internal/domain/catalog"
	"coursepay/internal/domain/ledger"
	"coursepay/internal/domain/notify"
	"coursepay/internal/domain/order"
	"coursepay/internal/domain/settlement"
	"coursepay/internal/domain/transaction"
	"coursepay/internal/domain/wallet"
)

type machineFixture struct {
	machine  *StateMachine
	store    *ledger.MockStore
	tx       *ledger.MockTxStore
	catalog  *catalog.MockCourseCatalog
	notifier *notify.MockNotifier
	stats    *notify.MockStatsRefresher
	sink     *settlement.MockEventSink
}

func newMachineFixture(t *testing.T) *machineFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &machineFixture{
		store:    ledger.NewMockStore(ctrl),
		tx:       ledger.NewMockTxStore(ctrl),
		catalog:  catalog.NewMockCourseCatalog(ctrl),
		notifier: notify.NewMockNotifier(ctrl),
		stats:    notify.NewMockStatsRefresher(ctrl),
		sink:     settlement.NewMockEventSink(ctrl),
	}
	settler := settlement.NewApplier(f.catalog, 0.70, f.notifier, f.stats, f.sink)
	f.machine = NewStateMachine(f.store, settler)
	return f
}

func (f *machineFixture) expectInTransaction(ctx context.Context) {
	f.store.EXPECT().InTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(tx ledger.TxStore) error) error {
			return fn(f.tx)
		})
}

func TestStateMachine_Complete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("wins the transition and settles the order", func(t *testing.T) {
		f := newMachineFixture(t)

		instructorID := uuid.New()
		w := wallet.Wallet{ID: uuid.New(), UserID: instructorID}
		crt := cart.Cart{ID: uuid.New(), Items: []cart.Item{
			{CourseID: uuid.New(), CourseTitle: "Go Basics", Price: 100.00},
		}}
		txn := transaction.Transaction{ID: uuid.New(), Kind: transaction.KindPurchase, Status: transaction.StatusCompleted}
		ord := order.Order{
			ID: uuid.New(), UserID: uuid.New(), CartID: crt.ID,
			TransactionID: txn.ID, PaidAmount: 110.00, Status: order.StatusPendingPayment,
		}

		f.expectInTransaction(ctx)
		f.tx.EXPECT().TransitionTransaction(ctx, txn.ID, transaction.StatusPending, transaction.StatusCompleted).Return(true, nil)
		f.tx.EXPECT().GetTransactionByID(ctx, txn.ID).Return(txn, nil)
		f.tx.EXPECT().GetOrderByTransactionID(ctx, txn.ID).Return(ord, nil)

		f.tx.EXPECT().GetCartByID(ctx, crt.ID).Return(crt, nil)
		f.tx.EXPECT().HasEnrollment(ctx, ord.UserID, crt.Items[0].CourseID).Return(false, nil)
		f.tx.EXPECT().CreateEnrollment(ctx, gomock.Any()).Return(nil)
		f.catalog.EXPECT().GetCourse(ctx, crt.Items[0].CourseID).
			Return(catalog.Course{ID: crt.Items[0].CourseID, InstructorID: instructorID}, nil)
		f.tx.EXPECT().GetWalletByUser(ctx, instructorID).Return(w, nil)
		f.tx.EXPECT().CreditWallet(ctx, w.ID, 77.00).Return(77.00, nil)
		f.tx.EXPECT().AppendWalletHistory(ctx, gomock.Any()).Return(nil).Times(2)
		f.tx.EXPECT().AddInstructorEarning(ctx, instructorID, 77.00).Return(nil)
		f.tx.EXPECT().CreditPlatformWallet(ctx, 33.00).Return(33.00, nil)
		f.tx.EXPECT().TransitionOrder(ctx, ord.ID, order.StatusPendingPayment, order.StatusPaid).Return(true, nil)
		f.tx.EXPECT().MarkCartPurchased(ctx, crt.ID).Return(nil)

		f.notifier.EXPECT().NotifyPurchase(ctx, gomock.Any()).Return(nil)
		f.stats.EXPECT().RefreshStats(ctx, "purchases").Return(nil)
		f.sink.EXPECT().IndexSettlement(ctx, gomock.Any()).Return(nil)

		doc, err := f.machine.Complete(ctx, txn.ID)

		require.NoError(t, err)
		assert.Equal(t, ord.ID, doc.OrderID)
		assert.InDelta(t, 33.00, doc.PlatformAmount, 1e-9)
	})

	t.Run("loses the transition to a terminal transaction", func(t *testing.T) {
		f := newMachineFixture(t)

		txnID := uuid.New()
		f.expectInTransaction(ctx)
		f.tx.EXPECT().TransitionTransaction(ctx, txnID, transaction.StatusPending, transaction.StatusCompleted).Return(false, nil)

		_, err := f.machine.Complete(ctx, txnID)
		assert.ErrorIs(t, err, apperror.ErrTransactionFinal)
	})
}

func TestStateMachine_Fail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("fails the transaction and its order", func(t *testing.T) {
		f := newMachineFixture(t)

		txnID := uuid.New()
		ord := order.Order{ID: uuid.New(), TransactionID: txnID, Status: order.StatusPendingPayment}

		f.expectInTransaction(ctx)
		f.tx.EXPECT().TransitionTransaction(ctx, txnID, transaction.StatusPending, transaction.StatusFailed).Return(true, nil)
		f.tx.EXPECT().GetOrderByTransactionID(ctx, txnID).Return(ord, nil)
		f.tx.EXPECT().TransitionOrder(ctx, ord.ID, order.StatusPendingPayment, order.StatusFailed).Return(true, nil)

		assert.NoError(t, f.machine.Fail(ctx, txnID))
	})

	t.Run("tolerates a transaction without an order", func(t *testing.T) {
		f := newMachineFixture(t)

		txnID := uuid.New()
		f.expectInTransaction(ctx)
		f.tx.EXPECT().TransitionTransaction(ctx, txnID, transaction.StatusPending, transaction.StatusFailed).Return(true, nil)
		f.tx.EXPECT().GetOrderByTransactionID(ctx, txnID).Return(order.Order{}, apperror.ErrOrderNotFound)

		assert.NoError(t, f.machine.Fail(ctx, txnID))
	})

	t.Run("reports a lost race as a conflict", func(t *testing.T) {
		f := newMachineFixture(t)

		txnID := uuid.New()
		f.expectInTransaction(ctx)
		f.tx.EXPECT().TransitionTransaction(ctx, txnID, transaction.StatusPending, transaction.StatusFailed).Return(false, nil)

		assert.ErrorIs(t, f.machine.Fail(ctx, txnID), apperror.ErrTransactionFinal)
	})
}

func TestStateMachine_FailExpired(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("skips transactions resolved by a concurrent capture", func(t *testing.T) {
		f := newMachineFixture(t)

		cutoff := time.Now().Add(-10 * time.Minute)
		stale := []transaction.Transaction{
			{ID: uuid.New(), Kind: transaction.KindPurchase, Status: transaction.StatusPending},
			{ID: uuid.New(), Kind: transaction.KindPurchase, Status: transaction.StatusPending},
		}

		f.store.EXPECT().ListPendingTransactionsBefore(ctx, transaction.KindPurchase, cutoff).Return(stale, nil)

		// First one expires normally.
		f.expectInTransaction(ctx)
		f.tx.EXPECT().TransitionTransaction(ctx, stale[0].ID, transaction.StatusPending, transaction.StatusFailed).Return(true, nil)
		f.tx.EXPECT().GetOrderByTransactionID(ctx, stale[0].ID).Return(order.Order{}, apperror.ErrOrderNotFound)

		// Second one was captured in between; the sweeper loses and moves on.
		f.expectInTransaction(ctx)
		f.tx.EXPECT().TransitionTransaction(ctx, stale[1].ID, transaction.StatusPending, transaction.StatusFailed).Return(false, nil)

		failed, err := f.machine.FailExpired(ctx, cutoff)

		require.NoError(t, err)
		assert.Equal(t, 1, failed)
	})
}
