package settlement

import (
	"context"
	"errors"
	"testing"

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
	"coursepay/internal/domain/transaction"
	"coursepay/internal/domain/wallet"
)

type applierFixture struct {
	applier  *Applier
	tx       *ledger.MockTxStore
	catalog  *catalog.MockCourseCatalog
	notifier *notify.MockNotifier
	stats    *notify.MockStatsRefresher
	sink     *MockEventSink
}

func newApplierFixture(t *testing.T) *applierFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &applierFixture{
		tx:       ledger.NewMockTxStore(ctrl),
		catalog:  catalog.NewMockCourseCatalog(ctrl),
		notifier: notify.NewMockNotifier(ctrl),
		stats:    notify.NewMockStatsRefresher(ctrl),
		sink:     NewMockEventSink(ctrl),
	}
	f.applier = NewApplier(f.catalog, 0.70, f.notifier, f.stats, f.sink)
	return f
}

func completedTxn() transaction.Transaction {
	return transaction.Transaction{
		ID:     uuid.New(),
		Status: transaction.StatusCompleted,
		Kind:   transaction.KindPurchase,
	}
}

func pendingOrder(cartID uuid.UUID, paid float64) order.Order {
	return order.Order{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		CartID:     cartID,
		PaidAmount: paid,
		Status:     order.StatusPendingPayment,
	}
}

func TestApplier_Apply(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("splits the paid amount across items and wallets", func(t *testing.T) {
		f := newApplierFixture(t)

		instructorA, instructorB := uuid.New(), uuid.New()
		walletA := wallet.Wallet{ID: uuid.New(), UserID: instructorA}
		walletB := wallet.Wallet{ID: uuid.New(), UserID: instructorB}

		crt := cart.Cart{ID: uuid.New(), Items: []cart.Item{
			{CourseID: uuid.New(), CourseTitle: "Go Basics", Price: 60.00},
			{CourseID: uuid.New(), CourseTitle: "SQL Deep Dive", Price: 40.00},
		}}
		ord := pendingOrder(crt.ID, 110.00)

		f.tx.EXPECT().GetCartByID(ctx, crt.ID).Return(crt, nil)

		f.tx.EXPECT().HasEnrollment(ctx, ord.UserID, crt.Items[0].CourseID).Return(false, nil)
		f.tx.EXPECT().HasEnrollment(ctx, ord.UserID, crt.Items[1].CourseID).Return(false, nil)
		f.tx.EXPECT().CreateEnrollment(ctx, gomock.Any()).Return(nil).Times(2)

		f.catalog.EXPECT().GetCourse(ctx, crt.Items[0].CourseID).
			Return(catalog.Course{ID: crt.Items[0].CourseID, InstructorID: instructorA}, nil)
		f.catalog.EXPECT().GetCourse(ctx, crt.Items[1].CourseID).
			Return(catalog.Course{ID: crt.Items[1].CourseID, InstructorID: instructorB}, nil)

		// Item portions: 66.00 and 44.00; instructor shares at 70%.
		f.tx.EXPECT().GetWalletByUser(ctx, instructorA).Return(walletA, nil)
		f.tx.EXPECT().CreditWallet(ctx, walletA.ID, 46.20).Return(46.20, nil)
		f.tx.EXPECT().AddInstructorEarning(ctx, instructorA, 46.20).Return(nil)

		f.tx.EXPECT().GetWalletByUser(ctx, instructorB).Return(walletB, nil)
		f.tx.EXPECT().CreditWallet(ctx, walletB.ID, 30.80).Return(30.80, nil)
		f.tx.EXPECT().AddInstructorEarning(ctx, instructorB, 30.80).Return(nil)

		// Two instructor lines plus the platform line.
		f.tx.EXPECT().AppendWalletHistory(ctx, gomock.Any()).Return(nil).Times(3)
		f.tx.EXPECT().CreditPlatformWallet(ctx, 33.00).Return(133.00, nil)

		f.tx.EXPECT().TransitionOrder(ctx, ord.ID, order.StatusPendingPayment, order.StatusPaid).Return(true, nil)
		f.tx.EXPECT().MarkCartPurchased(ctx, crt.ID).Return(nil)

		doc, err := f.applier.Apply(ctx, f.tx, completedTxn(), ord)

		require.NoError(t, err)
		assert.Equal(t, ord.ID, doc.OrderID)
		assert.InDelta(t, 110.00, doc.PaidAmount, 1e-9)
		assert.InDelta(t, 33.00, doc.PlatformAmount, 1e-9)
		require.Len(t, doc.Credits, 2)
		assert.InDelta(t, 46.20, doc.Credits[0].Amount, 1e-9)
		assert.InDelta(t, 30.80, doc.Credits[1].Amount, 1e-9)
		assert.Equal(t, []string{"Go Basics", "SQL Deep Dive"}, doc.Courses)
	})

	t.Run("rejects a transaction that is not completed", func(t *testing.T) {
		f := newApplierFixture(t)

		txn := completedTxn()
		txn.Status = transaction.StatusPending

		_, err := f.applier.Apply(ctx, f.tx, txn, pendingOrder(uuid.New(), 110.00))
		assert.Error(t, err)
	})

	t.Run("rejects an order that is not awaiting payment", func(t *testing.T) {
		f := newApplierFixture(t)

		ord := pendingOrder(uuid.New(), 110.00)
		ord.Status = order.StatusPaid

		_, err := f.applier.Apply(ctx, f.tx, completedTxn(), ord)
		assert.ErrorIs(t, err, apperror.ErrOrderNotPayable)
	})

	t.Run("aborts when access was already granted", func(t *testing.T) {
		f := newApplierFixture(t)

		crt := cart.Cart{ID: uuid.New(), Items: []cart.Item{
			{CourseID: uuid.New(), CourseTitle: "Go Basics", Price: 100.00},
		}}
		ord := pendingOrder(crt.ID, 110.00)

		f.tx.EXPECT().GetCartByID(ctx, crt.ID).Return(crt, nil)
		f.tx.EXPECT().HasEnrollment(ctx, ord.UserID, crt.Items[0].CourseID).Return(true, nil)

		_, err := f.applier.Apply(ctx, f.tx, completedTxn(), ord)
		assert.ErrorIs(t, err, apperror.ErrAlreadyGranted)
	})

	t.Run("fails when the instructor has no wallet", func(t *testing.T) {
		f := newApplierFixture(t)

		instructorID := uuid.New()
		crt := cart.Cart{ID: uuid.New(), Items: []cart.Item{
			{CourseID: uuid.New(), CourseTitle: "Go Basics", Price: 100.00},
		}}
		ord := pendingOrder(crt.ID, 110.00)

		f.tx.EXPECT().GetCartByID(ctx, crt.ID).Return(crt, nil)
		f.tx.EXPECT().HasEnrollment(ctx, ord.UserID, crt.Items[0].CourseID).Return(false, nil)
		f.tx.EXPECT().CreateEnrollment(ctx, gomock.Any()).Return(nil)
		f.catalog.EXPECT().GetCourse(ctx, crt.Items[0].CourseID).
			Return(catalog.Course{ID: crt.Items[0].CourseID, InstructorID: instructorID}, nil)
		f.tx.EXPECT().GetWalletByUser(ctx, instructorID).Return(wallet.Wallet{}, apperror.ErrWalletNotFound)

		_, err := f.applier.Apply(ctx, f.tx, completedTxn(), ord)
		assert.ErrorIs(t, err, apperror.ErrInstructorNotOnboarded)
	})

	t.Run("conflicts when another writer already finalized the order", func(t *testing.T) {
		f := newApplierFixture(t)

		instructorID := uuid.New()
		w := wallet.Wallet{ID: uuid.New(), UserID: instructorID}
		crt := cart.Cart{ID: uuid.New(), Items: []cart.Item{
			{CourseID: uuid.New(), CourseTitle: "Go Basics", Price: 100.00},
		}}
		ord := pendingOrder(crt.ID, 110.00)

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
		f.tx.EXPECT().TransitionOrder(ctx, ord.ID, order.StatusPendingPayment, order.StatusPaid).Return(false, nil)

		_, err := f.applier.Apply(ctx, f.tx, completedTxn(), ord)
		assert.ErrorIs(t, err, apperror.ErrOrderNotPayable)
	})
}

func TestApplier_Announce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("a failed side channel never stops the others", func(t *testing.T) {
		f := newApplierFixture(t)

		doc := Doc{OrderID: uuid.New(), UserID: uuid.New(), PaidAmount: 110.00}

		f.notifier.EXPECT().NotifyPurchase(ctx, gomock.Any()).Return(errors.New("broker down"))
		f.stats.EXPECT().RefreshStats(ctx, "purchases").Return(nil)
		f.sink.EXPECT().IndexSettlement(ctx, doc).Return(errors.New("index down"))

		f.applier.Announce(ctx, doc)
	})
}
