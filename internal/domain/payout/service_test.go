package payout

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"coursepay/internal/controller/apperror"
	"coursepay/internal/domain/ledger"
	"coursepay/internal/domain/notify"
	"coursepay/internal/domain/transaction"
	"coursepay/internal/domain/wallet"
)

type payoutFixture struct {
	service  *Service
	store    *ledger.MockStore
	tx       *ledger.MockTxStore
	notifier *notify.MockNotifier
	stats    *notify.MockStatsRefresher
}

func newPayoutFixture(t *testing.T) *payoutFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &payoutFixture{
		store:    ledger.NewMockStore(ctrl),
		tx:       ledger.NewMockTxStore(ctrl),
		notifier: notify.NewMockNotifier(ctrl),
		stats:    notify.NewMockStatsRefresher(ctrl),
	}
	f.service = NewService(f.store, f.notifier, f.stats)
	return f
}

func (f *payoutFixture) expectInTransaction(ctx context.Context) {
	f.store.EXPECT().InTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(tx ledger.TxStore) error) error {
			return fn(f.tx)
		})
}

func TestService_Request(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	instructorID := uuid.New()

	t.Run("records a pending request with its transaction", func(t *testing.T) {
		f := newPayoutFixture(t)

		w := wallet.Wallet{ID: uuid.New(), UserID: instructorID, Balance: 500.00}

		f.expectInTransaction(ctx)
		f.tx.EXPECT().GetWalletByUser(ctx, instructorID).Return(w, nil)
		f.tx.EXPECT().CreateTransaction(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, txn transaction.Transaction) error {
				assert.Equal(t, transaction.KindPayout, txn.Kind)
				assert.Equal(t, transaction.StatusPending, txn.Status)
				assert.InDelta(t, 200.00, txn.Amount, 1e-9)
				return nil
			})
		f.tx.EXPECT().CreatePayoutRequest(ctx, gomock.Any()).Return(nil)

		req, err := f.service.Request(ctx, instructorID, 200.00)

		require.NoError(t, err)
		assert.Equal(t, wallet.PayoutPending, req.Status)
		assert.InDelta(t, 200.00, req.Amount, 1e-9)
	})

	t.Run("creates nothing when the balance is insufficient", func(t *testing.T) {
		f := newPayoutFixture(t)

		w := wallet.Wallet{ID: uuid.New(), UserID: instructorID, Balance: 100.00}

		f.expectInTransaction(ctx)
		f.tx.EXPECT().GetWalletByUser(ctx, instructorID).Return(w, nil)

		_, err := f.service.Request(ctx, instructorID, 200.00)
		assert.ErrorIs(t, err, apperror.ErrInsufficientFunds)
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		f := newPayoutFixture(t)

		_, err := f.service.Request(ctx, instructorID, 0)
		assert.ErrorIs(t, err, apperror.ErrInvalidAmount)

		_, err = f.service.Request(ctx, instructorID, -10)
		assert.ErrorIs(t, err, apperror.ErrInvalidAmount)
	})
}

func TestService_Approve(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	pendingRequest := func() (wallet.PayoutRequest, wallet.Wallet) {
		instructorID := uuid.New()
		req := wallet.PayoutRequest{
			ID: uuid.New(), InstructorID: instructorID, TransactionID: uuid.New(),
			Amount: 200.00, Status: wallet.PayoutPending,
		}
		w := wallet.Wallet{ID: uuid.New(), UserID: instructorID, Balance: 500.00}
		return req, w
	}

	t.Run("debits the wallet and completes the transaction", func(t *testing.T) {
		f := newPayoutFixture(t)

		req, w := pendingRequest()

		f.expectInTransaction(ctx)
		f.tx.EXPECT().GetPayoutRequest(ctx, req.ID).Return(req, nil)
		f.tx.EXPECT().TransitionPayout(ctx, req.ID, wallet.PayoutPending, wallet.PayoutApproved, nil).Return(true, nil)
		f.tx.EXPECT().TransitionTransaction(ctx, req.TransactionID, transaction.StatusPending, transaction.StatusCompleted).Return(true, nil)
		f.tx.EXPECT().GetWalletByUser(ctx, req.InstructorID).Return(w, nil)
		f.tx.EXPECT().DebitWallet(ctx, w.ID, 200.00).Return(300.00, true, nil)
		f.tx.EXPECT().AppendWalletHistory(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, h wallet.History) error {
				assert.InDelta(t, -200.00, h.AmountChanged, 1e-9)
				assert.InDelta(t, 300.00, h.NewBalance, 1e-9)
				return nil
			})
		f.tx.EXPECT().AddInstructorWithdrawn(ctx, req.InstructorID, 200.00).Return(nil)

		f.notifier.EXPECT().NotifyPayoutApproved(ctx, gomock.Any()).Return(nil)
		f.stats.EXPECT().RefreshStats(ctx, "payouts").Return(nil)

		assert.NoError(t, f.service.Approve(ctx, req.ID))
	})

	t.Run("conflicts on a request that is no longer pending", func(t *testing.T) {
		f := newPayoutFixture(t)

		req, _ := pendingRequest()
		req.Status = wallet.PayoutRejected

		f.expectInTransaction(ctx)
		f.tx.EXPECT().GetPayoutRequest(ctx, req.ID).Return(req, nil)
		f.tx.EXPECT().TransitionPayout(ctx, req.ID, wallet.PayoutPending, wallet.PayoutApproved, nil).Return(false, nil)

		assert.ErrorIs(t, f.service.Approve(ctx, req.ID), apperror.ErrPayoutNotPending)
	})

	t.Run("aborts when the balance dropped below the requested amount", func(t *testing.T) {
		f := newPayoutFixture(t)

		req, w := pendingRequest()
		w.Balance = 50.00

		f.expectInTransaction(ctx)
		f.tx.EXPECT().GetPayoutRequest(ctx, req.ID).Return(req, nil)
		f.tx.EXPECT().TransitionPayout(ctx, req.ID, wallet.PayoutPending, wallet.PayoutApproved, nil).Return(true, nil)
		f.tx.EXPECT().TransitionTransaction(ctx, req.TransactionID, transaction.StatusPending, transaction.StatusCompleted).Return(true, nil)
		f.tx.EXPECT().GetWalletByUser(ctx, req.InstructorID).Return(w, nil)
		f.tx.EXPECT().DebitWallet(ctx, w.ID, 200.00).Return(50.00, false, nil)

		assert.ErrorIs(t, f.service.Approve(ctx, req.ID), apperror.ErrInsufficientFunds)
	})
}

func TestService_Deny(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("requires a reason", func(t *testing.T) {
		f := newPayoutFixture(t)

		assert.ErrorIs(t, f.service.Deny(ctx, uuid.New(), ""), apperror.ErrMissingReason)
	})

	t.Run("rejects the request and delivers the reason verbatim", func(t *testing.T) {
		f := newPayoutFixture(t)

		req := wallet.PayoutRequest{
			ID: uuid.New(), InstructorID: uuid.New(), TransactionID: uuid.New(),
			Amount: 200.00, Status: wallet.PayoutPending,
		}
		reason := "Account under review until KYC completes"

		f.expectInTransaction(ctx)
		f.tx.EXPECT().GetPayoutRequest(ctx, req.ID).Return(req, nil)
		f.tx.EXPECT().TransitionPayout(ctx, req.ID, wallet.PayoutPending, wallet.PayoutRejected, &reason).Return(true, nil)

		f.notifier.EXPECT().NotifyPayoutDenied(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, note notify.PayoutNote) error {
				assert.Equal(t, reason, note.Reason)
				return nil
			})
		f.stats.EXPECT().RefreshStats(ctx, "payouts").Return(nil)

		assert.NoError(t, f.service.Deny(ctx, req.ID, reason))
	})

	t.Run("conflicts on a decided request", func(t *testing.T) {
		f := newPayoutFixture(t)

		req := wallet.PayoutRequest{ID: uuid.New(), Status: wallet.PayoutApproved}
		reason := "too late"

		f.expectInTransaction(ctx)
		f.tx.EXPECT().GetPayoutRequest(ctx, req.ID).Return(req, nil)
		f.tx.EXPECT().TransitionPayout(ctx, req.ID, wallet.PayoutPending, wallet.PayoutRejected, &reason).Return(false, nil)

		assert.ErrorIs(t, f.service.Deny(ctx, req.ID, reason), apperror.ErrPayoutNotPending)
	})
}
