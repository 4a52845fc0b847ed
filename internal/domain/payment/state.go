package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"coursepay/internal/controller/apperror"
	"coursepay/internal/domain/ledger"
	"coursepay/internal/domain/order"
	"coursepay/internal/domain/settlement"
	"coursepay/internal/domain/transaction"

	"github.com/google/uuid"
)

// StateMachine applies the guarded Pending -> Completed/Failed
// transitions. The conditional update on the transaction row is the
// single commit point: the caller that wins it owns the side effects,
// and a loser (a retried callback, or the sweeper racing a capture)
// gets ErrTransactionFinal instead of a second application.
type StateMachine struct {
	store   ledger.Store
	settler *settlement.Applier
}

func NewStateMachine(store ledger.Store, settler *settlement.Applier) *StateMachine {
	return &StateMachine{store: store, settler: settler}
}

// Complete moves a purchase transaction to Completed and settles its
// order in the same unit of work. Settlement failure rolls the
// transition back, leaving the transaction pending for a retry or the
// sweeper.
func (m *StateMachine) Complete(ctx context.Context, transactionID uuid.UUID) (settlement.Doc, error) {
	var doc settlement.Doc

	err := m.store.InTransaction(ctx, func(tx ledger.TxStore) error {
		won, err := tx.TransitionTransaction(ctx, transactionID, transaction.StatusPending, transaction.StatusCompleted)
		if err != nil {
			return fmt.Errorf("complete transaction: %w", err)
		}
		if !won {
			return fmt.Errorf("transaction %s: %w", transactionID, apperror.ErrTransactionFinal)
		}

		txn, err := tx.GetTransactionByID(ctx, transactionID)
		if err != nil {
			return fmt.Errorf("load transaction: %w", err)
		}

		ord, err := tx.GetOrderByTransactionID(ctx, transactionID)
		if err != nil {
			return fmt.Errorf("load order for transaction %s: %w", transactionID, err)
		}

		doc, err = m.settler.Apply(ctx, tx, txn, ord)
		return err
	})
	if err != nil {
		return settlement.Doc{}, err
	}

	m.settler.Announce(ctx, doc)
	return doc, nil
}

// Fail moves a transaction to Failed and fails its order, if any. The
// cart stays open for a fresh checkout. Losing the transition race is
// reported as ErrTransactionFinal; callers that only race the sweeper
// drop it.
func (m *StateMachine) Fail(ctx context.Context, transactionID uuid.UUID) error {
	return m.store.InTransaction(ctx, func(tx ledger.TxStore) error {
		won, err := tx.TransitionTransaction(ctx, transactionID, transaction.StatusPending, transaction.StatusFailed)
		if err != nil {
			return fmt.Errorf("fail transaction: %w", err)
		}
		if !won {
			return fmt.Errorf("transaction %s: %w", transactionID, apperror.ErrTransactionFinal)
		}

		ord, err := tx.GetOrderByTransactionID(ctx, transactionID)
		if errors.Is(err, apperror.ErrOrderNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("load order for transaction %s: %w", transactionID, err)
		}

		// The order may have been superseded already; dropping the lost
		// transition is fine, the transaction row is what matters.
		if _, err := tx.TransitionOrder(ctx, ord.ID, order.StatusPendingPayment, order.StatusFailed); err != nil {
			return fmt.Errorf("fail order %s: %w", ord.ID, err)
		}
		return nil
	})
}

// FailExpired fails every purchase transaction that has been pending
// since before the cutoff. A transaction completed by a concurrent
// capture between the listing and the transition simply loses the race
// and is skipped.
func (m *StateMachine) FailExpired(ctx context.Context, cutoff time.Time) (int, error) {
	stale, err := m.store.ListPendingTransactionsBefore(ctx, transaction.KindPurchase, cutoff)
	if err != nil {
		return 0, fmt.Errorf("list stale transactions: %w", err)
	}

	failed := 0
	for _, txn := range stale {
		if err := m.Fail(ctx, txn.ID); err != nil {
			if errors.Is(err, apperror.ErrTransactionFinal) {
				slog.DebugContext(ctx, "stale transaction already resolved", slog.String("transaction_id", txn.ID.String()))
				continue
			}
			return failed, err
		}
		failed++
	}
	return failed, nil
}
