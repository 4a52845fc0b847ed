// Package payout is the lifecycle manager for instructor withdrawals;
// the PayoutRequest entity itself lives in the wallet package.
package payout

import (
	"context"
	"fmt"
	"log/slog"

	"coursepay/internal/controller/apperror"
	"coursepay/internal/domain/ledger"
	"coursepay/internal/domain/notify"
	"coursepay/internal/domain/transaction"
	"coursepay/internal/domain/wallet"
	"coursepay/pkg/metrics"

	"github.com/google/uuid"
)

// Service validates and decides payout requests. Requesting reserves
// nothing: the wallet is debited on approval, so a rejected request
// never touched the balance.
type Service struct {
	store    ledger.Store
	notifier notify.Notifier
	stats    notify.StatsRefresher
}

func NewService(store ledger.Store, notifier notify.Notifier, stats notify.StatsRefresher) *Service {
	return &Service{store: store, notifier: notifier, stats: stats}
}

// Request validates the balance and records a pending payout request
// with its own pending transaction. No transaction row is created when
// the balance is insufficient.
func (s *Service) Request(ctx context.Context, instructorID uuid.UUID, amount float64) (wallet.PayoutRequest, error) {
	if amount <= 0 {
		return wallet.PayoutRequest{}, apperror.ErrInvalidAmount
	}

	var result wallet.PayoutRequest
	err := s.store.InTransaction(ctx, func(tx ledger.TxStore) error {
		w, err := tx.GetWalletByUser(ctx, instructorID)
		if err != nil {
			return fmt.Errorf("load wallet: %w", err)
		}
		if w.Balance < amount {
			return apperror.ErrInsufficientFunds
		}

		txn := transaction.Transaction{
			ID:            uuid.New(),
			UserID:        instructorID,
			Amount:        amount,
			PaymentMethod: "wallet",
			Kind:          transaction.KindPayout,
			Status:        transaction.StatusPending,
			Description:   fmt.Sprintf("Payout request for %.2f", amount),
		}
		if err := tx.CreateTransaction(ctx, txn); err != nil {
			return fmt.Errorf("create payout transaction: %w", err)
		}

		result = wallet.PayoutRequest{
			ID:            uuid.New(),
			InstructorID:  instructorID,
			TransactionID: txn.ID,
			Amount:        amount,
			Status:        wallet.PayoutPending,
		}
		if err := tx.CreatePayoutRequest(ctx, result); err != nil {
			return fmt.Errorf("create payout request: %w", err)
		}
		return nil
	})
	if err != nil {
		return wallet.PayoutRequest{}, err
	}
	return result, nil
}

// Approve completes the payout transaction, debits the wallet, bumps
// the instructor's withdrawn total and marks the request approved, all
// in one unit of work. Only pending requests can be approved.
func (s *Service) Approve(ctx context.Context, id uuid.UUID) error {
	var req wallet.PayoutRequest

	err := s.store.InTransaction(ctx, func(tx ledger.TxStore) error {
		var err error
		req, err = tx.GetPayoutRequest(ctx, id)
		if err != nil {
			return fmt.Errorf("load payout request: %w", err)
		}

		won, err := tx.TransitionPayout(ctx, id, wallet.PayoutPending, wallet.PayoutApproved, nil)
		if err != nil {
			return fmt.Errorf("approve payout: %w", err)
		}
		if !won {
			return fmt.Errorf("payout %s: %w", id, apperror.ErrPayoutNotPending)
		}

		won, err = tx.TransitionTransaction(ctx, req.TransactionID, transaction.StatusPending, transaction.StatusCompleted)
		if err != nil {
			return fmt.Errorf("complete payout transaction: %w", err)
		}
		if !won {
			return fmt.Errorf("transaction %s: %w", req.TransactionID, apperror.ErrTransactionFinal)
		}

		w, err := tx.GetWalletByUser(ctx, req.InstructorID)
		if err != nil {
			return fmt.Errorf("load wallet: %w", err)
		}

		newBalance, won, err := tx.DebitWallet(ctx, w.ID, req.Amount)
		if err != nil {
			return fmt.Errorf("debit wallet: %w", err)
		}
		if !won {
			// Balance dropped below the requested amount since the
			// request was made.
			return fmt.Errorf("wallet %s: %w", w.ID, apperror.ErrInsufficientFunds)
		}

		if err := tx.AppendWalletHistory(ctx, wallet.History{
			ID:            uuid.New(),
			WalletID:      w.ID,
			AmountChanged: -req.Amount,
			NewBalance:    newBalance,
			Description:   fmt.Sprintf("Payout %s approved", id),
		}); err != nil {
			return fmt.Errorf("append wallet history: %w", err)
		}

		if err := tx.AddInstructorWithdrawn(ctx, req.InstructorID, req.Amount); err != nil {
			return fmt.Errorf("update withdrawn total: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.PayoutDecisionsTotal.WithLabelValues("approved").Inc()
	s.announce(ctx, "payout approved", func() error {
		return s.notifier.NotifyPayoutApproved(ctx, notify.PayoutNote{
			InstructorID:  req.InstructorID,
			TransactionID: req.TransactionID,
			Amount:        req.Amount,
		})
	})
	return nil
}

// Deny rejects a pending payout request. The reason is mandatory and is
// delivered verbatim to the instructor; the payout transaction is left
// as it was.
func (s *Service) Deny(ctx context.Context, id uuid.UUID, reason string) error {
	if reason == "" {
		return apperror.ErrMissingReason
	}

	var req wallet.PayoutRequest
	err := s.store.InTransaction(ctx, func(tx ledger.TxStore) error {
		var err error
		req, err = tx.GetPayoutRequest(ctx, id)
		if err != nil {
			return fmt.Errorf("load payout request: %w", err)
		}

		won, err := tx.TransitionPayout(ctx, id, wallet.PayoutPending, wallet.PayoutRejected, &reason)
		if err != nil {
			return fmt.Errorf("reject payout: %w", err)
		}
		if !won {
			return fmt.Errorf("payout %s: %w", id, apperror.ErrPayoutNotPending)
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.PayoutDecisionsTotal.WithLabelValues("rejected").Inc()
	s.announce(ctx, "payout denied", func() error {
		return s.notifier.NotifyPayoutDenied(ctx, notify.PayoutNote{
			InstructorID:  req.InstructorID,
			TransactionID: req.TransactionID,
			Amount:        req.Amount,
			Reason:        reason,
		})
	})
	return nil
}

// WalletStatement returns an instructor's wallet with its history lines
// for the earnings view.
func (s *Service) WalletStatement(ctx context.Context, instructorID uuid.UUID) (wallet.Wallet, []wallet.History, error) {
	w, err := s.store.GetWalletByUser(ctx, instructorID)
	if err != nil {
		return wallet.Wallet{}, nil, fmt.Errorf("load wallet: %w", err)
	}

	history, err := s.store.GetWalletHistory(ctx, w.ID)
	if err != nil {
		return wallet.Wallet{}, nil, fmt.Errorf("load wallet history: %w", err)
	}
	return w, history, nil
}

// announce runs a fire-and-forget side effect; failures are logged,
// never propagated.
func (s *Service) announce(ctx context.Context, what string, fn func() error) {
	if err := fn(); err != nil {
		slog.WarnContext(ctx, what+" notification failed", slog.Any("error", err))
	}
	if err := s.stats.RefreshStats(ctx, "payouts"); err != nil {
		slog.WarnContext(ctx, "stats refresh failed", slog.Any("error", err))
	}
}
