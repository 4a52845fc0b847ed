// Package payment bridges orders to the external gateway and governs
// the transaction lifecycle: tokenizing a pending transaction, capturing
// its external result and expiring stale ones.
package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"coursepay/internal/controller/apperror"
	"coursepay/internal/domain/gateway"
	"coursepay/internal/domain/ledger"
	"coursepay/internal/domain/order"
	"coursepay/internal/domain/transaction"
	"coursepay/pkg/metrics"

	"github.com/google/uuid"
)

const currency = "USD"

type Service struct {
	store     ledger.Store
	provider  gateway.Provider
	machine   *StateMachine
	returnURL string
	cancelURL string
}

func NewService(store ledger.Store, provider gateway.Provider, machine *StateMachine, returnURL, cancelURL string) *Service {
	return &Service{
		store:     store,
		provider:  provider,
		machine:   machine,
		returnURL: returnURL,
		cancelURL: cancelURL,
	}
}

// Result is the definitive outcome of a capture: the transaction and
// the status it ended in. There is no "maybe" result; an ambiguous
// gateway response is an error and the transaction stays pending.
type Result struct {
	TransactionID uuid.UUID          `json:"transaction_id"`
	OrderID       uuid.UUID          `json:"order_id"`
	Status        transaction.Status `json:"status"`
}

// ApprovalURL creates the external payment order for a checkout and
// returns the URL the buyer is redirected to. The gateway round trip
// runs outside any database transaction; the token is stored afterwards
// with a conditional update so a transaction can never be tokenized
// twice.
func (s *Service) ApprovalURL(ctx context.Context, orderID uuid.UUID) (string, error) {
	ord, err := s.store.GetOrderByID(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("load order: %w", err)
	}
	if ord.Status != order.StatusPendingPayment {
		return "", fmt.Errorf("order %s: %w", ord.ID, apperror.ErrOrderNotPayable)
	}
	if ord.PaidAmount <= 0 {
		return "", fmt.Errorf("order %s: %w", ord.ID, apperror.ErrInvalidAmount)
	}

	txn, err := s.store.GetTransactionByID(ctx, ord.TransactionID)
	if err != nil {
		return "", fmt.Errorf("load transaction: %w", err)
	}
	if txn.Status != transaction.StatusPending {
		return "", fmt.Errorf("transaction %s: %w", txn.ID, apperror.ErrTransactionFinal)
	}
	if txn.Token != "" {
		return "", fmt.Errorf("transaction %s: %w", txn.ID, apperror.ErrTransactionReuse)
	}

	crt, err := s.store.GetCartByID(ctx, ord.CartID)
	if err != nil {
		return "", fmt.Errorf("load cart: %w", err)
	}
	if crt.Purchased {
		return "", fmt.Errorf("cart %s already purchased: %w", crt.ID, apperror.ErrOrderNotPayable)
	}

	ext, err := s.provider.CreateExternalOrder(ctx, gateway.CreateOrderRequest{
		Amount:    ord.PaidAmount,
		Currency:  currency,
		ReturnURL: s.returnURL,
		CancelURL: s.cancelURL,
	})
	if err != nil {
		return "", fmt.Errorf("create external order: %w", err)
	}

	won, err := s.store.SetTransactionToken(ctx, txn.ID, ext.Token)
	if err != nil {
		return "", fmt.Errorf("store gateway token: %w", err)
	}
	if !won {
		// Tokenized or closed concurrently; the freshly created external
		// order is abandoned and expires on the gateway side.
		return "", fmt.Errorf("transaction %s: %w", txn.ID, apperror.ErrTransactionReuse)
	}

	return ext.ApprovalURL, nil
}

// Capture polls the gateway for the external order identified by token
// and applies the resulting transition. Gateway protocol errors leave
// the transaction pending for the sweeper; they are never guessed as
// success.
func (s *Service) Capture(ctx context.Context, token, payerID string) (Result, error) {
	if token == "" {
		return Result{}, apperror.ErrTransactionNotFound
	}

	slog.DebugContext(ctx, "capturing payment",
		slog.String("token", token), slog.String("payer_id", payerID))

	txn, err := s.store.GetTransactionByToken(ctx, token)
	if err != nil {
		return Result{}, fmt.Errorf("load transaction by token: %w", err)
	}
	if txn.Status.Terminal() {
		metrics.CapturesTotal.WithLabelValues("conflict").Inc()
		return Result{}, fmt.Errorf("transaction %s: %w", txn.ID, apperror.ErrTransactionFinal)
	}

	state, err := s.provider.FetchExternalOrder(ctx, token)
	if err != nil {
		metrics.CapturesTotal.WithLabelValues("gateway_error").Inc()
		return Result{}, fmt.Errorf("fetch external order: %w", err)
	}

	decision, err := gateway.MapExternalStatus(state.Status)
	if err != nil {
		metrics.CapturesTotal.WithLabelValues("protocol_error").Inc()
		return Result{}, err
	}

	switch decision {
	case gateway.DecisionApprove:
		doc, err := s.machine.Complete(ctx, txn.ID)
		if err != nil {
			if errors.Is(err, apperror.ErrTransactionFinal) {
				metrics.CapturesTotal.WithLabelValues("conflict").Inc()
			}
			return Result{}, err
		}
		metrics.CapturesTotal.WithLabelValues("completed").Inc()
		return Result{TransactionID: txn.ID, OrderID: doc.OrderID, Status: transaction.StatusCompleted}, nil

	default:
		if err := s.machine.Fail(ctx, txn.ID); err != nil {
			return Result{}, err
		}
		metrics.CapturesTotal.WithLabelValues("failed").Inc()
		return Result{TransactionID: txn.ID, Status: transaction.StatusFailed}, nil
	}
}
