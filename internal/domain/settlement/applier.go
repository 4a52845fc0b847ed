package settlement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"coursepay/internal/controller/apperror"
	"coursepay/internal/domain/catalog"
	"coursepay/internal/domain/ledger"
	"coursepay/internal/domain/notify"
	"coursepay/internal/domain/order"
	"coursepay/internal/domain/transaction"
	"coursepay/internal/domain/wallet"
	"coursepay/pkg/metrics"

	"github.com/google/uuid"
)

// Applier grants course access and credits instructor and platform
// wallets for a completed purchase transaction. Apply runs inside the
// caller's database transaction, so a mid-way failure rolls back every
// credit; the status transition that committed the transaction is the
// single point that decides whether settlement happened.
type Applier struct {
	catalog         catalog.CourseCatalog
	instructorShare float64
	notifier        notify.Notifier
	stats           notify.StatsRefresher
	sink            EventSink
}

func NewApplier(
	cat catalog.CourseCatalog,
	instructorShare float64,
	notifier notify.Notifier,
	stats notify.StatsRefresher,
	sink EventSink,
) *Applier {
	return &Applier{
		catalog:         cat,
		instructorShare: instructorShare,
		notifier:        notifier,
		stats:           stats,
		sink:            sink,
	}
}

// Apply settles the order tied to a completed transaction: one
// enrollment per cart item, wallet credits with history lines, the
// instructor earning aggregates, then order Paid and cart purchased.
// An existing enrollment aborts the whole unit with ErrAlreadyGranted.
func (a *Applier) Apply(ctx context.Context, tx ledger.TxStore, txn transaction.Transaction, ord order.Order) (Doc, error) {
	if txn.Status != transaction.StatusCompleted {
		return Doc{}, fmt.Errorf("settle order %s: transaction %s is not completed", ord.ID, txn.ID)
	}
	if ord.Status != order.StatusPendingPayment {
		return Doc{}, fmt.Errorf("order %s: %w", ord.ID, apperror.ErrOrderNotPayable)
	}

	crt, err := tx.GetCartByID(ctx, ord.CartID)
	if err != nil {
		return Doc{}, fmt.Errorf("load cart: %w", err)
	}
	if crt.Empty() {
		return Doc{}, fmt.Errorf("cart %s: %w", crt.ID, apperror.ErrCartEmpty)
	}

	doc := Doc{
		OrderID:    ord.ID,
		UserID:     ord.UserID,
		PaidAmount: ord.PaidAmount,
		SettledAt:  time.Now().UTC(),
	}

	subtotal := crt.Subtotal()
	allocated := 0.0

	for i, item := range crt.Items {
		granted, err := tx.HasEnrollment(ctx, ord.UserID, item.CourseID)
		if err != nil {
			return Doc{}, fmt.Errorf("check enrollment: %w", err)
		}
		if granted {
			return Doc{}, fmt.Errorf("course %s: %w", item.CourseID, apperror.ErrAlreadyGranted)
		}

		if err := tx.CreateEnrollment(ctx, ledger.Enrollment{
			ID:       uuid.New(),
			UserID:   ord.UserID,
			CourseID: item.CourseID,
		}); err != nil {
			return Doc{}, fmt.Errorf("grant access: %w", err)
		}

		course, err := a.catalog.GetCourse(ctx, item.CourseID)
		if err != nil {
			return Doc{}, fmt.Errorf("resolve course %s: %w", item.CourseID, err)
		}

		// The item's share of the paid amount; the last item absorbs the
		// rounding remainder so the portions sum to exactly PaidAmount.
		portion := Round2(ord.PaidAmount * item.Price / subtotal)
		if i == len(crt.Items)-1 {
			portion = Round2(ord.PaidAmount - allocated)
		}
		allocated = Round2(allocated + portion)

		earning, platformCut := Split(portion, a.instructorShare)

		credit, err := a.creditInstructor(ctx, tx, course.InstructorID, earning, item.CourseTitle, ord.ID)
		if err != nil {
			return Doc{}, err
		}

		doc.Credits = append(doc.Credits, credit)
		doc.PlatformAmount = Round2(doc.PlatformAmount + platformCut)
		doc.Courses = append(doc.Courses, item.CourseTitle)
	}

	if doc.PlatformAmount > 0 {
		newBalance, err := tx.CreditPlatformWallet(ctx, doc.PlatformAmount)
		if err != nil {
			return Doc{}, fmt.Errorf("credit platform wallet: %w", err)
		}
		if err := tx.AppendWalletHistory(ctx, walletLine(uuid.Nil, true, doc.PlatformAmount, newBalance,
			fmt.Sprintf("Platform share of order %s", ord.ID))); err != nil {
			return Doc{}, fmt.Errorf("append platform history: %w", err)
		}
	}

	won, err := tx.TransitionOrder(ctx, ord.ID, order.StatusPendingPayment, order.StatusPaid)
	if err != nil {
		return Doc{}, fmt.Errorf("mark order paid: %w", err)
	}
	if !won {
		return Doc{}, fmt.Errorf("order %s: %w", ord.ID, apperror.ErrOrderNotPayable)
	}

	if err := tx.MarkCartPurchased(ctx, crt.ID); err != nil {
		return Doc{}, fmt.Errorf("mark cart purchased: %w", err)
	}

	metrics.SettlementsTotal.Inc()
	return doc, nil
}

func (a *Applier) creditInstructor(ctx context.Context, tx ledger.TxStore, instructorID uuid.UUID, amount float64, courseTitle string, orderID uuid.UUID) (Credit, error) {
	w, err := tx.GetWalletByUser(ctx, instructorID)
	if err != nil {
		if errors.Is(err, apperror.ErrWalletNotFound) {
			return Credit{}, fmt.Errorf("instructor %s: %w", instructorID, apperror.ErrInstructorNotOnboarded)
		}
		return Credit{}, fmt.Errorf("load instructor wallet: %w", err)
	}

	newBalance, err := tx.CreditWallet(ctx, w.ID, amount)
	if err != nil {
		return Credit{}, fmt.Errorf("credit wallet %s: %w", w.ID, err)
	}

	if err := tx.AppendWalletHistory(ctx, walletLine(w.ID, false, amount, newBalance,
		fmt.Sprintf("Course sale: %s (order %s)", courseTitle, orderID))); err != nil {
		return Credit{}, fmt.Errorf("append wallet history: %w", err)
	}

	if err := tx.AddInstructorEarning(ctx, instructorID, amount); err != nil {
		return Credit{}, fmt.Errorf("update instructor earnings: %w", err)
	}

	return Credit{InstructorID: instructorID, WalletID: w.ID, Amount: amount}, nil
}

// Announce emits the post-commit, fire-and-forget side effects: buyer
// notification, statistics refresh and the dashboard index. Failures are
// logged and swallowed; they never undo a settlement.
func (a *Applier) Announce(ctx context.Context, doc Doc) {
	if err := a.notifier.NotifyPurchase(ctx, notify.PurchaseNote{
		UserID:     doc.UserID,
		OrderID:    doc.OrderID,
		PaidAmount: doc.PaidAmount,
		Courses:    doc.Courses,
	}); err != nil {
		slog.WarnContext(ctx, "purchase notification failed", slog.String("order_id", doc.OrderID.String()), slog.Any("error", err))
	}

	if err := a.stats.RefreshStats(ctx, "purchases"); err != nil {
		slog.WarnContext(ctx, "stats refresh failed", slog.Any("error", err))
	}

	if err := a.sink.IndexSettlement(ctx, doc); err != nil {
		slog.WarnContext(ctx, "settlement indexing failed", slog.String("order_id", doc.OrderID.String()), slog.Any("error", err))
	}
}

func walletLine(walletID uuid.UUID, platform bool, amount, newBalance float64, description string) wallet.History {
	return wallet.History{
		ID:            uuid.New(),
		WalletID:      walletID,
		Platform:      platform,
		AmountChanged: amount,
		NewBalance:    newBalance,
		Description:   description,
	}
}
