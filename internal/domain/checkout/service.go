// Package checkout builds orders out of carts. It also carries the thin
// cart operations the pipeline needs: reusing the single open cart per
// user and snapshotting course prices at add time.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"coursepay/internal/controller/apperror"
	"coursepay/internal/domain/cart"
	"coursepay/internal/domain/catalog"
	"coursepay/internal/domain/ledger"
	"coursepay/internal/domain/order"
	"coursepay/internal/domain/settlement"
	"coursepay/internal/domain/transaction"
	"coursepay/pkg/metrics"

	"github.com/google/uuid"
)

const paymentMethod = "paypal"

type Service struct {
	store   ledger.Store
	catalog catalog.CourseCatalog
	users   catalog.UserDirectory
	taxRate float64
}

func NewService(store ledger.Store, cat catalog.CourseCatalog, users catalog.UserDirectory, taxRate float64) *Service {
	return &Service{store: store, catalog: cat, users: users, taxRate: taxRate}
}

// OpenCart returns the user's current non-purchased cart.
func (s *Service) OpenCart(ctx context.Context, userID uuid.UUID) (cart.Cart, error) {
	return s.store.GetOpenCart(ctx, userID)
}

// AddToCart snapshots the course's current price and title into the
// user's open cart, creating the cart if none exists.
func (s *Service) AddToCart(ctx context.Context, userID, courseID uuid.UUID) (cart.Cart, error) {
	exists, err := s.users.UserExists(ctx, userID)
	if err != nil {
		return cart.Cart{}, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return cart.Cart{}, apperror.ErrUserNotFound
	}

	course, err := s.catalog.GetCourse(ctx, courseID)
	if err != nil {
		return cart.Cart{}, fmt.Errorf("resolve course: %w", err)
	}

	var result cart.Cart
	err = s.store.InTransaction(ctx, func(tx ledger.TxStore) error {
		c, err := tx.GetOpenCart(ctx, userID)
		if errors.Is(err, apperror.ErrCartNotFound) {
			c = cart.Cart{ID: uuid.New(), UserID: userID}
			if err := tx.CreateCart(ctx, c); err != nil {
				return fmt.Errorf("create cart: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("load open cart: %w", err)
		}

		item := cart.Item{
			ID:          uuid.New(),
			CartID:      c.ID,
			CourseID:    course.ID,
			CourseTitle: course.Title,
			Price:       course.Price,
		}
		if err := tx.AddCartItem(ctx, item); err != nil {
			return fmt.Errorf("add cart item: %w", err)
		}

		c.Items = append(c.Items, item)
		result = c
		return nil
	})
	if err != nil {
		return cart.Cart{}, err
	}
	return result, nil
}

// CreateOrder turns the user's open cart into a PendingPayment order
// with a fresh pending transaction. A still-pending order for the same
// cart is superseded (marked failed) first. The optional voucher must
// belong to the user and be valid right now; redeeming it invalidates
// it within the same unit of work.
func (s *Service) CreateOrder(ctx context.Context, userID uuid.UUID, voucherCode *string) (order.Order, error) {
	var result order.Order

	err := s.store.InTransaction(ctx, func(tx ledger.TxStore) error {
		c, err := tx.GetOpenCart(ctx, userID)
		if err != nil {
			return fmt.Errorf("load open cart: %w", err)
		}
		if c.Empty() {
			return apperror.ErrCartEmpty
		}

		if prev, err := tx.GetPendingOrderByCartID(ctx, c.ID); err == nil {
			// Superseded by this checkout; its transaction stays pending
			// and the sweeper will fail it.
			if _, err := tx.TransitionOrder(ctx, prev.ID, order.StatusPendingPayment, order.StatusFailed); err != nil {
				return fmt.Errorf("supersede pending order %s: %w", prev.ID, err)
			}
			slog.InfoContext(ctx, "superseded pending order", slog.String("order_id", prev.ID.String()))
		} else if !errors.Is(err, apperror.ErrOrderNotFound) {
			return fmt.Errorf("check pending order: %w", err)
		}

		subtotal := c.Subtotal()
		tax := settlement.Tax(subtotal, s.taxRate)
		amount := settlement.Round2(subtotal + tax)

		// The discount applies to the taxed amount: a 20% voucher on a
		// $110.00 order takes $22.00 off.
		discount := 0.0
		if voucherCode != nil && *voucherCode != "" {
			discount, err = s.redeemVoucher(ctx, tx, userID, *voucherCode, amount)
			if err != nil {
				return err
			}
		}

		txn := transaction.Transaction{
			ID:            uuid.New(),
			UserID:        userID,
			Amount:        settlement.Round2(amount - discount),
			PaymentMethod: paymentMethod,
			Kind:          transaction.KindPurchase,
			Status:        transaction.StatusPending,
			Description:   purchaseDescription(c),
		}
		if err := tx.CreateTransaction(ctx, txn); err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}

		o := order.Order{
			ID:             uuid.New(),
			UserID:         userID,
			CartID:         c.ID,
			TransactionID:  txn.ID,
			Amount:         amount,
			DiscountCode:   voucherCode,
			DiscountAmount: discount,
			PaidAmount:     settlement.Round2(amount - discount),
			Status:         order.StatusPendingPayment,
		}
		if err := tx.CreateOrder(ctx, o); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		result = o
		return nil
	})
	if err != nil {
		metrics.CheckoutsTotal.WithLabelValues("error").Inc()
		return order.Order{}, err
	}

	metrics.CheckoutsTotal.WithLabelValues("ok").Inc()
	return result, nil
}

func (s *Service) redeemVoucher(ctx context.Context, tx ledger.TxStore, userID uuid.UUID, code string, amount float64) (float64, error) {
	v, err := tx.GetVoucher(ctx, userID, code)
	if err != nil {
		if errors.Is(err, apperror.ErrInvalidVoucher) {
			return 0, apperror.ErrInvalidVoucher
		}
		return 0, fmt.Errorf("load voucher: %w", err)
	}
	if !v.UsableAt(time.Now()) {
		return 0, apperror.ErrInvalidVoucher
	}

	// Single use: a concurrent checkout racing on the same voucher loses
	// here and the whole unit rolls back.
	won, err := tx.InvalidateVoucher(ctx, v.ID)
	if err != nil {
		return 0, fmt.Errorf("invalidate voucher: %w", err)
	}
	if !won {
		return 0, apperror.ErrInvalidVoucher
	}

	return settlement.Discount(amount, v.Percentage), nil
}

func purchaseDescription(c cart.Cart) string {
	titles := make([]string, 0, len(c.Items))
	for _, it := range c.Items {
		titles = append(titles, it.CourseTitle)
	}
	return "Purchase of: " + strings.Join(titles, ", ")
}
