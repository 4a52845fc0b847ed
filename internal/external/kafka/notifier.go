package kafka

import (
	"context"
	"fmt"

	"coursepay/internal/domain/notify"
	"coursepay/internal/messaging"
)

// Notifier publishes notification and stats-refresh events. Delivery
// itself (email, live dashboards) is consumed elsewhere; the pipeline
// only emits.
type Notifier struct {
	notifications messaging.Publisher
	stats         messaging.Publisher
}

func NewNotifier(notifications, stats messaging.Publisher) *Notifier {
	return &Notifier{notifications: notifications, stats: stats}
}

var _ notify.Notifier = (*Notifier)(nil)
var _ notify.StatsRefresher = (*Notifier)(nil)

func (n *Notifier) NotifyPurchase(ctx context.Context, note notify.PurchaseNote) error {
	return n.publish(ctx, note.UserID.String(), "notification.purchase", note)
}

func (n *Notifier) NotifyPayoutApproved(ctx context.Context, note notify.PayoutNote) error {
	return n.publish(ctx, note.InstructorID.String(), "notification.payout_approved", note)
}

func (n *Notifier) NotifyPayoutDenied(ctx context.Context, note notify.PayoutNote) error {
	return n.publish(ctx, note.InstructorID.String(), "notification.payout_denied", note)
}

func (n *Notifier) publish(ctx context.Context, key, msgType string, payload any) error {
	env, err := messaging.NewEnvelope(key, msgType, payload)
	if err != nil {
		return fmt.Errorf("create envelope: %w", err)
	}
	return n.notifications.Publish(ctx, env)
}

func (n *Notifier) RefreshStats(ctx context.Context, scope string) error {
	env, err := messaging.NewEnvelope(scope, "stats.refresh", map[string]string{"scope": scope})
	if err != nil {
		return fmt.Errorf("create envelope: %w", err)
	}
	return n.stats.Publish(ctx, env)
}
