package app

import (
	"context"

	"coursepay/internal/domain/notify"
	"coursepay/internal/domain/settlement"
)

// nopOutbound stands in for Kafka and OpenSearch when they are not
// configured. Settlement and payouts proceed; the side channels are
// simply silent.
type nopOutbound struct{}

var _ notify.Notifier = nopOutbound{}
var _ notify.StatsRefresher = nopOutbound{}
var _ settlement.EventSink = nopOutbound{}

func (nopOutbound) NotifyPurchase(context.Context, notify.PurchaseNote) error    { return nil }
func (nopOutbound) NotifyPayoutApproved(context.Context, notify.PayoutNote) error { return nil }
func (nopOutbound) NotifyPayoutDenied(context.Context, notify.PayoutNote) error  { return nil }
func (nopOutbound) RefreshStats(context.Context, string) error                   { return nil }
func (nopOutbound) IndexSettlement(context.Context, settlement.Doc) error        { return nil }
