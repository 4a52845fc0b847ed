package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CheckoutsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coursepay",
			Subsystem: "payments",
			Name:      "checkouts_total",
			Help:      "Total number of checkout attempts",
		},
		[]string{"result"},
	)

	CapturesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coursepay",
			Subsystem: "payments",
			Name:      "captures_total",
			Help:      "Total number of payment captures by outcome",
		},
		[]string{"outcome"},
	)

	SettlementsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "coursepay",
			Subsystem: "payments",
			Name:      "settlements_total",
			Help:      "Total number of settled orders",
		},
	)

	PayoutDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coursepay",
			Subsystem: "payouts",
			Name:      "decisions_total",
			Help:      "Total number of payout decisions",
		},
		[]string{"decision"},
	)

	SweeperExpiredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "coursepay",
			Subsystem: "sweeper",
			Name:      "expired_transactions_total",
			Help:      "Total number of pending transactions failed by the sweeper",
		},
	)

	PublishFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "coursepay",
			Subsystem: "messaging",
			Name:      "publish_failures_total",
			Help:      "Total number of failed event publishes, by topic",
		},
		[]string{"topic"},
	)
)

func init() {
	Registry.MustRegister(
		CheckoutsTotal,
		CapturesTotal,
		SettlementsTotal,
		PayoutDecisionsTotal,
		SweeperExpiredTotal,
		PublishFailuresTotal,
	)
}
