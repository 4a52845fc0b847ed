package payment

import (
	"context"
	"log/slog"
	"time"

	"coursepay/pkg/metrics"
)

// Sweeper is the background task that fails transactions left pending
// past the timeout. It only ever applies the guarded Pending -> Failed
// transition, so running concurrently with a live capture is safe: one
// of the two writers wins, the other drops its effect.
type Sweeper struct {
	machine  *StateMachine
	interval time.Duration
	timeout  time.Duration
}

func NewSweeper(machine *StateMachine, interval, timeout time.Duration) *Sweeper {
	return &Sweeper{machine: machine, interval: interval, timeout: timeout}
}

// Run polls until ctx is cancelled. Sweep errors are logged and the loop
// keeps going; a broken cycle must not kill the process.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "expiry sweeper started",
		slog.Duration("interval", s.interval), slog.Duration("timeout", s.timeout))

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "expiry sweeper stopped")
			return ctx.Err()
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.timeout)

	failed, err := s.machine.FailExpired(ctx, cutoff)
	if err != nil {
		slog.ErrorContext(ctx, "sweep cycle failed", slog.Any("error", err))
	}
	if failed > 0 {
		metrics.SweeperExpiredTotal.Add(float64(failed))
		slog.InfoContext(ctx, "expired stale transactions", slog.Int("count", failed))
	}
}
