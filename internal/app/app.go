package app

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"coursepay/config"
	httpctrl "coursepay/internal/controller/http"
	"coursepay/internal/controller/http/handlers"
	"coursepay/internal/domain/checkout"
	"coursepay/internal/domain/notify"
	"coursepay/internal/domain/payment"
	"coursepay/internal/domain/payout"
	"coursepay/internal/domain/settlement"
	"coursepay/internal/external/kafka"
	"coursepay/internal/external/opensearch"
	"coursepay/internal/external/paypal"
	catalog_repo "coursepay/internal/repo/catalog"
	ledger_repo "coursepay/internal/repo/ledger"
	"coursepay/pkg/health"
	"coursepay/pkg/logger"
	"coursepay/pkg/metrics"
	"coursepay/pkg/postgres"
)

//go:embed migrations/*.sql
var MigrationFS embed.FS

func Run(cfg config.Config) {
	logger.Setup(logger.Options{
		Level:   cfg.LogLevel,
		Console: cfg.LogFormat == "console",
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pg, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pg.Close()

	if err := ApplyMigrations(cfg.PgURL, MigrationFS); err != nil {
		fatal(fmt.Errorf("app - Run - ApplyMigrations: %w", err))
	}

	store := ledger_repo.NewPgLedger(pg)
	catalogRepo := catalog_repo.NewPgCatalogRepo(pg)

	// Outbound side channels degrade to no-ops when unconfigured.
	var (
		notifier notify.Notifier       = nopOutbound{}
		stats    notify.StatsRefresher = nopOutbound{}
		sink     settlement.EventSink  = nopOutbound{}
	)
	if len(cfg.KafkaBrokers) > 0 {
		notificationsPub := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaNotificationsTopic)
		defer notificationsPub.Close()
		statsPub := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaStatsTopic)
		defer statsPub.Close()

		n := kafka.NewNotifier(notificationsPub, statsPub)
		notifier, stats = n, n
	}
	if len(cfg.OpensearchURLs) > 0 {
		s, err := opensearch.NewEventSink(ctx, cfg.OpensearchURLs, cfg.OpensearchIndexSettlement)
		if err != nil {
			fatal(fmt.Errorf("app - Run - opensearch.NewEventSink: %w", err))
		}
		sink = s
	}

	gatewayClient := paypal.New(
		cfg.GatewayBaseURL,
		cfg.GatewayOrdersPath,
		&http.Client{Timeout: cfg.GatewayClientTimeout},
	)

	settler := settlement.NewApplier(catalogRepo, cfg.InstructorShare, notifier, stats, sink)
	machine := payment.NewStateMachine(store, settler)

	checkoutService := checkout.NewService(store, catalogRepo, catalogRepo, cfg.TaxRate)
	paymentService := payment.NewService(store, gatewayClient, machine, cfg.PaymentReturnURL, cfg.PaymentCancelURL)
	payoutService := payout.NewService(store, notifier, stats)

	engine := NewGinEngine()

	checkers := []health.Checker{health.NewPostgresChecker(pg.Pool)}
	if len(cfg.KafkaBrokers) > 0 {
		checkers = append(checkers, health.NewKafkaChecker(cfg.KafkaBrokers))
	}
	healthRegistry := health.NewRegistry(checkers...)
	engine.GET("/healthz", health.LivenessHandler())
	engine.GET("/readyz", health.ReadinessHandler(healthRegistry, 5*time.Second))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	router := httpctrl.NewRouter(
		handlers.NewCartHandler(checkoutService),
		handlers.NewCheckoutHandler(checkoutService),
		handlers.NewPaymentHandler(paymentService),
		handlers.NewPayoutHandler(payoutService),
	)
	router.SetUp(engine)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting HTTP server", slog.Int("port", cfg.Port))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		sweeper := payment.NewSweeper(machine, cfg.SweepInterval, cfg.PendingTimeout)
		return sweeper.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		fatal(fmt.Errorf("app - Run: %w", err))
	}
	slog.Info("shut down cleanly")
}

func fatal(err error) {
	slog.Error(err.Error())
	os.Exit(1)
}
