package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL" required:"true"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Payment gateway (PayPal-compatible checkout API).
	GatewayBaseURL       string        `env:"GATEWAY_BASE_URL" required:"true"`
	GatewayOrdersPath    string        `env:"GATEWAY_ORDERS_PATH" envDefault:"/v2/checkout/orders"`
	GatewayClientTimeout time.Duration `env:"GATEWAY_CLIENT_TIMEOUT" envDefault:"20s"`
	PaymentReturnURL     string        `env:"PAYMENT_RETURN_URL" required:"true"`
	PaymentCancelURL     string        `env:"PAYMENT_CANCEL_URL" required:"true"`

	// Settlement math. InstructorShare is the fraction of the paid amount
	// credited to the instructor; the rest goes to the platform wallet.
	TaxRate         float64 `env:"TAX_RATE" envDefault:"0.10"`
	InstructorShare float64 `env:"INSTRUCTOR_SHARE" envDefault:"0.70"`

	// Expiry sweeper.
	SweepInterval  time.Duration `env:"SWEEP_INTERVAL" envDefault:"30s"`
	PendingTimeout time.Duration `env:"PENDING_TIMEOUT" envDefault:"10m"`

	// Kafka configuration for fire-and-forget notifications and
	// statistics refresh signals.
	KafkaBrokers            []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaNotificationsTopic string   `env:"KAFKA_NOTIFICATIONS_TOPIC" envDefault:"coursepay.notifications"`
	KafkaStatsTopic         string   `env:"KAFKA_STATS_TOPIC" envDefault:"coursepay.stats-refresh"`

	// OpenSearch settlement event index for the earnings dashboard.
	OpensearchURLs            []string `env:"OPENSEARCH_URLS" envSeparator:","`
	OpensearchIndexSettlement string   `env:"OPENSEARCH_INDEX_SETTLEMENT" envDefault:"coursepay-settlements"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
