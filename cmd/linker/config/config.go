package config

import "time"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string        `env:"DATABASE_URL"`
	MetricsAddress string        `env:"METRICS_ADDRESS" envDefault:":9090"`
	ClaimTimeout   time.Duration `env:"CLAIM_TIMEOUT" envDefault:"5m"`
	Workers        uint          `env:"WORKERS" envDefault:"8"`

	Matching   Matching
	Retry      Retry
	Review     Review
	Monitoring Monitoring
	RabbitMQ   RabbitMQ
}

// Matching holds matching decision configuration.
type Matching struct {
	AutoThreshold   float64 `env:"MATCH_AUTO_THRESHOLD" envDefault:"95"`
	ReviewThreshold float64 `env:"MATCH_REVIEW_THRESHOLD" envDefault:"70"`
	BlockingEnabled bool    `env:"MATCH_BLOCKING_ENABLED" envDefault:"true"`
	TopCandidates   int     `env:"MATCH_TOP_CANDIDATES" envDefault:"5"`
}

// Retry holds failed command retry configuration.
type Retry struct {
	Backoff     []time.Duration `env:"RETRY_BACKOFF" envDefault:"1s,5s,25s"`
	MaxAttempts uint            `env:"RETRY_MAX_ATTEMPTS" envDefault:"3"`
}

// Review holds review queue configuration.
type Review struct {
	TTL           time.Duration `env:"REVIEW_TTL" envDefault:"720h"`
	SweepInterval time.Duration `env:"REVIEW_SWEEP_INTERVAL" envDefault:"1h"`
}

// Monitoring holds backlog monitoring configuration.
type Monitoring struct {
	BacklogThreshold int           `env:"BACKLOG_THRESHOLD" envDefault:"10000"`
	BacklogInterval  time.Duration `env:"BACKLOG_INTERVAL" envDefault:"1m"`
	BacklogAlertRate time.Duration `env:"BACKLOG_ALERT_RATE" envDefault:"15m"`
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL            string `env:"RABBITMQ_URL"`
	Exchange       string `env:"RABBITMQ_EXCHANGE" envDefault:"catalog-linker-ex"`
	MatchQueue     string `env:"RABBITMQ_MATCH_QUEUE" envDefault:"catalog-linker.match"`
	AggregateQueue string `env:"RABBITMQ_AGGREGATE_QUEUE" envDefault:"catalog-linker.aggregate"`
	MatchKey       string `env:"RABBITMQ_MATCH_KEY" envDefault:"match"`
	AggregateKey   string `env:"RABBITMQ_AGGREGATE_KEY" envDefault:"aggregate"`
	DeadLetterKey  string `env:"RABBITMQ_DEAD_LETTER_KEY" envDefault:"dead-letter"`
}
