package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/pricegrid/catalog-linker/internal/platform/metrics"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

//go:generate mockery --name Storage --filename storage.go

// Storage counts supplier items waiting for a match.
type Storage interface {
	CountUnmatched(ctx context.Context) (int, error)
}

// BacklogMonitor periodically measures the unmatched item backlog and
// alerts when it exceeds a configured threshold.
type BacklogMonitor struct {
	storage   Storage
	threshold int
	alerts    *rate.Limiter
	logger    *zerolog.Logger
}

// NewBacklogMonitor returns new BacklogMonitor. Threshold alerts are
// rate limited to one per alertEvery so a persistently large backlog
// does not flood the log.
func NewBacklogMonitor(
	storage Storage,
	threshold int,
	alertEvery time.Duration,
	logger *zerolog.Logger,
) *BacklogMonitor {
	return &BacklogMonitor{
		storage:   storage,
		threshold: threshold,
		alerts:    rate.NewLimiter(rate.Every(alertEvery), 1),
		logger:    logger,
	}
}

// Run measures the backlog every interval until ctx is done.
func (m *BacklogMonitor) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := m.measure(ctx); err != nil {
			m.logger.Error().
				Err(err).
				Msg("can't measure unmatched backlog")
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (m *BacklogMonitor) measure(ctx context.Context) error {
	backlog, err := m.storage.CountUnmatched(ctx)
	if err != nil {
		return fmt.Errorf("can't count unmatched items: %w", err)
	}

	metrics.UnmatchedBacklog.Set(float64(backlog))

	if backlog > m.threshold && m.alerts.Allow() {
		m.logger.Warn().
			Int("backlog", backlog).
			Int("threshold", m.threshold).
			Msg("unmatched items backlog above threshold")
	}

	return nil
}
