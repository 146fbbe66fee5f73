package handler

import (
	"context"
	"time"

	"github.com/pricegrid/catalog-linker/internal/platform"
	"github.com/pricegrid/catalog-linker/internal/platform/metrics"
	"github.com/rs/zerolog"
)

// RetryPolicy decides how failed commands are retried.
type RetryPolicy struct {
	// Backoff holds the delay before each retry attempt. The last
	// entry is reused when attempts outnumber entries.
	Backoff []time.Duration
	// MaxAttempts is the number of deliveries before dead-lettering.
	MaxAttempts uint
}

// Delay returns the backoff delay before the given retry attempt.
func (p RetryPolicy) Delay(attempt uint) time.Duration {
	if len(p.Backoff) == 0 {
		return 0
	}
	if int(attempt) >= len(p.Backoff) {
		return p.Backoff[len(p.Backoff)-1]
	}
	return p.Backoff[attempt]
}

// FirstDelay returns the shortest configured backoff delay.
func (p RetryPolicy) FirstDelay() time.Duration {
	return p.Delay(0)
}

// failedCommand describes a command whose handling failed, with enough
// context to re-publish it or route it to the dead-letter queue.
type failedCommand struct {
	routingKey string
	attempt    uint
	remarshal  func(attempt uint) ([]byte, error)
	logCtx     func(*zerolog.Event) *zerolog.Event
}

// handleFailure classifies err and acts on it: permanent errors are
// logged and dropped, everything else is considered transient and
// re-published with backoff until MaxAttempts, then dead-lettered. It
// always returns nil so the original delivery is acked; re-delivery is
// done by publishing.
func (h *RMQHandler) handleFailure(ctx context.Context, cmd failedCommand, err error) error {
	if platform.IsPermanent(err) {
		cmd.logCtx(h.logger.Error()).
			Err(err).
			Msg("can't handle command, dropping")
		return nil
	}

	nextAttempt := cmd.attempt + 1
	if nextAttempt >= h.retry.MaxAttempts {
		return h.deadLetter(ctx, cmd, err)
	}

	message, marshalErr := cmd.remarshal(nextAttempt)
	if marshalErr != nil {
		cmd.logCtx(h.logger.Error()).
			Err(marshalErr).
			Msg("can't marshal command for retry, dropping")
		return nil
	}

	delay := h.retry.Delay(cmd.attempt)
	cmd.logCtx(h.logger.Warn()).
		Err(err).
		Uint("attempt", nextAttempt).
		Dur("delay", delay).
		Msg("command failed, retrying")
	metrics.Retries.Inc()

	h.publishLater(ctx, cmd.routingKey, message, delay)

	return nil
}

func (h *RMQHandler) deadLetter(ctx context.Context, cmd failedCommand, cause error) error {
	message, err := cmd.remarshal(cmd.attempt)
	if err != nil {
		cmd.logCtx(h.logger.Error()).
			Err(err).
			Msg("can't marshal command for dead-letter, dropping")
		return nil
	}

	if err := h.queue.Publish(ctx, h.queues.DeadLetterKey, message); err != nil {
		cmd.logCtx(h.logger.Error()).
			Err(err).
			Msg("can't publish command to dead-letter queue")
		return err
	}

	cmd.logCtx(h.logger.Error()).
		Err(cause).
		Uint("attempt", cmd.attempt).
		Msg("command exhausted retries, dead-lettered")
	metrics.DeadLettered.Inc()

	return nil
}

// publishLater publishes message to routingKey after delay. The
// original delivery is acked before the delay elapses, so a crash in
// the window loses the retry; the claim timeout recovers the item.
func (h *RMQHandler) publishLater(ctx context.Context, routingKey string, message []byte, delay time.Duration) {
	if delay <= 0 {
		if err := h.queue.Publish(ctx, routingKey, message); err != nil {
			h.logger.Error().
				Err(err).
				Str("routingKey", routingKey).
				Msg("can't re-publish command")
		}
		return
	}

	go func() {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		if err := h.queue.Publish(ctx, routingKey, message); err != nil {
			h.logger.Error().
				Err(err).
				Str("routingKey", routingKey).
				Msg("can't re-publish command")
		}
	}()
}