package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pricegrid/catalog-linker/internal/matcher"
	"github.com/pricegrid/catalog-linker/internal/platform"
	"github.com/pricegrid/catalog-linker/internal/platform/rabbitmq"
	"github.com/pricegrid/catalog-linker/pkg/v1/commander"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Queue --filename queue.go
//go:generate mockery --name Matcher --filename matcher.go
//go:generate mockery --name Aggregator --filename aggregator.go

// Queue consumes and publishes pipeline messages.
type Queue interface {
	Consume(ctx context.Context, queue string, workers uint, handler rabbitmq.HandlerFunc) (<-chan error, error)
	Publish(ctx context.Context, routingKey string, message []byte) error
}

// Matcher matches one supplier item.
type Matcher interface {
	Process(ctx context.Context, itemID int, forceNewProduct bool) (matcher.Decision, error)
}

// Aggregator recomputes one product's derived fields.
type Aggregator interface {
	Recompute(ctx context.Context, productID int) error
}

// Queues holds queue and routing key names of the pipeline.
type Queues struct {
	MatchQueue     string
	AggregateQueue string
	MatchKey       string
	AggregateKey   string
	DeadLetterKey  string
	Workers        uint
}

// RMQHandler handles RMQ pipeline messages.
type RMQHandler struct {
	queue      Queue
	matcher    Matcher
	aggregator Aggregator
	retry      RetryPolicy
	queues     Queues
	logger     *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(
	queue Queue,
	matcher Matcher,
	aggregator Aggregator,
	retry RetryPolicy,
	queues Queues,
	logger *zerolog.Logger,
) *RMQHandler {
	return &RMQHandler{
		queue:      queue,
		matcher:    matcher,
		aggregator: aggregator,
		retry:      retry,
		queues:     queues,
		logger:     logger,
	}
}

// Start starts consuming and handling match and aggregation commands.
func (h *RMQHandler) Start(ctx context.Context) error {
	matchErrors, err := h.queue.Consume(ctx, h.queues.MatchQueue, h.queues.Workers, h.HandleMatch)
	if err != nil {
		return fmt.Errorf("can't consume match commands: %w", err)
	}

	aggregateErrors, err := h.queue.Consume(ctx, h.queues.AggregateQueue, h.queues.Workers, h.HandleAggregate)
	if err != nil {
		return fmt.Errorf("can't consume aggregation commands: %w", err)
	}

	go h.logErrors(matchErrors)
	go h.logErrors(aggregateErrors)

	return nil
}

// HandleMatch handles one match command message. Per-item failures are
// isolated: permanent failures are logged and acked, transient ones are
// re-published with backoff and dead-lettered after max attempts.
func (h *RMQHandler) HandleMatch(ctx context.Context, message []byte) error {
	var cmd commander.MatchCommand
	if err := json.Unmarshal(message, &cmd); err != nil {
		h.logger.Error().
			Err(err).
			Msg("can't decode match command, dropping")
		return nil
	}

	decision, err := h.matcher.Process(ctx, cmd.SupplierItemID, cmd.ForceNewProduct)
	if err != nil {
		return h.handleFailure(ctx, failedCommand{
			routingKey: h.queues.MatchKey,
			attempt:    cmd.Attempt,
			remarshal: func(attempt uint) ([]byte, error) {
				cmd.Attempt = attempt
				return json.Marshal(cmd)
			},
			logCtx: func(e *zerolog.Event) *zerolog.Event {
				return e.Int("itemId", cmd.SupplierItemID).Str("command", "match")
			},
		}, err)
	}

	h.logger.Debug().
		Int("itemId", cmd.SupplierItemID).
		Str("decision", string(decision.Outcome)).
		Msg("match command handled")

	return nil
}

// HandleAggregate handles one aggregation command message. A held
// per-product lock re-enqueues the event instead of failing it.
func (h *RMQHandler) HandleAggregate(ctx context.Context, message []byte) error {
	var cmd commander.AggregateCommand
	if err := json.Unmarshal(message, &cmd); err != nil {
		h.logger.Error().
			Err(err).
			Msg("can't decode aggregate command, dropping")
		return nil
	}

	err := h.aggregator.Recompute(ctx, cmd.ProductID)
	if errors.Is(err, platform.ErrRecomputeLocked) {
		// Another worker is recomputing this product right now; its run
		// may not observe this trigger, so put the event back.
		h.logger.Debug().
			Int("productId", cmd.ProductID).
			Msg("product recompute locked, re-enqueueing event")
		return h.requeueAggregate(ctx, cmd)
	}
	if err != nil {
		return h.handleFailure(ctx, failedCommand{
			routingKey: h.queues.AggregateKey,
			attempt:    cmd.Attempt,
			remarshal: func(attempt uint) ([]byte, error) {
				cmd.Attempt = attempt
				return json.Marshal(cmd)
			},
			logCtx: func(e *zerolog.Event) *zerolog.Event {
				return e.Int("productId", cmd.ProductID).Str("command", "aggregate")
			},
		}, err)
	}

	return nil
}

func (h *RMQHandler) requeueAggregate(ctx context.Context, cmd commander.AggregateCommand) error {
	message, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal aggregate command: %w", err)
	}

	h.publishLater(ctx, h.queues.AggregateKey, message, h.retry.FirstDelay())

	return nil
}

func (h *RMQHandler) logErrors(errorsChan <-chan error) {
	for err := range errorsChan {
		h.logger.Error().
			Err(err).
			Msg("can't handle message")
	}
}
