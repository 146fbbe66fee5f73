package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/caarlos0/env/v6"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/pricegrid/catalog-linker/cmd/linker/config"
	"github.com/pricegrid/catalog-linker/internal/aggregator"
	"github.com/pricegrid/catalog-linker/internal/enricher"
	"github.com/pricegrid/catalog-linker/internal/handler"
	"github.com/pricegrid/catalog-linker/internal/matcher"
	"github.com/pricegrid/catalog-linker/internal/monitor"
	"github.com/pricegrid/catalog-linker/internal/platform/rabbitmq"
	"github.com/pricegrid/catalog-linker/internal/platform/storage"
	"github.com/pricegrid/catalog-linker/internal/review"
	"github.com/pricegrid/catalog-linker/pkg/v1/commander"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg config.Config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't parse env variables")
	}

	amqpConnection, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	conn, err := rabbitmq.NewRabbitMQ(amqpConnection, cfg.RabbitMQ.Exchange)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open RabbitMQ connection")
	}

	pgDB, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't open Postgres connection")
	}

	pg := storage.NewPostgres(pgDB, cfg.ClaimTimeout)

	publisher := commander.NewCommander(
		commander.NewRabbitMQSender(conn, cfg.RabbitMQ.MatchKey),
		commander.NewRabbitMQSender(conn, cfg.RabbitMQ.AggregateKey),
	)

	workerID := uuid.NewString()

	mat := matcher.NewMatcher(
		pg,
		enricher.NewEnricher(),
		publisher,
		matcher.Config{
			AutoThreshold:   cfg.Matching.AutoThreshold,
			ReviewThreshold: cfg.Matching.ReviewThreshold,
			BlockingEnabled: cfg.Matching.BlockingEnabled,
			TopCandidates:   cfg.Matching.TopCandidates,
			ReviewTTL:       cfg.Review.TTL,
		},
		workerID,
		&logger,
	)

	agg := aggregator.NewAggregator(pg, &logger)

	rev := review.NewService(pg, publisher, workerID, &logger)

	han := handler.NewHandler(
		conn,
		mat,
		agg,
		handler.RetryPolicy{
			Backoff:     cfg.Retry.Backoff,
			MaxAttempts: cfg.Retry.MaxAttempts,
		},
		handler.Queues{
			MatchQueue:     cfg.RabbitMQ.MatchQueue,
			AggregateQueue: cfg.RabbitMQ.AggregateQueue,
			MatchKey:       cfg.RabbitMQ.MatchKey,
			AggregateKey:   cfg.RabbitMQ.AggregateKey,
			DeadLetterKey:  cfg.RabbitMQ.DeadLetterKey,
			Workers:        cfg.Workers,
		},
		&logger,
	)

	// start consuming and handling messages
	if err := han.Start(ctx); err != nil {
		logger.Fatal().
			Err(err).
			Msg("can't start consuming")
	}

	go rev.Sweep(ctx, cfg.Review.SweepInterval)

	backlog := monitor.NewBacklogMonitor(
		pg,
		cfg.Monitoring.BacklogThreshold,
		cfg.Monitoring.BacklogAlertRate,
		&logger,
	)
	go backlog.Run(ctx, cfg.Monitoring.BacklogInterval)

	metricsServer := &http.Server{
		Addr:    cfg.MetricsAddress,
		Handler: promhttp.Handler(),
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().
				Err(err).
				Msg("can't serve metrics")
		}
	}()

	logger.Info().Msg("catalog linker up and running")

	// handle graceful shutdown and context cancellation
	termChan := make(chan os.Signal, 1)
	signal.Notify(termChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-termChan:
		cancel()
	case <-ctx.Done():
	}

	logger.Info().Msg("graceful shutdown start")

	// wait for consumers to finish
	<-conn.Done()

	// close connections
	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		if err := metricsServer.Shutdown(context.Background()); err != nil {
			logger.Error().
				Err(err).
				Msg("can't stop metrics server")
		}
	}()

	go func() {
		defer wg.Done()
		if err := pgDB.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close Postgres connection")
		}
	}()

	go func() {
		defer wg.Done()
		if err := amqpConnection.Close(); err != nil {
			logger.Fatal().
				Err(err).
				Msg("can't close RabbitMQ connection")
		}
	}()

	wg.Wait()

	logger.Info().Msg("graceful shutdown successful")
}
