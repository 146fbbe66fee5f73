// Package aggregator recomputes product derived fields (lowest price,
// availability) from the items linked to the product. Recomputation is
// idempotent and serialized per product via a non-blocking lock.
package aggregator

import (
	"context"
	"errors"
	"fmt"

	"github.com/pricegrid/catalog-linker/internal/platform"
	"github.com/pricegrid/catalog-linker/internal/platform/metrics"
	"github.com/pricegrid/catalog-linker/internal/platform/models"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Storage --filename storage.go

// Storage is products and linked items storage.
type Storage interface {
	// Product returns product by ID.
	Product(ctx context.Context, productID int) (*models.Product, error)
	// ClaimRecompute acquires the per-product aggregation lock.
	// It returns platform.ErrRecomputeLocked on contention.
	ClaimRecompute(ctx context.Context, productID int) error
	// ReleaseRecompute releases the per-product aggregation lock.
	ReleaseRecompute(ctx context.Context, productID int) error
	// LinkedItems returns all supplier items linked to the product.
	LinkedItems(ctx context.Context, productID int) ([]models.SupplierItem, error)
	// SaveAggregates persists recomputed derived fields.
	SaveAggregates(ctx context.Context, productID int, minPrice *float64, available bool) error
}

// Aggregator recomputes product aggregates.
type Aggregator struct {
	storage Storage
	logger  *zerolog.Logger
}

// NewAggregator returns new Aggregator.
func NewAggregator(storage Storage, logger *zerolog.Logger) *Aggregator {
	return &Aggregator{
		storage: storage,
		logger:  logger,
	}
}

// Recompute recalculates the product's lowest price and availability
// from its currently linked items. Archived products are left untouched.
// It returns platform.ErrRecomputeLocked when another worker is already
// recomputing the product; the caller should re-enqueue the trigger.
func (a *Aggregator) Recompute(ctx context.Context, productID int) error {
	product, err := a.storage.Product(ctx, productID)
	if err != nil {
		metrics.Recomputations.WithLabelValues("error").Inc()
		return fmt.Errorf("can't load product for recompute: %w", err)
	}

	if product.Status == models.ProductArchived {
		a.logger.Debug().
			Int("productId", productID).
			Msg("product archived, skipping recompute")
		return nil
	}

	if err := a.storage.ClaimRecompute(ctx, productID); err != nil {
		if errors.Is(err, platform.ErrRecomputeLocked) {
			metrics.Recomputations.WithLabelValues("locked").Inc()
			return err
		}
		metrics.Recomputations.WithLabelValues("error").Inc()
		return fmt.Errorf("can't lock product for recompute: %w", err)
	}

	defer func() {
		if err := a.storage.ReleaseRecompute(ctx, productID); err != nil {
			a.logger.Error().
				Err(err).
				Int("productId", productID).
				Msg("can't release recompute lock")
		}
	}()

	items, err := a.storage.LinkedItems(ctx, productID)
	if err != nil {
		metrics.Recomputations.WithLabelValues("error").Inc()
		return fmt.Errorf("can't load linked items: %w", err)
	}

	minPrice, available := Derive(items)

	if err := a.storage.SaveAggregates(ctx, productID, minPrice, available); err != nil {
		metrics.Recomputations.WithLabelValues("error").Inc()
		return fmt.Errorf("can't save recomputed aggregates: %w", err)
	}

	metrics.Recomputations.WithLabelValues("success").Inc()

	event := a.logger.Info().
		Int("productId", productID).
		Bool("available", available)
	if minPrice != nil {
		event = event.Float64("minPrice", *minPrice)
	}
	event.Msg("product aggregates recomputed")

	return nil
}

// Derive computes the aggregates from linked items: the lowest current
// price among in-stock items (nil when there are none) and whether any
// item reports an explicit in-stock signal. Availability is never
// inferred from price or absence of data.
func Derive(items []models.SupplierItem) (*float64, bool) {
	var minPrice *float64
	available := false

	for ix := range items {
		if items[ix].InStock == nil || !*items[ix].InStock {
			continue
		}

		available = true
		price := items[ix].CurrentPrice
		if minPrice == nil || price < *minPrice {
			minPrice = &price
		}
	}

	return minPrice, available
}
