// Package override processes manual link/unlink requests from the admin
// surface. Overrides use the same per-item claim discipline as the
// matcher, produce verified matches protected from automatic re-matching,
// and are recorded with actor identity for audit.
package override

import (
	"context"
	"fmt"

	"github.com/pricegrid/catalog-linker/internal/platform"
	"github.com/pricegrid/catalog-linker/internal/platform/models"
	"github.com/pricegrid/catalog-linker/pkg/v1/commander"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Publisher --filename publisher.go

// Storage is supplier items, products and audit storage.
type Storage interface {
	// Item returns supplier item by ID.
	Item(ctx context.Context, itemID int) (*models.SupplierItem, error)
	// Product returns product by ID.
	Product(ctx context.Context, productID int) (*models.Product, error)
	// ClaimItem exclusively acquires the item for workerID.
	ClaimItem(ctx context.Context, itemID int, workerID string) error
	// ReleaseItem releases a claim held by workerID.
	ReleaseItem(ctx context.Context, itemID int, workerID string) error
	// LinkItem links the item to a product with status and score.
	LinkItem(ctx context.Context, itemID int, productID int, status models.MatchStatus, score *float64) error
	// UnlinkItem detaches the item from its product and resets status.
	UnlinkItem(ctx context.Context, itemID int, status models.MatchStatus) error
	// LinkedItems returns all supplier items linked to the product.
	LinkedItems(ctx context.Context, productID int) ([]models.SupplierItem, error)
	// RecordOverride appends an override action to the audit trail.
	RecordOverride(ctx context.Context, rec models.OverrideRecord) error
}

// Publisher publishes aggregation events.
type Publisher interface {
	SendAggregateCommand(ctx context.Context, cmd commander.AggregateCommand) error
}

// Result is an override outcome: the affected product with all items
// linked to it after the change.
type Result struct {
	Product     models.Product
	LinkedItems []models.SupplierItem
}

// Handler applies manual overrides.
type Handler struct {
	storage   Storage
	publisher Publisher
	workerID  string
	logger    *zerolog.Logger
}

// NewHandler returns new override Handler identified by workerID for claiming.
func NewHandler(storage Storage, publisher Publisher, workerID string, logger *zerolog.Logger) *Handler {
	return &Handler{
		storage:   storage,
		publisher: publisher,
		workerID:  workerID,
		logger:    logger,
	}
}

// Link manually links a supplier item to a product as a verified match.
// It fails with platform.ErrArchivedProduct for archived targets and
// platform.ErrAlreadyLinked when the item is linked to another product;
// unlink first to relink. Emits an aggregation event for the product.
func (h *Handler) Link(ctx context.Context, itemID, productID int, actor string) (*Result, error) {
	product, err := h.storage.Product(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.Status == models.ProductArchived {
		return nil, fmt.Errorf("can't link item %d to product %d: %w",
			itemID, productID, platform.ErrArchivedProduct)
	}

	if err := h.storage.ClaimItem(ctx, itemID, h.workerID); err != nil {
		return nil, err
	}
	defer h.releaseItem(ctx, itemID)

	// Read the item under the claim so validation can't race the
	// matcher or another admin.
	item, err := h.storage.Item(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if item.ProductID != nil && *item.ProductID != productID {
		return nil, fmt.Errorf("item %d is linked to product %d: %w",
			itemID, *item.ProductID, platform.ErrAlreadyLinked)
	}

	if err := item.MatchStatus.ValidateTransition(models.MatchVerified, models.ActorAdmin); err != nil {
		return nil, err
	}

	if err := h.storage.LinkItem(ctx, itemID, productID, models.MatchVerified, nil); err != nil {
		return nil, err
	}

	if err := h.record(ctx, itemID, &productID, models.OverrideLink, actor); err != nil {
		return nil, err
	}

	h.logger.Info().
		Int("itemId", itemID).
		Int("productId", productID).
		Str("actor", actor).
		Msg("item manually linked")

	err = h.publisher.SendAggregateCommand(ctx, commander.AggregateCommand{
		ProductID: productID,
		Reason:    commander.ReasonLinked,
	})
	if err != nil {
		return nil, err
	}

	return h.result(ctx, productID)
}

// Unlink manually detaches a supplier item from its product. The item
// returns to unmatched and an aggregation event is emitted for the old
// product.
func (h *Handler) Unlink(ctx context.Context, itemID int, actor string) (*Result, error) {
	if err := h.storage.ClaimItem(ctx, itemID, h.workerID); err != nil {
		return nil, err
	}
	defer h.releaseItem(ctx, itemID)

	item, err := h.storage.Item(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if item.ProductID == nil {
		return nil, fmt.Errorf("item %d is not linked: %w", itemID, platform.ErrNotFound)
	}
	oldProductID := *item.ProductID

	if err := item.MatchStatus.ValidateTransition(models.MatchUnmatched, models.ActorAdmin); err != nil {
		return nil, err
	}

	if err := h.storage.UnlinkItem(ctx, itemID, models.MatchUnmatched); err != nil {
		return nil, err
	}

	if err := h.record(ctx, itemID, &oldProductID, models.OverrideUnlink, actor); err != nil {
		return nil, err
	}

	h.logger.Info().
		Int("itemId", itemID).
		Int("productId", oldProductID).
		Str("actor", actor).
		Msg("item manually unlinked")

	err = h.publisher.SendAggregateCommand(ctx, commander.AggregateCommand{
		ProductID: oldProductID,
		Reason:    commander.ReasonUnlinked,
	})
	if err != nil {
		return nil, err
	}

	return h.result(ctx, oldProductID)
}

// ResetVerified reverts a verified match back to unmatched so automatic
// matching may pick the item up again. Admin-only; no other actor can
// leave the verified state.
func (h *Handler) ResetVerified(ctx context.Context, itemID int, actor string) error {
	if err := h.storage.ClaimItem(ctx, itemID, h.workerID); err != nil {
		return err
	}
	defer h.releaseItem(ctx, itemID)

	item, err := h.storage.Item(ctx, itemID)
	if err != nil {
		return err
	}

	if err := item.MatchStatus.ValidateTransition(models.MatchUnmatched, models.ActorAdmin); err != nil {
		return err
	}

	oldProductID := item.ProductID

	if err := h.storage.UnlinkItem(ctx, itemID, models.MatchUnmatched); err != nil {
		return err
	}

	if err := h.record(ctx, itemID, oldProductID, models.OverrideReset, actor); err != nil {
		return err
	}

	h.logger.Info().
		Int("itemId", itemID).
		Str("actor", actor).
		Msg("verified match reset")

	if oldProductID == nil {
		return nil
	}

	return h.publisher.SendAggregateCommand(ctx, commander.AggregateCommand{
		ProductID: *oldProductID,
		Reason:    commander.ReasonUnlinked,
	})
}

func (h *Handler) record(ctx context.Context, itemID int, productID *int, action models.OverrideAction, actor string) error {
	return h.storage.RecordOverride(ctx, models.OverrideRecord{
		SupplierItemID: itemID,
		ProductID:      productID,
		Action:         action,
		Actor:          actor,
	})
}

func (h *Handler) result(ctx context.Context, productID int) (*Result, error) {
	product, err := h.storage.Product(ctx, productID)
	if err != nil {
		return nil, err
	}

	items, err := h.storage.LinkedItems(ctx, productID)
	if err != nil {
		return nil, err
	}

	return &Result{
		Product:     *product,
		LinkedItems: items,
	}, nil
}

func (h *Handler) releaseItem(ctx context.Context, itemID int) {
	if err := h.storage.ReleaseItem(ctx, itemID, h.workerID); err != nil {
		h.logger.Error().
			Err(err).
			Int("itemId", itemID).
			Msg("can't release item claim")
	}
}
