// Package review implements the review queue: supplier items whose match
// confidence was ambiguous wait here for an admin decision. Entries are
// kept for audit and never deleted.
package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pricegrid/catalog-linker/internal/platform"
	"github.com/pricegrid/catalog-linker/internal/platform/metrics"
	"github.com/pricegrid/catalog-linker/internal/platform/models"
	"github.com/pricegrid/catalog-linker/pkg/v1/commander"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Publisher --filename publisher.go

// Storage is review entries and supplier items storage.
type Storage interface {
	// ReviewEntry returns review entry by ID.
	ReviewEntry(ctx context.Context, entryID int) (*models.ReviewEntry, error)
	// ListReviewEntries returns a page of review entries matching the filter.
	ListReviewEntries(ctx context.Context, filter models.ReviewFilter) ([]models.ReviewEntry, error)
	// UpdateReviewStatus moves an entry from one status to another.
	UpdateReviewStatus(ctx context.Context, entryID int, from, to models.ReviewStatus, reviewer *string) error
	// ExpireStaleEntries expires entries past their expiry time.
	ExpireStaleEntries(ctx context.Context, now time.Time) (int, error)
	// Item returns supplier item by ID.
	Item(ctx context.Context, itemID int) (*models.SupplierItem, error)
	// ClaimItem exclusively acquires the item for workerID.
	ClaimItem(ctx context.Context, itemID int, workerID string) error
	// ReleaseItem releases a claim held by workerID.
	ReleaseItem(ctx context.Context, itemID int, workerID string) error
	// LinkItem links the item to a product with status and score.
	LinkItem(ctx context.Context, itemID int, productID int, status models.MatchStatus, score *float64) error
	// SetItemStatus updates the item's match status and score.
	SetItemStatus(ctx context.Context, itemID int, status models.MatchStatus, score *float64) error
	// SetItemCategory assigns a category to the item.
	SetItemCategory(ctx context.Context, itemID int, categoryID int) error
}

// Publisher publishes pipeline commands.
type Publisher interface {
	SendMatchCommand(ctx context.Context, cmd commander.MatchCommand) error
	SendAggregateCommand(ctx context.Context, cmd commander.AggregateCommand) error
}

// Service handles admin decisions on review entries.
type Service struct {
	storage   Storage
	publisher Publisher
	workerID  string
	logger    *zerolog.Logger
}

// NewService returns new review Service identified by workerID for claiming.
func NewService(storage Storage, publisher Publisher, workerID string, logger *zerolog.Logger) *Service {
	return &Service{
		storage:   storage,
		publisher: publisher,
		workerID:  workerID,
		logger:    logger,
	}
}

// List returns a page of review entries matching the filter.
func (s *Service) List(ctx context.Context, filter models.ReviewFilter) ([]models.ReviewEntry, error) {
	return s.storage.ListReviewEntries(ctx, filter)
}

// Approve links the entry's supplier item to the chosen candidate as a
// verified match and emits an aggregation event. The chosen product must
// be one of the entry's candidates.
func (s *Service) Approve(ctx context.Context, entryID int, productID int, reviewer string) error {
	entry, err := s.storage.ReviewEntry(ctx, entryID)
	if err != nil {
		return err
	}

	if err := entry.Status.ValidateTransition(models.ReviewApproved); err != nil {
		return err
	}

	candidate, found := lo.Find(entry.Candidates, func(c models.Candidate) bool {
		return c.ProductID == productID
	})
	if !found {
		return fmt.Errorf("product %d is not a candidate of entry %d: %w",
			productID, entryID, platform.ErrNotFound)
	}

	if err := s.storage.ClaimItem(ctx, entry.SupplierItemID, s.workerID); err != nil {
		return err
	}
	defer s.releaseItem(ctx, entry.SupplierItemID)

	// Read the item under the claim so the transition check can't race
	// a concurrent override.
	item, err := s.storage.Item(ctx, entry.SupplierItemID)
	if err != nil {
		return err
	}

	if err := item.MatchStatus.ValidateTransition(models.MatchVerified, models.ActorAdmin); err != nil {
		return err
	}

	if err := s.storage.LinkItem(ctx, item.ID, productID, models.MatchVerified, &candidate.Score); err != nil {
		return err
	}

	err = s.storage.UpdateReviewStatus(ctx, entryID, entry.Status, models.ReviewApproved, &reviewer)
	if err != nil {
		return err
	}

	s.logger.Info().
		Int("reviewEntryId", entryID).
		Int("itemId", item.ID).
		Int("productId", productID).
		Str("reviewer", reviewer).
		Msg("review entry approved")

	return s.publisher.SendAggregateCommand(ctx, commander.AggregateCommand{
		ProductID: productID,
		Reason:    commander.ReasonLinked,
	})
}

// Reject rejects all candidates of the entry. The supplier item returns
// to unmatched and is re-enqueued, so the next matcher pass creates a new
// product for it.
func (s *Service) Reject(ctx context.Context, entryID int, reviewer string) error {
	entry, err := s.storage.ReviewEntry(ctx, entryID)
	if err != nil {
		return err
	}

	if err := entry.Status.ValidateTransition(models.ReviewRejected); err != nil {
		return err
	}

	if err := s.storage.ClaimItem(ctx, entry.SupplierItemID, s.workerID); err != nil {
		return err
	}
	defer s.releaseItem(ctx, entry.SupplierItemID)

	item, err := s.storage.Item(ctx, entry.SupplierItemID)
	if err != nil {
		return err
	}

	if err := item.MatchStatus.ValidateTransition(models.MatchUnmatched, models.ActorAdmin); err != nil {
		return err
	}

	if err := s.storage.SetItemStatus(ctx, item.ID, models.MatchUnmatched, nil); err != nil {
		return err
	}

	err = s.storage.UpdateReviewStatus(ctx, entryID, entry.Status, models.ReviewRejected, &reviewer)
	if err != nil {
		return err
	}

	s.logger.Info().
		Int("reviewEntryId", entryID).
		Int("itemId", item.ID).
		Str("reviewer", reviewer).
		Msg("review entry rejected")

	// A plain re-match would score the same candidates into the review
	// band again; the admin already said no to all of them.
	return s.publisher.SendMatchCommand(ctx, commander.MatchCommand{
		SupplierItemID:  item.ID,
		ForceNewProduct: true,
	})
}

// AssignCategory resolves a needs_category entry: the item gets the
// category, the entry re-enters pending and the item is re-enqueued for
// matching.
func (s *Service) AssignCategory(ctx context.Context, entryID int, categoryID int, reviewer string) error {
	entry, err := s.storage.ReviewEntry(ctx, entryID)
	if err != nil {
		return err
	}

	if err := entry.Status.ValidateTransition(models.ReviewPending); err != nil {
		return err
	}

	if err := s.storage.SetItemCategory(ctx, entry.SupplierItemID, categoryID); err != nil {
		return err
	}

	err = s.storage.UpdateReviewStatus(ctx, entryID, entry.Status, models.ReviewPending, &reviewer)
	if err != nil {
		return err
	}

	s.logger.Info().
		Int("reviewEntryId", entryID).
		Int("itemId", entry.SupplierItemID).
		Int("categoryId", categoryID).
		Str("reviewer", reviewer).
		Msg("category assigned to review entry item")

	return s.publisher.SendMatchCommand(ctx, commander.MatchCommand{SupplierItemID: entry.SupplierItemID})
}

// ExpireStale expires entries whose TTL has passed without admin action.
func (s *Service) ExpireStale(ctx context.Context, now time.Time) (int, error) {
	expired, err := s.storage.ExpireStaleEntries(ctx, now)
	if err != nil {
		return 0, err
	}

	if expired > 0 {
		metrics.ReviewEntriesExpired.Add(float64(expired))
		s.logger.Info().
			Int("expired", expired).
			Msg("stale review entries expired")
	}

	return expired, nil
}

func (s *Service) releaseItem(ctx context.Context, itemID int) {
	if err := s.storage.ReleaseItem(ctx, itemID, s.workerID); err != nil {
		s.logger.Error().
			Err(err).
			Int("itemId", itemID).
			Msg("can't release item claim")
	}
}

// Sweep runs ExpireStale on every tick until the context is closed.
func (s *Service) Sweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if _, err := s.ExpireStale(ctx, now.UTC()); err != nil && !errors.Is(err, context.Canceled) {
				s.logger.Error().
					Err(err).
					Msg("can't expire stale review entries")
			}
		}
	}
}
