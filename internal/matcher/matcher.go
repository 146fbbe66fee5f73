package matcher

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pricegrid/catalog-linker/internal/platform"
	"github.com/pricegrid/catalog-linker/internal/platform/metrics"
	"github.com/pricegrid/catalog-linker/internal/platform/models"
	"github.com/pricegrid/catalog-linker/pkg/v1/commander"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Storage --filename storage.go
//go:generate mockery --name Enricher --filename enricher.go
//go:generate mockery --name Publisher --filename publisher.go

// Storage is products, supplier items and review entries storage.
type Storage interface {
	// Item returns supplier item by ID.
	Item(ctx context.Context, itemID int) (*models.SupplierItem, error)
	// ClaimItem exclusively acquires the item for workerID.
	// It returns platform.ErrClaimed on contention.
	ClaimItem(ctx context.Context, itemID int, workerID string) error
	// ReleaseItem releases a claim held by workerID.
	ReleaseItem(ctx context.Context, itemID int, workerID string) error
	// SaveItemAttributes persists the item's merged attribute map.
	SaveItemAttributes(ctx context.Context, itemID int, attrs map[string]string) error
	// SetItemStatus updates the item's match status and score without linking.
	SetItemStatus(ctx context.Context, itemID int, status models.MatchStatus, score *float64) error
	// OpenReviewEntry returns the item's open (pending or needs_category)
	// review entry. It returns platform.ErrNotFound when there is none.
	OpenReviewEntry(ctx context.Context, itemID int) (*models.ReviewEntry, error)
	// CandidateProducts returns candidate products, blocked to a category
	// when categoryID is not nil.
	CandidateProducts(ctx context.Context, categoryID *int) ([]models.Product, error)
	// LinkItem links the item to a product with status and score.
	LinkItem(ctx context.Context, itemID int, productID int, status models.MatchStatus, score *float64) error
	// CreateProduct inserts a new product.
	CreateProduct(ctx context.Context, product models.Product) (*models.Product, error)
	// CreateReviewEntry inserts a new review queue entry.
	CreateReviewEntry(ctx context.Context, entry models.ReviewEntry) (*models.ReviewEntry, error)
}

// Enricher merges extracted attributes into the item.
type Enricher interface {
	Enrich(item *models.SupplierItem) bool
}

// Publisher publishes aggregation events.
type Publisher interface {
	SendAggregateCommand(ctx context.Context, cmd commander.AggregateCommand) error
}

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

// Outcome is the kind of decision the matcher made for an item.
type Outcome string

// Matcher decision outcomes.
const (
	OutcomeSkipped       Outcome = "skipped"
	OutcomeYielded       Outcome = "yielded"
	OutcomeAutoLinked    Outcome = "auto_linked"
	OutcomeReview        Outcome = "review"
	OutcomeNewProduct    Outcome = "new_product"
	OutcomeNeedsCategory Outcome = "needs_category"
)

// Decision describes what the matcher did with an item.
type Decision struct {
	Outcome    Outcome
	ProductID  int
	Candidates []models.Candidate
}

// Config is matcher decision configuration.
type Config struct {
	// AutoThreshold is the minimal score for automatic linking.
	AutoThreshold float64
	// ReviewThreshold is the minimal score for review queue entries.
	ReviewThreshold float64
	// BlockingEnabled restricts candidates to the item's category.
	BlockingEnabled bool
	// TopCandidates is how many candidates a review entry keeps.
	TopCandidates int
	// ReviewTTL is review entry lifetime before the expiry sweep.
	ReviewTTL time.Duration
}

// Option is custom configuration of Matcher.
type Option func(m *Matcher)

// Matcher claims unmatched supplier items, scores them against
// category-blocked candidate products and decides: auto-link, flag for
// review, or create a new product.
type Matcher struct {
	storage   Storage
	enricher  Enricher
	publisher Publisher
	cfg       Config
	workerID  string
	clock     Clock
	logger    *zerolog.Logger
}

// NewMatcher returns new Matcher identified by workerID for claiming.
func NewMatcher(
	storage Storage,
	enricher Enricher,
	publisher Publisher,
	cfg Config,
	workerID string,
	logger *zerolog.Logger,
	ops ...Option,
) *Matcher {
	m := &Matcher{
		storage:   storage,
		enricher:  enricher,
		publisher: publisher,
		cfg:       cfg,
		workerID:  workerID,
		clock:     systemClock{},
		logger:    logger,
	}

	for _, op := range ops {
		op(m)
	}

	return m
}

// Process matches one supplier item. Items that are not in the unmatched
// status (including verified matches) are skipped; claim contention is a
// silent yield, not an error. Malformed items (empty name) fail with
// platform.ErrEmptyName and must not be retried. With forceNewProduct
// set, candidate scoring is skipped and a new product is created; the
// review queue forces it after an admin rejects every candidate.
func (m *Matcher) Process(ctx context.Context, itemID int, forceNewProduct bool) (Decision, error) {
	item, err := m.storage.Item(ctx, itemID)
	if err != nil {
		return Decision{}, fmt.Errorf("can't load item for matching: %w", err)
	}

	if !item.MatchStatus.Matchable() {
		m.logger.Debug().
			Int("itemId", itemID).
			Str("matchStatus", string(item.MatchStatus)).
			Msg("item not eligible for matching, skipping")
		metrics.MatchDecisions.WithLabelValues(string(OutcomeSkipped)).Inc()
		return Decision{Outcome: OutcomeSkipped}, nil
	}

	if err := m.storage.ClaimItem(ctx, itemID, m.workerID); err != nil {
		if errors.Is(err, platform.ErrClaimed) {
			metrics.ClaimConflicts.Inc()
			m.logger.Debug().
				Int("itemId", itemID).
				Msg("item claimed by another worker, yielding")
			return Decision{Outcome: OutcomeYielded}, nil
		}
		return Decision{}, fmt.Errorf("can't claim item: %w", err)
	}

	defer func() {
		if err := m.storage.ReleaseItem(ctx, itemID, m.workerID); err != nil {
			m.logger.Error().
				Err(err).
				Int("itemId", itemID).
				Msg("can't release item claim")
		}
	}()

	// The first read happened before the claim. An admin may have
	// verified or linked the item in between, so reload and re-check
	// now that the claim serializes writers.
	item, err = m.storage.Item(ctx, itemID)
	if err != nil {
		return Decision{}, fmt.Errorf("can't reload claimed item: %w", err)
	}

	if !item.MatchStatus.Matchable() {
		m.logger.Debug().
			Int("itemId", itemID).
			Str("matchStatus", string(item.MatchStatus)).
			Msg("item status changed before the claim, skipping")
		metrics.MatchDecisions.WithLabelValues(string(OutcomeSkipped)).Inc()
		return Decision{Outcome: OutcomeSkipped}, nil
	}

	decision, err := m.decide(ctx, item, forceNewProduct)
	if err != nil {
		return Decision{}, err
	}

	metrics.MatchDecisions.WithLabelValues(string(decision.Outcome)).Inc()

	return decision, nil
}

func (m *Matcher) decide(ctx context.Context, item *models.SupplierItem, forceNewProduct bool) (Decision, error) {
	if strings.TrimSpace(item.Name) == "" {
		return Decision{}, fmt.Errorf("can't match item %d: %w", item.ID, platform.ErrEmptyName)
	}

	if m.enricher.Enrich(item) {
		if err := m.storage.SaveItemAttributes(ctx, item.ID, item.Attributes); err != nil {
			return Decision{}, fmt.Errorf("can't save enriched attributes: %w", err)
		}
	}

	// Never fall back to a full-catalog scan for uncategorized items.
	if item.CategoryID == nil {
		return m.flagNeedsCategory(ctx, item)
	}

	// An admin rejected every candidate; re-scoring would only file the
	// same review entry again.
	if forceNewProduct {
		return m.createProduct(ctx, item)
	}

	var blockCategory *int
	if m.cfg.BlockingEnabled {
		blockCategory = item.CategoryID
	}

	candidates, err := m.storage.CandidateProducts(ctx, blockCategory)
	if err != nil {
		return Decision{}, fmt.Errorf("can't load candidate products: %w", err)
	}

	scored := m.scoreCandidates(item, candidates)

	if len(scored) > 0 && scored[0].Score >= m.cfg.AutoThreshold {
		return m.autoLink(ctx, item, scored[0])
	}

	if len(scored) > 0 && scored[0].Score >= m.cfg.ReviewThreshold {
		return m.flagForReview(ctx, item, scored)
	}

	return m.createProduct(ctx, item)
}

// scoreCandidates scores the item name against every candidate and sorts
// by score. Candidates arrive ordered by creation time, and the sort is
// stable, so the oldest product wins score ties.
func (m *Matcher) scoreCandidates(item *models.SupplierItem, products []models.Product) []models.Candidate {
	scored := make([]models.Candidate, 0, len(products))
	for ix := range products {
		scored = append(scored, models.Candidate{
			ProductID:   products[ix].ID,
			ProductName: products[ix].Name,
			Score:       Score(item.Name, products[ix].Name),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

func (m *Matcher) autoLink(ctx context.Context, item *models.SupplierItem, best models.Candidate) (Decision, error) {
	err := m.storage.LinkItem(ctx, item.ID, best.ProductID, models.MatchAuto, &best.Score)
	if err != nil {
		return Decision{}, fmt.Errorf("can't auto-link item: %w", err)
	}

	m.logger.Info().
		Int("itemId", item.ID).
		Int("productId", best.ProductID).
		Float64("score", best.Score).
		Msg("item auto-linked")

	err = m.publisher.SendAggregateCommand(ctx, commander.AggregateCommand{
		ProductID: best.ProductID,
		Reason:    commander.ReasonLinked,
	})
	if err != nil {
		return Decision{}, fmt.Errorf("can't publish aggregation event: %w", err)
	}

	return Decision{Outcome: OutcomeAutoLinked, ProductID: best.ProductID}, nil
}

func (m *Matcher) flagForReview(ctx context.Context, item *models.SupplierItem, scored []models.Candidate) (Decision, error) {
	top := scored
	if m.cfg.TopCandidates > 0 && len(top) > m.cfg.TopCandidates {
		top = top[:m.cfg.TopCandidates]
	}

	// A retry after a partial failure may find the entry already filed.
	entry, err := m.storage.OpenReviewEntry(ctx, item.ID)
	if errors.Is(err, platform.ErrNotFound) {
		entry, err = m.storage.CreateReviewEntry(ctx, models.ReviewEntry{
			SupplierItemID: item.ID,
			Candidates:     top,
			Status:         models.ReviewPending,
			ExpiresAt:      m.clock.Now().Add(m.cfg.ReviewTTL),
		})
	}
	if err != nil {
		return Decision{}, fmt.Errorf("can't create review entry: %w", err)
	}

	if err := m.storage.SetItemStatus(ctx, item.ID, models.MatchPotential, &top[0].Score); err != nil {
		return Decision{}, fmt.Errorf("can't mark item as potential match: %w", err)
	}

	m.logger.Info().
		Int("itemId", item.ID).
		Int("reviewEntryId", entry.ID).
		Float64("bestScore", top[0].Score).
		Int("candidates", len(top)).
		Msg("item flagged for review")

	return Decision{Outcome: OutcomeReview, Candidates: top}, nil
}

func (m *Matcher) flagNeedsCategory(ctx context.Context, item *models.SupplierItem) (Decision, error) {
	entry, err := m.storage.OpenReviewEntry(ctx, item.ID)
	if errors.Is(err, platform.ErrNotFound) {
		entry, err = m.storage.CreateReviewEntry(ctx, models.ReviewEntry{
			SupplierItemID: item.ID,
			Status:         models.ReviewNeedsCategory,
			ExpiresAt:      m.clock.Now().Add(m.cfg.ReviewTTL),
		})
	}
	if err != nil {
		return Decision{}, fmt.Errorf("can't create needs-category review entry: %w", err)
	}

	m.logger.Info().
		Int("itemId", item.ID).
		Int("reviewEntryId", entry.ID).
		Msg("item has no category, waiting for admin")

	return Decision{Outcome: OutcomeNeedsCategory}, nil
}

func (m *Matcher) createProduct(ctx context.Context, item *models.SupplierItem) (Decision, error) {
	product, err := m.storage.CreateProduct(ctx, models.Product{
		Name:       item.Name,
		Status:     models.ProductDraft,
		CategoryID: item.CategoryID,
	})
	if err != nil {
		return Decision{}, fmt.Errorf("can't create product: %w", err)
	}

	if err := m.storage.LinkItem(ctx, item.ID, product.ID, models.MatchAuto, nil); err != nil {
		return Decision{}, fmt.Errorf("can't link item to new product: %w", err)
	}

	m.logger.Info().
		Int("itemId", item.ID).
		Int("productId", product.ID).
		Msg("no good candidates, created new draft product")

	err = m.publisher.SendAggregateCommand(ctx, commander.AggregateCommand{
		ProductID: product.ID,
		Reason:    commander.ReasonLinked,
	})
	if err != nil {
		return Decision{}, fmt.Errorf("can't publish aggregation event: %w", err)
	}

	return Decision{Outcome: OutcomeNewProduct, ProductID: product.ID}, nil
}

// WithClock sets Matcher's custom Clock.
func WithClock(c Clock) Option {
	return func(m *Matcher) {
		m.clock = c
	}
}
