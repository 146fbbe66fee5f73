package models

import "time"

// ProductStatus is product lifecycle status.
type ProductStatus string

// Product lifecycle statuses.
const (
	ProductDraft    ProductStatus = "draft"
	ProductActive   ProductStatus = "active"
	ProductArchived ProductStatus = "archived"
)

// Product is unified catalog entry model.
// MinPrice and IsAvailable are derived fields owned by the aggregator.
type Product struct {
	ID             int
	Name           string
	Status         ProductStatus
	CategoryID     *int
	MinPrice       *float64
	IsAvailable    bool
	ReferencePrice *float64
	CreatedAt      time.Time
}

// SupplierItem is one supplier's record for a physical good.
// Core fields are owned by ingestion, match fields by the matcher
// and the override handler. An item links to at most one product.
type SupplierItem struct {
	ID           int
	SupplierID   int
	CategoryID   *int
	Name         string
	Description  string
	CurrentPrice float64
	InStock      *bool
	Attributes   map[string]string
	MatchStatus  MatchStatus
	MatchScore   *float64
	ProductID    *int
	ClaimedAt    *time.Time
	ClaimedBy    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Candidate is a scored match candidate for a supplier item.
type Candidate struct {
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName"`
	Score       float64 `json:"score"`
}

// ReviewEntry is a pending human match decision. Entries are kept
// for audit and never deleted.
type ReviewEntry struct {
	ID             int
	SupplierItemID int
	Candidates     []Candidate
	Status         ReviewStatus
	ReviewedBy     *string
	ReviewedAt     *time.Time
	CreatedAt      time.Time
	ExpiresAt      time.Time
}

// OverrideAction is type of manual override.
type OverrideAction string

// Override actions.
const (
	OverrideLink   OverrideAction = "link"
	OverrideUnlink OverrideAction = "unlink"
	OverrideReset  OverrideAction = "reset"
)

// OverrideRecord is audit trail of one manual override action.
type OverrideRecord struct {
	ID             int
	SupplierItemID int
	ProductID      *int
	Action         OverrideAction
	Actor          string
	CreatedAt      time.Time
}

// ReviewFilter filters review entries listing.
type ReviewFilter struct {
	Status     *ReviewStatus
	CategoryID *int
	MinScore   *float64
	MaxScore   *float64
	Limit      int
	Offset     int
}
