package modelstesting

import (
	"math/rand"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/pricegrid/catalog-linker/internal/platform/models"
	"github.com/samber/lo"
)

// FakeItem returns unmatched models.SupplierItem with fake data.
func FakeItem(ops ...func(i *models.SupplierItem)) models.SupplierItem {
	item := models.SupplierItem{
		ID:           rand.Intn(100000) + 1,
		SupplierID:   rand.Intn(1000) + 1,
		CategoryID:   lo.ToPtr(rand.Intn(100) + 1),
		Name:         faker.Sentence(),
		Description:  faker.Sentence(),
		CurrentPrice: float64(rand.Intn(100000)) / 100,
		InStock:      lo.ToPtr(true),
		Attributes:   map[string]string{},
		MatchStatus:  models.MatchUnmatched,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	for _, op := range ops {
		op(&item)
	}

	return item
}

// FakeProduct returns active models.Product with fake data.
func FakeProduct(ops ...func(p *models.Product)) models.Product {
	product := models.Product{
		ID:         rand.Intn(100000) + 1,
		Name:       faker.Sentence(),
		Status:     models.ProductActive,
		CategoryID: lo.ToPtr(rand.Intn(100) + 1),
		CreatedAt:  time.Now().UTC(),
	}

	for _, op := range ops {
		op(&product)
	}

	return product
}

// FakeCandidate returns models.Candidate with fake data.
func FakeCandidate(ops ...func(c *models.Candidate)) models.Candidate {
	candidate := models.Candidate{
		ProductID:   rand.Intn(100000) + 1,
		ProductName: faker.Sentence(),
		Score:       float64(rand.Intn(10000)) / 100,
	}

	for _, op := range ops {
		op(&candidate)
	}

	return candidate
}

// FakeReviewEntry returns pending models.ReviewEntry with random
// number of fake candidates.
func FakeReviewEntry(ops ...func(e *models.ReviewEntry)) models.ReviewEntry {
	entry := models.ReviewEntry{
		ID:             rand.Intn(100000) + 1,
		SupplierItemID: rand.Intn(100000) + 1,
		Candidates:     fakeCandidates(),
		Status:         models.ReviewPending,
		CreatedAt:      time.Now().UTC(),
		ExpiresAt:      time.Now().UTC().Add(30 * 24 * time.Hour),
	}

	for _, op := range ops {
		op(&entry)
	}

	return entry
}

func fakeCandidates() []models.Candidate {
	candidatesLen := rand.Intn(4) + 1
	candidates := make([]models.Candidate, 0, candidatesLen)
	for i := 0; i < candidatesLen; i++ {
		candidates = append(candidates, FakeCandidate())
	}

	return candidates
}
