package review_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/pricegrid/catalog-linker/internal/platform"
	"github.com/pricegrid/catalog-linker/internal/platform/models"
	"github.com/pricegrid/catalog-linker/internal/platform/models/modelstesting"
	"github.com/pricegrid/catalog-linker/internal/review"
	"github.com/pricegrid/catalog-linker/internal/review/mocks"
	"github.com/pricegrid/catalog-linker/pkg/v1/commander"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(storage *mocks.Storage, publisher *mocks.Publisher, workerID string) *review.Service {
	logger := zerolog.Nop()
	return review.NewService(storage, publisher, workerID, &logger)
}

func TestUnitApprove(t *testing.T) {
	workerID := faker.Word()
	reviewer := faker.Username()
	item := modelstesting.FakeItem(func(i *models.SupplierItem) {
		i.MatchStatus = models.MatchPotential
	})
	entry := modelstesting.FakeReviewEntry(func(e *models.ReviewEntry) {
		e.SupplierItemID = item.ID
	})
	chosen := entry.Candidates[0]

	storage := mocks.NewStorage(t)
	publisher := mocks.NewPublisher(t)

	storage.On("ReviewEntry", mock.Anything, entry.ID).Return(&entry, nil)
	storage.On("Item", mock.Anything, item.ID).Return(&item, nil)
	storage.On("ClaimItem", mock.Anything, item.ID, workerID).Return(nil)
	storage.On("LinkItem", mock.Anything, item.ID, chosen.ProductID, models.MatchVerified, &chosen.Score).
		Return(nil)
	storage.On("UpdateReviewStatus", mock.Anything, entry.ID, models.ReviewPending, models.ReviewApproved, &reviewer).
		Return(nil)
	publisher.On("SendAggregateCommand", mock.Anything, commander.AggregateCommand{
		ProductID: chosen.ProductID,
		Reason:    commander.ReasonLinked,
	}).Return(nil)
	storage.On("ReleaseItem", mock.Anything, item.ID, workerID).Return(nil)

	svc := newService(storage, publisher, workerID)

	err := svc.Approve(context.TODO(), entry.ID, chosen.ProductID, reviewer)

	require.NoError(t, err, "shouldn't return any error")
}

func TestUnitApproveUnknownCandidate(t *testing.T) {
	workerID := faker.Word()
	entry := modelstesting.FakeReviewEntry()
	unknownProductID := -1

	storage := mocks.NewStorage(t)
	publisher := mocks.NewPublisher(t)

	storage.On("ReviewEntry", mock.Anything, entry.ID).Return(&entry, nil)

	svc := newService(storage, publisher, workerID)

	err := svc.Approve(context.TODO(), entry.ID, unknownProductID, faker.Username())

	require.ErrorIs(t, err, platform.ErrNotFound, "approving a non-candidate product should fail")
	storage.AssertNotCalled(t, "LinkItem",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUnitApproveTerminalEntry(t *testing.T) {
	workerID := faker.Word()
	entry := modelstesting.FakeReviewEntry(func(e *models.ReviewEntry) {
		e.Status = models.ReviewExpired
	})

	storage := mocks.NewStorage(t)
	publisher := mocks.NewPublisher(t)

	storage.On("ReviewEntry", mock.Anything, entry.ID).Return(&entry, nil)

	svc := newService(storage, publisher, workerID)

	err := svc.Approve(context.TODO(), entry.ID, entry.Candidates[0].ProductID, faker.Username())

	require.ErrorIs(t, err, platform.ErrInvalidTransition, "expired entries should reject decisions")
}

func TestUnitApproveClaimConflict(t *testing.T) {
	workerID := faker.Word()
	item := modelstesting.FakeItem(func(i *models.SupplierItem) {
		i.MatchStatus = models.MatchPotential
	})
	entry := modelstesting.FakeReviewEntry(func(e *models.ReviewEntry) {
		e.SupplierItemID = item.ID
	})

	storage := mocks.NewStorage(t)
	publisher := mocks.NewPublisher(t)

	storage.On("ReviewEntry", mock.Anything, entry.ID).Return(&entry, nil)
	storage.On("ClaimItem", mock.Anything, item.ID, workerID).Return(platform.ErrClaimed)

	svc := newService(storage, publisher, workerID)

	err := svc.Approve(context.TODO(), entry.ID, entry.Candidates[0].ProductID, faker.Username())

	require.ErrorIs(t, err, platform.ErrClaimed, "should surface the claim conflict")
}

func TestUnitApproveItemVerifiedConcurrently(t *testing.T) {
	workerID := faker.Word()
	item := modelstesting.FakeItem(func(i *models.SupplierItem) {
		i.MatchStatus = models.MatchVerified
	})
	entry := modelstesting.FakeReviewEntry(func(e *models.ReviewEntry) {
		e.SupplierItemID = item.ID
	})

	storage := mocks.NewStorage(t)
	publisher := mocks.NewPublisher(t)

	// an override verified the item before the claim was taken
	storage.On("ReviewEntry", mock.Anything, entry.ID).Return(&entry, nil)
	storage.On("ClaimItem", mock.Anything, item.ID, workerID).Return(nil)
	storage.On("Item", mock.Anything, item.ID).Return(&item, nil)
	storage.On("ReleaseItem", mock.Anything, item.ID, workerID).Return(nil)

	svc := newService(storage, publisher, workerID)

	err := svc.Approve(context.TODO(), entry.ID, entry.Candidates[0].ProductID, faker.Username())

	require.ErrorIs(t, err, platform.ErrInvalidTransition,
		"already verified items shouldn't be re-linked by an approval")
	storage.AssertNotCalled(t, "LinkItem",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUnitReject(t *testing.T) {
	workerID := faker.Word()
	reviewer := faker.Username()
	item := modelstesting.FakeItem(func(i *models.SupplierItem) {
		i.MatchStatus = models.MatchPotential
	})
	entry := modelstesting.FakeReviewEntry(func(e *models.ReviewEntry) {
		e.SupplierItemID = item.ID
	})

	storage := mocks.NewStorage(t)
	publisher := mocks.NewPublisher(t)

	storage.On("ReviewEntry", mock.Anything, entry.ID).Return(&entry, nil)
	storage.On("Item", mock.Anything, item.ID).Return(&item, nil)
	storage.On("ClaimItem", mock.Anything, item.ID, workerID).Return(nil)
	storage.On("SetItemStatus", mock.Anything, item.ID, models.MatchUnmatched, (*float64)(nil)).Return(nil)
	storage.On("UpdateReviewStatus", mock.Anything, entry.ID, models.ReviewPending, models.ReviewRejected, &reviewer).
		Return(nil)
	publisher.On("SendMatchCommand", mock.Anything, commander.MatchCommand{
		SupplierItemID:  item.ID,
		ForceNewProduct: true,
	}).Return(nil)
	storage.On("ReleaseItem", mock.Anything, item.ID, workerID).Return(nil)

	svc := newService(storage, publisher, workerID)

	err := svc.Reject(context.TODO(), entry.ID, reviewer)

	require.NoError(t, err, "shouldn't return any error")
	publisher.AssertCalled(t, "SendMatchCommand", mock.Anything, commander.MatchCommand{
		SupplierItemID:  item.ID,
		ForceNewProduct: true,
	})
}

func TestUnitAssignCategory(t *testing.T) {
	workerID := faker.Word()
	reviewer := faker.Username()
	categoryID := 42
	entry := modelstesting.FakeReviewEntry(func(e *models.ReviewEntry) {
		e.Status = models.ReviewNeedsCategory
		e.Candidates = nil
	})

	storage := mocks.NewStorage(t)
	publisher := mocks.NewPublisher(t)

	storage.On("ReviewEntry", mock.Anything, entry.ID).Return(&entry, nil)
	storage.On("SetItemCategory", mock.Anything, entry.SupplierItemID, categoryID).Return(nil)
	storage.On("UpdateReviewStatus",
		mock.Anything, entry.ID, models.ReviewNeedsCategory, models.ReviewPending, &reviewer).
		Return(nil)
	publisher.On("SendMatchCommand", mock.Anything, commander.MatchCommand{SupplierItemID: entry.SupplierItemID}).
		Return(nil)

	svc := newService(storage, publisher, workerID)

	err := svc.AssignCategory(context.TODO(), entry.ID, categoryID, reviewer)

	require.NoError(t, err, "shouldn't return any error")
}

func TestUnitAssignCategoryOnPendingEntry(t *testing.T) {
	workerID := faker.Word()
	entry := modelstesting.FakeReviewEntry()

	storage := mocks.NewStorage(t)
	publisher := mocks.NewPublisher(t)

	storage.On("ReviewEntry", mock.Anything, entry.ID).Return(&entry, nil)

	svc := newService(storage, publisher, workerID)

	err := svc.AssignCategory(context.TODO(), entry.ID, 42, faker.Username())

	require.ErrorIs(t, err, platform.ErrInvalidTransition,
		"assigning a category only applies to needs-category entries")
}

func TestUnitList(t *testing.T) {
	workerID := faker.Word()
	entries := []models.ReviewEntry{modelstesting.FakeReviewEntry(), modelstesting.FakeReviewEntry()}
	filter := models.ReviewFilter{Limit: 10}

	storage := mocks.NewStorage(t)
	publisher := mocks.NewPublisher(t)

	storage.On("ListReviewEntries", mock.Anything, filter).Return(entries, nil)

	svc := newService(storage, publisher, workerID)

	got, err := svc.List(context.TODO(), filter)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, entries, got, "should return entries from storage")
}

func TestUnitExpireStale(t *testing.T) {
	workerID := faker.Word()
	now := time.Now().UTC()

	tests := map[string]struct {
		expired      int
		storageError error
		wantErr      error
	}{
		"some expired": {expired: 3},
		"none expired": {expired: 0},
		"storage error": {
			storageError: assert.AnError,
			wantErr:      assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			storage := mocks.NewStorage(t)
			publisher := mocks.NewPublisher(t)

			storage.On("ExpireStaleEntries", mock.Anything, now).Return(tt.expired, tt.storageError)

			svc := newService(storage, publisher, workerID)

			expired, err := svc.ExpireStale(context.TODO(), now)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			if tt.wantErr == nil {
				assert.Equal(t, tt.expired, expired, "should return number of expired entries")
			}
		})
	}
}
