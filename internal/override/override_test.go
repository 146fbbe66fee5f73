package override_test

import (
	"context"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/pricegrid/catalog-linker/internal/override"
	"github.com/pricegrid/catalog-linker/internal/override/mocks"
	"github.com/pricegrid/catalog-linker/internal/platform"
	"github.com/pricegrid/catalog-linker/internal/platform/models"
	"github.com/pricegrid/catalog-linker/internal/platform/models/modelstesting"
	"github.com/pricegrid/catalog-linker/pkg/v1/commander"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newHandler(storage *mocks.Storage, publisher *mocks.Publisher, workerID string) *override.Handler {
	logger := zerolog.Nop()
	return override.NewHandler(storage, publisher, workerID, &logger)
}

func TestUnitLink(t *testing.T) {
	workerID := faker.Word()
	actor := faker.Username()
	product := modelstesting.FakeProduct()
	item := modelstesting.FakeItem()
	linked := []models.SupplierItem{item}

	storage := mocks.NewStorage(t)
	publisher := mocks.NewPublisher(t)

	storage.On("Product", mock.Anything, product.ID).Return(&product, nil)
	storage.On("Item", mock.Anything, item.ID).Return(&item, nil)
	storage.On("ClaimItem", mock.Anything, item.ID, workerID).Return(nil)
	storage.On("LinkItem", mock.Anything, item.ID, product.ID, models.MatchVerified, (*float64)(nil)).
		Return(nil)
	storage.On("RecordOverride", mock.Anything, models.OverrideRecord{
		SupplierItemID: item.ID,
		ProductID:      &product.ID,
		Action:         models.OverrideLink,
		Actor:          actor,
	}).Return(nil)
	publisher.On("SendAggregateCommand", mock.Anything, commander.AggregateCommand{
		ProductID: product.ID,
		Reason:    commander.ReasonLinked,
	}).Return(nil)
	storage.On("LinkedItems", mock.Anything, product.ID).Return(linked, nil)
	storage.On("ReleaseItem", mock.Anything, item.ID, workerID).Return(nil)

	han := newHandler(storage, publisher, workerID)

	result, err := han.Link(context.TODO(), item.ID, product.ID, actor)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, product, result.Product, "result should carry the linked product")
	assert.Equal(t, linked, result.LinkedItems, "result should carry the product's items")
}

func TestUnitLinkArchivedProduct(t *testing.T) {
	workerID := faker.Word()
	product := modelstesting.FakeProduct(func(p *models.Product) {
		p.Status = models.ProductArchived
	})
	item := modelstesting.FakeItem()

	storage := mocks.NewStorage(t)
	publisher := mocks.NewPublisher(t)

	storage.On("Product", mock.Anything, product.ID).Return(&product, nil)

	han := newHandler(storage, publisher, workerID)

	_, err := han.Link(context.TODO(), item.ID, product.ID, faker.Username())

	require.ErrorIs(t, err, platform.ErrArchivedProduct, "linking to archived products should fail")
	storage.AssertNotCalled(t, "LinkItem",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUnitLinkAlreadyLinkedElsewhere(t *testing.T) {
	workerID := faker.Word()
	product := modelstesting.FakeProduct()
	item := modelstesting.FakeItem(func(i *models.SupplierItem) {
		i.MatchStatus = models.MatchVerified
		i.ProductID = lo.ToPtr(product.ID + 1)
	})

	storage := mocks.NewStorage(t)
	publisher := mocks.NewPublisher(t)

	storage.On("Product", mock.Anything, product.ID).Return(&product, nil)
	storage.On("ClaimItem", mock.Anything, item.ID, workerID).Return(nil)
	storage.On("Item", mock.Anything, item.ID).Return(&item, nil)
	storage.On("ReleaseItem", mock.Anything, item.ID, workerID).Return(nil)

	han := newHandler(storage, publisher, workerID)

	_, err := han.Link(context.TODO(), item.ID, product.ID, faker.Username())

	require.ErrorIs(t, err, platform.ErrAlreadyLinked, "items linked elsewhere must be unlinked first")
	storage.AssertNotCalled(t, "LinkItem",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUnitUnlink(t *testing.T) {
	workerID := faker.Word()
	actor := faker.Username()
	product := modelstesting.FakeProduct()
	item := modelstesting.FakeItem(func(i *models.SupplierItem) {
		i.MatchStatus = models.MatchAuto
		i.ProductID = &product.ID
	})

	storage := mocks.NewStorage(t)
	publisher := mocks.NewPublisher(t)

	storage.On("Item", mock.Anything, item.ID).Return(&item, nil)
	storage.On("ClaimItem", mock.Anything, item.ID, workerID).Return(nil)
	storage.On("UnlinkItem", mock.Anything, item.ID, models.MatchUnmatched).Return(nil)
	storage.On("RecordOverride", mock.Anything, models.OverrideRecord{
		SupplierItemID: item.ID,
		ProductID:      &product.ID,
		Action:         models.OverrideUnlink,
		Actor:          actor,
	}).Return(nil)
	publisher.On("SendAggregateCommand", mock.Anything, commander.AggregateCommand{
		ProductID: product.ID,
		Reason:    commander.ReasonUnlinked,
	}).Return(nil)
	storage.On("Product", mock.Anything, product.ID).Return(&product, nil)
	storage.On("LinkedItems", mock.Anything, product.ID).Return(nil, nil)
	storage.On("ReleaseItem", mock.Anything, item.ID, workerID).Return(nil)

	han := newHandler(storage, publisher, workerID)

	result, err := han.Unlink(context.TODO(), item.ID, actor)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, product, result.Product, "result should carry the old product")
	assert.Empty(t, result.LinkedItems, "old product should have no items left")
}

func TestUnitUnlinkNotLinked(t *testing.T) {
	workerID := faker.Word()
	item := modelstesting.FakeItem(func(i *models.SupplierItem) {
		i.ProductID = nil
	})

	storage := mocks.NewStorage(t)
	publisher := mocks.NewPublisher(t)

	storage.On("ClaimItem", mock.Anything, item.ID, workerID).Return(nil)
	storage.On("Item", mock.Anything, item.ID).Return(&item, nil)
	storage.On("ReleaseItem", mock.Anything, item.ID, workerID).Return(nil)

	han := newHandler(storage, publisher, workerID)

	_, err := han.Unlink(context.TODO(), item.ID, faker.Username())

	require.ErrorIs(t, err, platform.ErrNotFound, "unlinking an unlinked item should fail")
}

func TestUnitResetVerified(t *testing.T) {
	workerID := faker.Word()
	actor := faker.Username()
	product := modelstesting.FakeProduct()
	item := modelstesting.FakeItem(func(i *models.SupplierItem) {
		i.MatchStatus = models.MatchVerified
		i.ProductID = &product.ID
	})

	storage := mocks.NewStorage(t)
	publisher := mocks.NewPublisher(t)

	storage.On("Item", mock.Anything, item.ID).Return(&item, nil)
	storage.On("ClaimItem", mock.Anything, item.ID, workerID).Return(nil)
	storage.On("UnlinkItem", mock.Anything, item.ID, models.MatchUnmatched).Return(nil)
	storage.On("RecordOverride", mock.Anything, models.OverrideRecord{
		SupplierItemID: item.ID,
		ProductID:      &product.ID,
		Action:         models.OverrideReset,
		Actor:          actor,
	}).Return(nil)
	publisher.On("SendAggregateCommand", mock.Anything, commander.AggregateCommand{
		ProductID: product.ID,
		Reason:    commander.ReasonUnlinked,
	}).Return(nil)
	storage.On("ReleaseItem", mock.Anything, item.ID, workerID).Return(nil)

	han := newHandler(storage, publisher, workerID)

	err := han.ResetVerified(context.TODO(), item.ID, actor)

	require.NoError(t, err, "shouldn't return any error")
}

func TestUnitResetVerifiedWithoutLink(t *testing.T) {
	workerID := faker.Word()
	actor := faker.Username()
	item := modelstesting.FakeItem(func(i *models.SupplierItem) {
		i.MatchStatus = models.MatchVerified
		i.ProductID = nil
	})

	storage := mocks.NewStorage(t)
	publisher := mocks.NewPublisher(t)

	storage.On("Item", mock.Anything, item.ID).Return(&item, nil)
	storage.On("ClaimItem", mock.Anything, item.ID, workerID).Return(nil)
	storage.On("UnlinkItem", mock.Anything, item.ID, models.MatchUnmatched).Return(nil)
	storage.On("RecordOverride", mock.Anything, models.OverrideRecord{
		SupplierItemID: item.ID,
		Action:         models.OverrideReset,
		Actor:          actor,
	}).Return(nil)
	storage.On("ReleaseItem", mock.Anything, item.ID, workerID).Return(nil)

	han := newHandler(storage, publisher, workerID)

	err := han.ResetVerified(context.TODO(), item.ID, actor)

	require.NoError(t, err, "shouldn't return any error")
	publisher.AssertNotCalled(t, "SendAggregateCommand", mock.Anything, mock.Anything)
}
