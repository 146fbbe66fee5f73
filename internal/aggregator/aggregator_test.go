package aggregator_test

import (
	"context"
	"testing"

	"github.com/pricegrid/catalog-linker/internal/aggregator"
	"github.com/pricegrid/catalog-linker/internal/aggregator/mocks"
	"github.com/pricegrid/catalog-linker/internal/platform"
	"github.com/pricegrid/catalog-linker/internal/platform/models"
	"github.com/pricegrid/catalog-linker/internal/platform/models/modelstesting"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitRecompute(t *testing.T) {
	product := modelstesting.FakeProduct()
	items := []models.SupplierItem{
		modelstesting.FakeItem(func(i *models.SupplierItem) {
			i.CurrentPrice = 19.99
			i.InStock = lo.ToPtr(true)
		}),
		modelstesting.FakeItem(func(i *models.SupplierItem) {
			i.CurrentPrice = 9.99
			i.InStock = lo.ToPtr(false)
		}),
		modelstesting.FakeItem(func(i *models.SupplierItem) {
			i.CurrentPrice = 14.50
			i.InStock = lo.ToPtr(true)
		}),
	}

	storage := mocks.NewStorage(t)

	storage.On("Product", mock.Anything, product.ID).Return(&product, nil)
	storage.On("ClaimRecompute", mock.Anything, product.ID).Return(nil)
	storage.On("LinkedItems", mock.Anything, product.ID).Return(items, nil)
	storage.On("SaveAggregates", mock.Anything, product.ID, lo.ToPtr(14.50), true).Return(nil)
	storage.On("ReleaseRecompute", mock.Anything, product.ID).Return(nil)

	logger := zerolog.Nop()
	agg := aggregator.NewAggregator(storage, &logger)

	err := agg.Recompute(context.TODO(), product.ID)

	require.NoError(t, err, "shouldn't return any error")
}

func TestUnitRecomputeNoLinkedItems(t *testing.T) {
	product := modelstesting.FakeProduct()

	storage := mocks.NewStorage(t)

	storage.On("Product", mock.Anything, product.ID).Return(&product, nil)
	storage.On("ClaimRecompute", mock.Anything, product.ID).Return(nil)
	storage.On("LinkedItems", mock.Anything, product.ID).Return(nil, nil)
	storage.On("SaveAggregates", mock.Anything, product.ID, (*float64)(nil), false).Return(nil)
	storage.On("ReleaseRecompute", mock.Anything, product.ID).Return(nil)

	logger := zerolog.Nop()
	agg := aggregator.NewAggregator(storage, &logger)

	err := agg.Recompute(context.TODO(), product.ID)

	require.NoError(t, err, "recomputing a product without items should clear the aggregates")
}

func TestUnitRecomputeArchivedProduct(t *testing.T) {
	product := modelstesting.FakeProduct(func(p *models.Product) {
		p.Status = models.ProductArchived
	})

	storage := mocks.NewStorage(t)

	storage.On("Product", mock.Anything, product.ID).Return(&product, nil)

	logger := zerolog.Nop()
	agg := aggregator.NewAggregator(storage, &logger)

	err := agg.Recompute(context.TODO(), product.ID)

	require.NoError(t, err, "archived products should be skipped silently")
	storage.AssertNotCalled(t, "ClaimRecompute", mock.Anything, mock.Anything)
}

func TestUnitRecomputeLocked(t *testing.T) {
	product := modelstesting.FakeProduct()

	storage := mocks.NewStorage(t)

	storage.On("Product", mock.Anything, product.ID).Return(&product, nil)
	storage.On("ClaimRecompute", mock.Anything, product.ID).Return(platform.ErrRecomputeLocked)

	logger := zerolog.Nop()
	agg := aggregator.NewAggregator(storage, &logger)

	err := agg.Recompute(context.TODO(), product.ID)

	require.ErrorIs(t, err, platform.ErrRecomputeLocked,
		"should surface the held lock so the caller can re-enqueue")
	storage.AssertNotCalled(t, "ReleaseRecompute", mock.Anything, mock.Anything)
}

func TestUnitRecomputeStorageError(t *testing.T) {
	product := modelstesting.FakeProduct()

	storage := mocks.NewStorage(t)

	storage.On("Product", mock.Anything, product.ID).Return(&product, nil)
	storage.On("ClaimRecompute", mock.Anything, product.ID).Return(nil)
	storage.On("LinkedItems", mock.Anything, product.ID).Return(nil, assert.AnError)
	storage.On("ReleaseRecompute", mock.Anything, product.ID).Return(nil)

	logger := zerolog.Nop()
	agg := aggregator.NewAggregator(storage, &logger)

	err := agg.Recompute(context.TODO(), product.ID)

	require.ErrorContains(t, err, "can't load linked items", "should return error about failed loading")
	require.ErrorIs(t, err, assert.AnError, "should return error containing assert.AnError")
}

func TestUnitDerive(t *testing.T) {
	tests := map[string]struct {
		items         []models.SupplierItem
		wantMinPrice  *float64
		wantAvailable bool
	}{
		"no items": {},
		"all out of stock": {
			items: []models.SupplierItem{
				modelstesting.FakeItem(func(i *models.SupplierItem) { i.InStock = lo.ToPtr(false) }),
				modelstesting.FakeItem(func(i *models.SupplierItem) { i.InStock = lo.ToPtr(false) }),
			},
		},
		"unknown stock is not availability": {
			items: []models.SupplierItem{
				modelstesting.FakeItem(func(i *models.SupplierItem) {
					i.CurrentPrice = 5
					i.InStock = nil
				}),
			},
		},
		"min price among in-stock items only": {
			items: []models.SupplierItem{
				modelstesting.FakeItem(func(i *models.SupplierItem) {
					i.CurrentPrice = 3.33
					i.InStock = lo.ToPtr(false)
				}),
				modelstesting.FakeItem(func(i *models.SupplierItem) {
					i.CurrentPrice = 7.77
					i.InStock = lo.ToPtr(true)
				}),
				modelstesting.FakeItem(func(i *models.SupplierItem) {
					i.CurrentPrice = 9.99
					i.InStock = lo.ToPtr(true)
				}),
			},
			wantMinPrice:  lo.ToPtr(7.77),
			wantAvailable: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			minPrice, available := aggregator.Derive(tt.items)

			assert.Equal(t, tt.wantMinPrice, minPrice, "should derive correct minimal price")
			assert.Equal(t, tt.wantAvailable, available, "should derive correct availability")
		})
	}
}

func TestUnitDeriveIdempotent(t *testing.T) {
	items := []models.SupplierItem{
		modelstesting.FakeItem(func(i *models.SupplierItem) {
			i.CurrentPrice = 7.77
			i.InStock = lo.ToPtr(true)
		}),
		modelstesting.FakeItem(func(i *models.SupplierItem) {
			i.CurrentPrice = 9.99
			i.InStock = lo.ToPtr(true)
		}),
	}

	firstPrice, firstAvailable := aggregator.Derive(items)
	secondPrice, secondAvailable := aggregator.Derive(items)

	require.Equal(t, firstPrice, secondPrice, "repeated derivation should give the same price")
	require.Equal(t, firstAvailable, secondAvailable, "repeated derivation should give the same availability")
}
