package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pricegrid/catalog-linker/internal/platform"
	"github.com/pricegrid/catalog-linker/internal/platform/models"
	"github.com/pricegrid/catalog-linker/internal/platform/storage/gen/postgres/public/table"

	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	pgmodels "github.com/pricegrid/catalog-linker/internal/platform/storage/gen/postgres/public/model"
)

// Product returns product by ID. It returns platform.ErrNotFound
// if the product does not exist.
func (p Postgres) Product(ctx context.Context, productID int) (*models.Product, error) {
	var product pgmodels.Product
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(table.Product.ID.EQ(pg.Int32(int32(productID)))).
		QueryContext(ctx, p.db, &product)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get product %d: %w", productID, platform.ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("can't get product: %w", err)
	}

	return toAppProduct(&product), nil
}

// CreateProduct inserts a new product and returns it with assigned ID.
func (p Postgres) CreateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	newProduct := toDBProduct(&product)

	err := table.Product.INSERT(
		table.Product.Name,
		table.Product.Status,
		table.Product.CategoryID,
		table.Product.IsAvailable,
	).
		MODEL(newProduct).
		RETURNING(table.Product.ID, table.Product.CreatedAt).
		QueryContext(ctx, p.db, newProduct)
	if err != nil {
		return nil, fmt.Errorf("can't insert product into database: %w", err)
	}

	return toAppProduct(newProduct), nil
}

// CandidateProducts returns non-archived products eligible as match
// candidates. With a non-nil categoryID the set is blocked to that
// category; nil means blocking is disabled and the whole catalog is
// scanned.
func (p Postgres) CandidateProducts(ctx context.Context, categoryID *int) ([]models.Product, error) {
	condition := table.Product.Status.NOT_EQ(pg.String(string(models.ProductArchived)))
	if categoryID != nil {
		condition = pg.AND(
			condition,
			table.Product.CategoryID.EQ(pg.Int32(int32(*categoryID))),
		)
	}

	var products []pgmodels.Product
	err := table.Product.SELECT(table.Product.AllColumns).
		WHERE(condition).
		ORDER_BY(table.Product.CreatedAt.ASC(), table.Product.ID.ASC()).
		QueryContext(ctx, p.db, &products)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get candidate products: %w", err)
	}

	candidates := make([]models.Product, 0, len(products))
	for ix := range products {
		candidates = append(candidates, *toAppProduct(&products[ix]))
	}

	return candidates, nil
}

// LinkedItems returns all supplier items currently linked to the product.
func (p Postgres) LinkedItems(ctx context.Context, productID int) ([]models.SupplierItem, error) {
	var dbItems []pgmodels.SupplierItem
	err := table.SupplierItem.SELECT(table.SupplierItem.AllColumns).
		WHERE(table.SupplierItem.ProductID.EQ(pg.Int32(int32(productID)))).
		ORDER_BY(table.SupplierItem.ID.ASC()).
		QueryContext(ctx, p.db, &dbItems)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get linked items: %w", err)
	}

	items := make([]models.SupplierItem, 0, len(dbItems))
	for ix := range dbItems {
		item, err := toAppItem(&dbItems[ix])
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	return items, nil
}

// ClaimRecompute acquires the per-product aggregation lock. It returns
// platform.ErrRecomputeLocked when another worker holds an unexpired
// lock; the triggering event should then be re-enqueued.
func (p Postgres) ClaimRecompute(ctx context.Context, productID int) error {
	now := time.Now().UTC()

	result, err := table.Product.UPDATE().
		SET(table.Product.RecomputeClaimedAt.SET(pg.TimestampzT(now))).
		WHERE(pg.AND(
			table.Product.ID.EQ(pg.Int32(int32(productID))),
			pg.OR(
				table.Product.RecomputeClaimedAt.IS_NULL(),
				table.Product.RecomputeClaimedAt.LT(pg.TimestampzT(now.Add(-p.claimTimeout))),
			),
		)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't claim product recompute: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't claim product recompute: %w", err)
	}

	if rowsAffected == 0 {
		return platform.ErrRecomputeLocked
	}

	return nil
}

// ReleaseRecompute releases the per-product aggregation lock.
func (p Postgres) ReleaseRecompute(ctx context.Context, productID int) error {
	_, err := table.Product.UPDATE().
		SET(table.Product.RecomputeClaimedAt.SET(pg.TimestampzExp(pg.NULL))).
		WHERE(table.Product.ID.EQ(pg.Int32(int32(productID)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't release product recompute: %w", err)
	}

	return nil
}

// SaveAggregates persists recomputed derived fields of the product.
func (p Postgres) SaveAggregates(ctx context.Context, productID int, minPrice *float64, available bool) error {
	minPriceExp := pg.FloatExp(pg.NULL)
	if minPrice != nil {
		minPriceExp = pg.Float(*minPrice)
	}

	result, err := table.Product.UPDATE().
		SET(
			table.Product.MinPrice.SET(minPriceExp),
			table.Product.IsAvailable.SET(pg.Bool(available)),
		).
		WHERE(table.Product.ID.EQ(pg.Int32(int32(productID)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't save product aggregates: %w", err)
	}

	if rowsAffected, err := result.RowsAffected(); rowsAffected == 0 || err != nil {
		return fmt.Errorf("can't save aggregates of product %d: %w", productID, platform.ErrNotFound)
	}

	return nil
}

// RecordOverride appends a manual override action to the audit trail.
func (p Postgres) RecordOverride(ctx context.Context, rec models.OverrideRecord) error {
	_, err := table.OverrideAudit.INSERT(
		table.OverrideAudit.SupplierItemID,
		table.OverrideAudit.ProductID,
		table.OverrideAudit.Action,
		table.OverrideAudit.Actor,
	).
		MODEL(toDBOverrideRecord(&rec)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't record override: %w", err)
	}

	return nil
}
