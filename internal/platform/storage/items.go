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

// Item returns supplier item by ID. It returns platform.ErrNotFound
// if the item does not exist.
func (p Postgres) Item(ctx context.Context, itemID int) (*models.SupplierItem, error) {
	var item pgmodels.SupplierItem
	err := table.SupplierItem.SELECT(table.SupplierItem.AllColumns).
		WHERE(table.SupplierItem.ID.EQ(pg.Int32(int32(itemID)))).
		QueryContext(ctx, p.db, &item)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get supplier item %d: %w", itemID, platform.ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("can't get supplier item: %w", err)
	}

	return toAppItem(&item)
}

// ClaimItem exclusively acquires a supplier item for workerID. The claim
// is non-blocking: it returns platform.ErrClaimed when another worker
// holds an unexpired claim, and the caller yields. Claims older than the
// configured claim timeout are reclaimable (crash recovery).
func (p Postgres) ClaimItem(ctx context.Context, itemID int, workerID string) error {
	now := time.Now().UTC()

	result, err := table.SupplierItem.UPDATE().
		SET(
			table.SupplierItem.ClaimedAt.SET(pg.TimestampzT(now)),
			table.SupplierItem.ClaimedBy.SET(pg.String(workerID)),
		).
		WHERE(pg.AND(
			table.SupplierItem.ID.EQ(pg.Int32(int32(itemID))),
			pg.OR(
				table.SupplierItem.ClaimedAt.IS_NULL(),
				table.SupplierItem.ClaimedAt.LT(pg.TimestampzT(now.Add(-p.claimTimeout))),
			),
		)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't claim supplier item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't claim supplier item: %w", err)
	}

	if rowsAffected == 0 {
		return platform.ErrClaimed
	}

	return nil
}

// ReleaseItem releases a claim held by workerID. Releasing an already
// released or reclaimed item is a no-op.
func (p Postgres) ReleaseItem(ctx context.Context, itemID int, workerID string) error {
	_, err := table.SupplierItem.UPDATE().
		SET(
			table.SupplierItem.ClaimedAt.SET(pg.TimestampzExp(pg.NULL)),
			table.SupplierItem.ClaimedBy.SET(pg.StringExp(pg.NULL)),
		).
		WHERE(pg.AND(
			table.SupplierItem.ID.EQ(pg.Int32(int32(itemID))),
			table.SupplierItem.ClaimedBy.EQ(pg.String(workerID)),
		)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't release supplier item: %w", err)
	}

	return nil
}

// SaveItemAttributes persists the item's merged attribute map.
func (p Postgres) SaveItemAttributes(ctx context.Context, itemID int, attrs map[string]string) error {
	encoded, err := encodeAttributes(attrs)
	if err != nil {
		return err
	}

	_, err = table.SupplierItem.UPDATE().
		SET(
			table.SupplierItem.Attributes.SET(pg.String(encoded)),
			table.SupplierItem.UpdatedAt.SET(pg.TimestampzT(time.Now().UTC())),
		).
		WHERE(table.SupplierItem.ID.EQ(pg.Int32(int32(itemID)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't save item attributes: %w", err)
	}

	return nil
}

// LinkItem links a supplier item to a product with the given match status
// and score.
func (p Postgres) LinkItem(
	ctx context.Context,
	itemID int,
	productID int,
	status models.MatchStatus,
	score *float64,
) error {
	scoreExp := pg.FloatExp(pg.NULL)
	if score != nil {
		scoreExp = pg.Float(*score)
	}

	result, err := table.SupplierItem.UPDATE().
		SET(
			table.SupplierItem.ProductID.SET(pg.Int32(int32(productID))),
			table.SupplierItem.MatchStatus.SET(pg.String(string(status))),
			table.SupplierItem.MatchScore.SET(scoreExp),
			table.SupplierItem.UpdatedAt.SET(pg.TimestampzT(time.Now().UTC())),
		).
		WHERE(table.SupplierItem.ID.EQ(pg.Int32(int32(itemID)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't link supplier item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't link supplier item: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("can't link supplier item %d: %w", itemID, platform.ErrNotFound)
	}

	return nil
}

// UnlinkItem detaches a supplier item from its product and resets the
// match status to the given value (unmatched unless an admin reset says
// otherwise).
func (p Postgres) UnlinkItem(ctx context.Context, itemID int, status models.MatchStatus) error {
	result, err := table.SupplierItem.UPDATE().
		SET(
			table.SupplierItem.ProductID.SET(pg.IntExp(pg.NULL)),
			table.SupplierItem.MatchStatus.SET(pg.String(string(status))),
			table.SupplierItem.MatchScore.SET(pg.FloatExp(pg.NULL)),
			table.SupplierItem.UpdatedAt.SET(pg.TimestampzT(time.Now().UTC())),
		).
		WHERE(table.SupplierItem.ID.EQ(pg.Int32(int32(itemID)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't unlink supplier item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't unlink supplier item: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("can't unlink supplier item %d: %w", itemID, platform.ErrNotFound)
	}

	return nil
}

// SetItemStatus updates the item's match status and score without
// touching the product link.
func (p Postgres) SetItemStatus(ctx context.Context, itemID int, status models.MatchStatus, score *float64) error {
	scoreExp := pg.FloatExp(pg.NULL)
	if score != nil {
		scoreExp = pg.Float(*score)
	}

	result, err := table.SupplierItem.UPDATE().
		SET(
			table.SupplierItem.MatchStatus.SET(pg.String(string(status))),
			table.SupplierItem.MatchScore.SET(scoreExp),
			table.SupplierItem.UpdatedAt.SET(pg.TimestampzT(time.Now().UTC())),
		).
		WHERE(table.SupplierItem.ID.EQ(pg.Int32(int32(itemID)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't set item match status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't set item match status: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("can't set match status of item %d: %w", itemID, platform.ErrNotFound)
	}

	return nil
}

// SetItemCategory assigns a category to a supplier item.
func (p Postgres) SetItemCategory(ctx context.Context, itemID int, categoryID int) error {
	result, err := table.SupplierItem.UPDATE().
		SET(
			table.SupplierItem.CategoryID.SET(pg.Int32(int32(categoryID))),
			table.SupplierItem.UpdatedAt.SET(pg.TimestampzT(time.Now().UTC())),
		).
		WHERE(table.SupplierItem.ID.EQ(pg.Int32(int32(itemID)))).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't set item category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't set item category: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("can't set category of item %d: %w", itemID, platform.ErrNotFound)
	}

	return nil
}

// CountUnmatched returns the current unmatched items backlog size.
func (p Postgres) CountUnmatched(ctx context.Context) (int, error) {
	var dest struct {
		Count int64
	}

	err := table.SupplierItem.SELECT(pg.COUNT(table.SupplierItem.ID).AS("count")).
		WHERE(table.SupplierItem.MatchStatus.EQ(pg.String(string(models.MatchUnmatched)))).
		QueryContext(ctx, p.db, &dest)
	if err != nil {
		return 0, fmt.Errorf("can't count unmatched items: %w", err)
	}

	return int(dest.Count), nil
}
