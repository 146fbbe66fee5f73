package storage

import (
	"context"
	"database/sql"
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

// CreateReviewEntry inserts a new review queue entry and returns it
// with assigned ID.
func (p Postgres) CreateReviewEntry(ctx context.Context, entry models.ReviewEntry) (*models.ReviewEntry, error) {
	newEntry, err := toDBReviewEntry(&entry)
	if err != nil {
		return nil, err
	}

	err = table.ReviewEntry.INSERT(
		table.ReviewEntry.SupplierItemID,
		table.ReviewEntry.Candidates,
		table.ReviewEntry.Status,
		table.ReviewEntry.ExpiresAt,
	).
		MODEL(newEntry).
		RETURNING(table.ReviewEntry.ID, table.ReviewEntry.CreatedAt).
		QueryContext(ctx, p.db, newEntry)
	if err != nil {
		return nil, fmt.Errorf("can't insert review entry into database: %w", err)
	}

	return toAppReviewEntry(newEntry)
}

// ReviewEntry returns review queue entry by ID. It returns
// platform.ErrNotFound if the entry does not exist.
func (p Postgres) ReviewEntry(ctx context.Context, entryID int) (*models.ReviewEntry, error) {
	var entry pgmodels.ReviewEntry
	err := table.ReviewEntry.SELECT(table.ReviewEntry.AllColumns).
		WHERE(table.ReviewEntry.ID.EQ(pg.Int32(int32(entryID)))).
		QueryContext(ctx, p.db, &entry)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get review entry %d: %w", entryID, platform.ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("can't get review entry: %w", err)
	}

	return toAppReviewEntry(&entry)
}

// OpenReviewEntry returns the supplier item's open (pending or
// needs_category) review entry, newest first. It returns
// platform.ErrNotFound if the item has no open entry.
func (p Postgres) OpenReviewEntry(ctx context.Context, itemID int) (*models.ReviewEntry, error) {
	var entry pgmodels.ReviewEntry
	err := table.ReviewEntry.SELECT(table.ReviewEntry.AllColumns).
		WHERE(pg.AND(
			table.ReviewEntry.SupplierItemID.EQ(pg.Int32(int32(itemID))),
			table.ReviewEntry.Status.IN(
				pg.String(string(models.ReviewPending)),
				pg.String(string(models.ReviewNeedsCategory)),
			),
		)).
		ORDER_BY(table.ReviewEntry.ID.DESC()).
		LIMIT(1).
		QueryContext(ctx, p.db, &entry)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("item %d has no open review entry: %w", itemID, platform.ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("can't get open review entry: %w", err)
	}

	return toAppReviewEntry(&entry)
}

// UpdateReviewStatus moves a review entry into a new status, recording
// reviewer identity and time for admin actions. The caller validates the
// transition; this method guards against concurrent updates by matching
// the expected current status.
func (p Postgres) UpdateReviewStatus(
	ctx context.Context,
	entryID int,
	from models.ReviewStatus,
	to models.ReviewStatus,
	reviewer *string,
) error {
	reviewedByExp := pg.StringExp(pg.NULL)
	reviewedAtExp := pg.TimestampzExp(pg.NULL)
	if reviewer != nil {
		reviewedByExp = pg.String(*reviewer)
		reviewedAtExp = pg.TimestampzT(time.Now().UTC())
	}

	result, err := table.ReviewEntry.UPDATE().
		SET(
			table.ReviewEntry.Status.SET(pg.String(string(to))),
			table.ReviewEntry.ReviewedBy.SET(reviewedByExp),
			table.ReviewEntry.ReviewedAt.SET(reviewedAtExp),
		).
		WHERE(pg.AND(
			table.ReviewEntry.ID.EQ(pg.Int32(int32(entryID))),
			table.ReviewEntry.Status.EQ(pg.String(string(from))),
		)).
		ExecContext(ctx, p.db)
	if err != nil {
		return fmt.Errorf("can't update review entry status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't update review entry status: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("review entry %d is not %s anymore: %w", entryID, from, platform.ErrInvalidTransition)
	}

	return nil
}

// ListReviewEntries returns a page of review entries matching the filter,
// newest first. Score filters match the entry's best candidate score.
func (p Postgres) ListReviewEntries(ctx context.Context, filter models.ReviewFilter) ([]models.ReviewEntry, error) {
	conditions := []pg.BoolExpression{pg.Bool(true)}

	if filter.Status != nil {
		conditions = append(conditions, table.ReviewEntry.Status.EQ(pg.String(string(*filter.Status))))
	}
	if filter.CategoryID != nil {
		conditions = append(conditions, table.SupplierItem.CategoryID.EQ(pg.Int32(int32(*filter.CategoryID))))
	}
	if filter.MinScore != nil {
		conditions = append(conditions, table.SupplierItem.MatchScore.GT_EQ(pg.Float(*filter.MinScore)))
	}
	if filter.MaxScore != nil {
		conditions = append(conditions, table.SupplierItem.MatchScore.LT_EQ(pg.Float(*filter.MaxScore)))
	}

	limit := int64(filter.Limit)
	if limit <= 0 {
		limit = 50
	}

	var dbEntries []pgmodels.ReviewEntry
	err := pg.SELECT(table.ReviewEntry.AllColumns).
		FROM(table.ReviewEntry.
			INNER_JOIN(table.SupplierItem, table.SupplierItem.ID.EQ(table.ReviewEntry.SupplierItemID)),
		).
		WHERE(pg.AND(conditions...)).
		ORDER_BY(table.ReviewEntry.CreatedAt.DESC(), table.ReviewEntry.ID.DESC()).
		LIMIT(limit).
		OFFSET(int64(filter.Offset)).
		QueryContext(ctx, p.db, &dbEntries)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't list review entries: %w", err)
	}

	entries := make([]models.ReviewEntry, 0, len(dbEntries))
	for ix := range dbEntries {
		entry, err := toAppReviewEntry(&dbEntries[ix])
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}

	return entries, nil
}

// ExpireStaleEntries moves pending and needs_category entries past their
// expiry time into the expired status. Returns the number of expired
// entries. Entries are kept for audit, never deleted.
func (p Postgres) ExpireStaleEntries(ctx context.Context, now time.Time) (int, error) {
	expired := 0

	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		result, err := table.ReviewEntry.UPDATE().
			SET(table.ReviewEntry.Status.SET(pg.String(string(models.ReviewExpired)))).
			WHERE(pg.AND(
				table.ReviewEntry.Status.IN(
					pg.String(string(models.ReviewPending)),
					pg.String(string(models.ReviewNeedsCategory)),
				),
				table.ReviewEntry.ExpiresAt.LT(pg.TimestampzT(now)),
			)).
			ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("can't expire review entries: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("can't expire review entries: %w", err)
		}
		expired = int(rowsAffected)

		return nil
	})
	if err != nil {
		return 0, err
	}

	return expired, nil
}
