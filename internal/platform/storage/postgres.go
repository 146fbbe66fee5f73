package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Postgres is storage for products, supplier items, review entries
// and override audit records.
type Postgres struct {
	db           *sql.DB
	claimTimeout time.Duration
}

// NewPostgres returns new Postgres. Claims older than claimTimeout are
// treated as abandoned by a crashed worker and can be re-acquired.
func NewPostgres(db *sql.DB, claimTimeout time.Duration) Postgres {
	return Postgres{
		db:           db,
		claimTimeout: claimTimeout,
	}
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
