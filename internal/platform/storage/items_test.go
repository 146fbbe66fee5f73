package storage_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/pricegrid/catalog-linker/internal/platform"
	"github.com/pricegrid/catalog-linker/internal/platform/models"
	"github.com/pricegrid/catalog-linker/internal/platform/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rowsDriver fakes a SQL driver so RowsAffected behavior can be driven
// without a database. The DSN selects the behavior.
type rowsDriver struct{}

func (rowsDriver) Open(dsn string) (driver.Conn, error) { return rowsConn{dsn: dsn}, nil }

type rowsConn struct{ dsn string }

func (c rowsConn) Prepare(string) (driver.Stmt, error) { return rowsStmt{dsn: c.dsn}, nil }
func (rowsConn) Close() error                          { return nil }
func (rowsConn) Begin() (driver.Tx, error)             { return nil, driver.ErrSkip }

type rowsStmt struct{ dsn string }

func (rowsStmt) Close() error  { return nil }
func (rowsStmt) NumInput() int { return -1 }

func (s rowsStmt) Exec([]driver.Value) (driver.Result, error) {
	return rowsResult{dsn: s.dsn}, nil
}

func (rowsStmt) Query([]driver.Value) (driver.Rows, error) { return nil, driver.ErrSkip }

type rowsResult struct{ dsn string }

func (rowsResult) LastInsertId() (int64, error) { return 0, nil }

func (r rowsResult) RowsAffected() (int64, error) {
	if r.dsn == "rows-error" {
		return 0, assert.AnError
	}
	return 0, nil
}

func init() {
	sql.Register("rowstub", rowsDriver{})
}

func TestUnitSetItemStatusMissingItem(t *testing.T) {
	db, err := sql.Open("rowstub", "zero-rows")
	require.NoError(t, err, "should open stub connection")
	defer db.Close()

	pg := storage.NewPostgres(db, time.Minute)

	err = pg.SetItemStatus(context.TODO(), 1, models.MatchUnmatched, nil)

	require.ErrorIs(t, err, platform.ErrNotFound, "updating a missing item should report not found")
	assert.True(t, platform.IsPermanent(err), "missing items shouldn't be retried")
}

func TestUnitSetItemStatusRowsAffectedError(t *testing.T) {
	db, err := sql.Open("rowstub", "rows-error")
	require.NoError(t, err, "should open stub connection")
	defer db.Close()

	pg := storage.NewPostgres(db, time.Minute)

	err = pg.SetItemStatus(context.TODO(), 1, models.MatchUnmatched, nil)

	require.ErrorIs(t, err, assert.AnError, "should surface the driver failure")
	assert.NotErrorIs(t, err, platform.ErrNotFound, "driver failures aren't missing items")
	assert.False(t, platform.IsPermanent(err), "driver failures should stay retryable")
}

func TestUnitLinkItemRowsAffectedError(t *testing.T) {
	db, err := sql.Open("rowstub", "rows-error")
	require.NoError(t, err, "should open stub connection")
	defer db.Close()

	pg := storage.NewPostgres(db, time.Minute)

	err = pg.LinkItem(context.TODO(), 1, 2, models.MatchAuto, nil)

	require.ErrorIs(t, err, assert.AnError, "should surface the driver failure")
	assert.False(t, platform.IsPermanent(err), "driver failures should stay retryable")
}
