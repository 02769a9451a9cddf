package employee_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"go-erp/internal/employee"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepoTest(t *testing.T) (employee.Repository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return employee.NewRepository(gormDB), mock, db
}

// A repository bound with WithTx must run its statements on the caller's
// transaction connection. Were it still on the pool, gorm would wrap the
// delete in its own transaction and the extra begin would trip the ordered
// expectations below.
func TestRepositoryWithTx_WritesJoinCallerTransaction(t *testing.T) {
	repo, mock, db := setupRepoTest(t)

	mock.ExpectBegin()
	tx, err := db.Begin()
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "employees" WHERE business_entity_id = $1`)).
		WithArgs(101).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	qtx := repo.WithTx(tx)
	require.NoError(t, qtx.Delete(context.Background(), 101))
	require.NoError(t, tx.Rollback())

	assert.NoError(t, mock.ExpectationsWereMet())
}

// Without WithTx the repository stays on the pool and gorm manages its own
// transaction around the write.
func TestRepositoryWithoutTx_DeleteRunsOnPool(t *testing.T) {
	repo, mock, _ := setupRepoTest(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "employees" WHERE business_entity_id = $1`)).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 42))

	assert.NoError(t, mock.ExpectationsWereMet())
}
