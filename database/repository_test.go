package database

import (
	"context"
	"path/filepath"
	"testing"

	"worklog/models"
	"worklog/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "worklog.db") + "?_foreign_keys=on"

	db, err := Open(DriverSQLite, dsn, logger.Silent)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return NewRepository(db)
}

func salary(v float64) *float64 { return &v }

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open("oracle", "", logger.Silent)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestFindEmployeeByName(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	alice := &models.Employee{FirstName: "Alice", LastName: "Reyes", Salary: salary(800)}
	require.NoError(t, repo.AddEmployee(ctx, alice))
	require.NoError(t, repo.AddEmployee(ctx, &models.Employee{FirstName: "Bob", LastName: "Tan"}))

	got, err := repo.FindEmployeeByName(ctx, "aLiCe")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)
	assert.Equal(t, "Alice Reyes", got.DisplayName())
	require.NotNil(t, got.Salary)
	assert.InDelta(t, 800, *got.Salary, 0.001)

	bob, err := repo.FindEmployeeByName(ctx, "bob")
	require.NoError(t, err)
	assert.Nil(t, bob.Salary)

	_, err = repo.FindEmployeeByName(ctx, "Carol")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestWorkLogLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	e := &models.Employee{FirstName: "Alice", LastName: "Reyes"}
	require.NoError(t, repo.AddEmployee(ctx, e))

	older, err := repo.InsertWorkLog(ctx, e.ID, models.NewWorkLog{Date: "2024-01-01", Hours: 8, Description: "Inventory"})
	require.NoError(t, err)
	assert.NotEmpty(t, older.ID)
	assert.False(t, older.CreatedAt.IsZero())
	assert.Equal(t, models.StatusPending, older.Status)

	first, err := repo.InsertWorkLog(ctx, e.ID, models.NewWorkLog{Date: "2024-01-02", Hours: 2, Description: "Morning"})
	require.NoError(t, err)
	second, err := repo.InsertWorkLog(ctx, e.ID, models.NewWorkLog{Date: "2024-01-02", Hours: 2.5, Description: "Afternoon"})
	require.NoError(t, err)

	logs, err := repo.ListWorkLogs(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, []string{second.ID, first.ID, older.ID}, []string{logs[0].ID, logs[1].ID, logs[2].ID})
	assert.Equal(t, "2024-01-02", logs[0].Date.String())
	assert.InDelta(t, 2.5, logs[0].HoursLogged, 0.0001)

	require.NoError(t, repo.DeleteWorkLog(ctx, first.ID))
	require.NoError(t, repo.DeleteWorkLog(ctx, first.ID))

	logs, err = repo.ListWorkLogs(ctx, e.ID)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestInsertRequiresExistingEmployee(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.InsertWorkLog(context.Background(), "00000000-0000-0000-0000-000000000000",
		models.NewWorkLog{Date: "2024-01-02", Hours: 1, Description: "Orphan"})
	assert.Error(t, err)
}
