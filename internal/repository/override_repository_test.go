package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tableset/catering-api/internal/models"
)

func TestOverrideRepositoryListByChefRange(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewOverrideRepository(db)

	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "chef_id", "date", "slot_ids", "is_available", "reason", "created_by", "created_at", "updated_at"}).
		AddRow("ovr-1", "c1", from.AddDate(0, 0, 9), pq.StringArray{"6pm"}, true, nil, nil, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, chef_id, date, slot_ids, is_available, reason, created_by, created_at, updated_at FROM date_overrides WHERE chef_id = $1 AND date BETWEEN $2 AND $3 ORDER BY date ASC")).
		WithArgs("c1", from, to).
		WillReturnRows(rows)

	overrides, err := repo.ListByChefRange(context.Background(), "c1", from, to)
	require.NoError(t, err)
	require.Len(t, overrides, 1)
	assert.Equal(t, pq.StringArray{"6pm"}, overrides[0].SlotIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOverrideRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewOverrideRepository(db)

	mock.ExpectExec("INSERT INTO date_overrides").
		WithArgs(sqlmock.AnyArg(), "c1", sqlmock.AnyArg(), sqlmock.AnyArg(), true, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	override := &models.DateOverride{
		ChefID:      "c1",
		Date:        time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		SlotIDs:     []string{"6pm"},
		IsAvailable: true,
	}
	require.NoError(t, repo.Upsert(context.Background(), override))
	assert.NotEmpty(t, override.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOverrideRepositoryDeleteMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewOverrideRepository(db)

	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM date_overrides WHERE chef_id = $1 AND date = $2")).
		WithArgs("c1", date).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "c1", date)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
