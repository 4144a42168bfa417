package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tableset/catering-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestChefRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewChefRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "email", "phone", "station_id", "avatar_url", "active", "created_at", "updated_at"}).
		AddRow("c1", "Chef A", "a@example.com", nil, "st-1", nil, true, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, phone, station_id, avatar_url, active, created_at, updated_at FROM chefs WHERE 1=1 AND station_id = $1 ORDER BY name ASC LIMIT 20 OFFSET 0")).
		WithArgs("st-1").
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM chefs WHERE 1=1 AND station_id = $1")).
		WithArgs("st-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	list, total, err := repo.List(context.Background(), models.ChefFilter{StationID: "st-1"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChefRepositoryCreateAndDeactivate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewChefRepository(db)

	mock.ExpectExec("INSERT INTO chefs").
		WithArgs(sqlmock.AnyArg(), "Chef A", "a@example.com", sqlmock.AnyArg(), "st-1", sqlmock.AnyArg(), true, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), &models.Chef{Name: "Chef A", Email: "a@example.com", StationID: "st-1", Active: true})
	require.NoError(t, err)

	mock.ExpectExec("UPDATE chefs SET active = FALSE").
		WithArgs("c1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Deactivate(context.Background(), "c1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChefRepositoryExistsByEmail(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewChefRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM chefs WHERE LOWER(email) = LOWER($1) LIMIT 1")).
		WithArgs("a@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	exists, err := repo.ExistsByEmail(context.Background(), "a@example.com", "")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
