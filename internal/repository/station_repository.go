package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/tableset/catering-api/internal/models"
)

// StationRepository reads station reference data. Stations are created
// and updated by an external admin tool; this service only lists them.
type StationRepository struct {
	db *sqlx.DB
}

// NewStationRepository constructs a station repository.
func NewStationRepository(db *sqlx.DB) *StationRepository {
	return &StationRepository{db: db}
}

// List returns all stations ordered by name.
func (r *StationRepository) List(ctx context.Context) ([]models.Station, error) {
	const query = `SELECT id, name, address, timezone, created_at, updated_at FROM stations ORDER BY name ASC`
	var stations []models.Station
	if err := r.db.SelectContext(ctx, &stations, query); err != nil {
		return nil, err
	}
	return stations, nil
}

// FindByID fetches one station.
func (r *StationRepository) FindByID(ctx context.Context, id string) (*models.Station, error) {
	const query = `SELECT id, name, address, timezone, created_at, updated_at FROM stations WHERE id = $1`
	var station models.Station
	if err := r.db.GetContext(ctx, &station, query, id); err != nil {
		return nil, err
	}
	return &station, nil
}
