package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/tableset/catering-api/internal/models"
)

// OverrideRepository persists date-specific availability overrides. A
// unique constraint on (chef_id, date) backs the upsert, keeping one
// override per chef per date.
type OverrideRepository struct {
	db *sqlx.DB
}

// NewOverrideRepository constructs an override repository.
func NewOverrideRepository(db *sqlx.DB) *OverrideRepository {
	return &OverrideRepository{db: db}
}

const overrideColumns = "id, chef_id, date, slot_ids, is_available, reason, created_by, created_at, updated_at"

// ListByChefRange returns the chef's overrides inside [from, to].
func (r *OverrideRepository) ListByChefRange(ctx context.Context, chefID string, from, to time.Time) ([]models.DateOverride, error) {
	query := fmt.Sprintf("SELECT %s FROM date_overrides WHERE chef_id = $1 AND date BETWEEN $2 AND $3 ORDER BY date ASC", overrideColumns)
	var overrides []models.DateOverride
	if err := r.db.SelectContext(ctx, &overrides, query, chefID, from, to); err != nil {
		return nil, fmt.Errorf("list date overrides: %w", err)
	}
	return overrides, nil
}

// GetByChefDate fetches the override for one date, if any.
func (r *OverrideRepository) GetByChefDate(ctx context.Context, chefID string, date time.Time) (*models.DateOverride, error) {
	query := fmt.Sprintf("SELECT %s FROM date_overrides WHERE chef_id = $1 AND date = $2", overrideColumns)
	var override models.DateOverride
	if err := r.db.GetContext(ctx, &override, query, chefID, date); err != nil {
		return nil, err
	}
	return &override, nil
}

// Upsert inserts or replaces the override for (chef_id, date).
func (r *OverrideRepository) Upsert(ctx context.Context, override *models.DateOverride) error {
	if override.ID == "" {
		override.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if override.CreatedAt.IsZero() {
		override.CreatedAt = now
	}
	override.UpdatedAt = now

	const query = `INSERT INTO date_overrides (id, chef_id, date, slot_ids, is_available, reason, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (chef_id, date) DO UPDATE SET
slot_ids = EXCLUDED.slot_ids, is_available = EXCLUDED.is_available, reason = EXCLUDED.reason, updated_at = EXCLUDED.updated_at`
	if _, err := r.db.ExecContext(ctx, query,
		override.ID, override.ChefID, override.Date, pq.Array([]string(override.SlotIDs)),
		override.IsAvailable, override.Reason, override.CreatedBy, override.CreatedAt, override.UpdatedAt); err != nil {
		return fmt.Errorf("upsert date override: %w", err)
	}
	return nil
}

// Delete removes the override for (chef_id, date). Deleting a missing
// override returns sql.ErrNoRows.
func (r *OverrideRepository) Delete(ctx context.Context, chefID string, date time.Time) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM date_overrides WHERE chef_id = $1 AND date = $2", chefID, date)
	if err != nil {
		return fmt.Errorf("delete date override: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete date override: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
