package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/tableset/catering-api/internal/models"
)

// TemplateRepository persists weekly availability templates. The table
// carries a unique constraint on (chef_id, day_of_week) so template
// uniqueness per weekday is enforced by the store, not remembered by
// callers.
type TemplateRepository struct {
	db *sqlx.DB
}

// NewTemplateRepository constructs a template repository.
func NewTemplateRepository(db *sqlx.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

const templateColumns = "id, chef_id, day_of_week, slot_ids, is_available, created_at, updated_at"

// ListByChef returns the chef's weekly templates ordered by weekday.
func (r *TemplateRepository) ListByChef(ctx context.Context, chefID string) ([]models.WeeklyTemplate, error) {
	query := fmt.Sprintf("SELECT %s FROM weekly_templates WHERE chef_id = $1 ORDER BY day_of_week ASC", templateColumns)
	var templates []models.WeeklyTemplate
	if err := r.db.SelectContext(ctx, &templates, query, chefID); err != nil {
		return nil, fmt.Errorf("list weekly templates: %w", err)
	}
	return templates, nil
}

// ReplaceWeek swaps the chef's full 7-day template set in one
// transaction. There is no partial-update contract: the editor always
// submits the whole week.
func (r *TemplateRepository) ReplaceWeek(ctx context.Context, chefID string, templates []models.WeeklyTemplate) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin template replace: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM weekly_templates WHERE chef_id = $1", chefID); err != nil {
		return fmt.Errorf("clear weekly templates: %w", err)
	}

	now := time.Now().UTC()
	const insert = `INSERT INTO weekly_templates (id, chef_id, day_of_week, slot_ids, is_available, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i := range templates {
		t := &templates[i]
		t.ChefID = chefID
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		t.CreatedAt = now
		t.UpdatedAt = now
		if _, err := tx.ExecContext(ctx, insert, t.ID, t.ChefID, t.DayOfWeek, pq.Array([]string(t.SlotIDs)), t.IsAvailable, t.CreatedAt, t.UpdatedAt); err != nil {
			return fmt.Errorf("insert weekly template day %d: %w", t.DayOfWeek, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit template replace: %w", err)
	}
	return nil
}
