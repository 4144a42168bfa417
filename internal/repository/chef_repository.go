package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tableset/catering-api/internal/models"
)

// ChefRepository persists the chef roster.
type ChefRepository struct {
	db *sqlx.DB
}

// NewChefRepository constructs a chef repository.
func NewChefRepository(db *sqlx.DB) *ChefRepository {
	return &ChefRepository{db: db}
}

const chefColumns = "id, name, email, phone, station_id, avatar_url, active, created_at, updated_at"

// List returns chefs matching the filter with a total count.
func (r *ChefRepository) List(ctx context.Context, filter models.ChefFilter) ([]models.Chef, int, error) {
	where := []string{"1=1"}
	args := []interface{}{}
	if filter.StationID != "" {
		where = append(where, fmt.Sprintf("station_id = $%d", len(args)+1))
		args = append(args, filter.StationID)
	}
	if filter.Search != "" {
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, "%"+filter.Search+"%")
	}
	if filter.Active != nil {
		where = append(where, fmt.Sprintf("active = $%d", len(args)+1))
		args = append(args, *filter.Active)
	}
	whereClause := strings.Join(where, " AND ")

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 200 {
		size = 20
	}
	offset := (page - 1) * size

	orderBy := "name ASC"
	if filter.SortBy == "created_at" {
		orderBy = "created_at DESC"
	}

	query := fmt.Sprintf("SELECT %s FROM chefs WHERE %s ORDER BY %s LIMIT %d OFFSET %d",
		chefColumns, whereClause, orderBy, size, offset)
	var chefs []models.Chef
	if err := r.db.SelectContext(ctx, &chefs, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list chefs: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM chefs WHERE %s", whereClause)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count chefs: %w", err)
	}
	return chefs, total, nil
}

// FindByID fetches a chef.
func (r *ChefRepository) FindByID(ctx context.Context, id string) (*models.Chef, error) {
	query := fmt.Sprintf("SELECT %s FROM chefs WHERE id = $1", chefColumns)
	var chef models.Chef
	if err := r.db.GetContext(ctx, &chef, query, id); err != nil {
		return nil, err
	}
	return &chef, nil
}

// ExistsByEmail reports whether another chef already uses the email.
func (r *ChefRepository) ExistsByEmail(ctx context.Context, email, excludeID string) (bool, error) {
	query := "SELECT 1 FROM chefs WHERE LOWER(email) = LOWER($1)"
	args := []interface{}{email}
	if excludeID != "" {
		query += " AND id <> $2"
		args = append(args, excludeID)
	}
	var exists int
	if err := r.db.GetContext(ctx, &exists, query+" LIMIT 1", args...); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check chef email: %w", err)
	}
	return true, nil
}

// Create inserts a chef.
func (r *ChefRepository) Create(ctx context.Context, chef *models.Chef) error {
	if chef.ID == "" {
		chef.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if chef.CreatedAt.IsZero() {
		chef.CreatedAt = now
	}
	chef.UpdatedAt = now
	const query = `INSERT INTO chefs (id, name, email, phone, station_id, avatar_url, active, created_at, updated_at)
VALUES (:id, :name, :email, :phone, :station_id, :avatar_url, :active, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, chef); err != nil {
		return fmt.Errorf("create chef: %w", err)
	}
	return nil
}

// Update modifies a chef.
func (r *ChefRepository) Update(ctx context.Context, chef *models.Chef) error {
	chef.UpdatedAt = time.Now().UTC()
	const query = `UPDATE chefs SET name = :name, email = :email, phone = :phone, station_id = :station_id,
avatar_url = :avatar_url, active = :active, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, chef); err != nil {
		return fmt.Errorf("update chef: %w", err)
	}
	return nil
}

// Deactivate soft-deletes a chef from the roster.
func (r *ChefRepository) Deactivate(ctx context.Context, id string) error {
	const query = `UPDATE chefs SET active = FALSE, updated_at = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, time.Now().UTC()); err != nil {
		return fmt.Errorf("deactivate chef: %w", err)
	}
	return nil
}
