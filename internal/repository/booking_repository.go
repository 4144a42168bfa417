package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/tableset/catering-api/internal/models"
)

// BookingRepository reads bookings and applies chef assignments. The
// booking lifecycle (creation, payment, cancellation) is owned by the
// booking subsystem; this repository only covers what the calendar and
// the assignment workflow need.
type BookingRepository struct {
	db *sqlx.DB
}

// NewBookingRepository constructs a booking repository.
func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = "id, event_date, event_time, slot_id, chef_id, status, customer_name, adult_count, child_count, location_address, created_at, updated_at"

// ListRange returns bookings inside [filter.DateFrom, filter.DateTo],
// optionally narrowed to one status or one chef.
func (r *BookingRepository) ListRange(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	where := []string{"event_date BETWEEN $1 AND $2"}
	args := []interface{}{filter.DateFrom, filter.DateTo}
	if filter.Status != "" {
		where = append(where, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}
	if filter.ChefID != "" {
		where = append(where, fmt.Sprintf("chef_id = $%d", len(args)+1))
		args = append(args, filter.ChefID)
	}

	query := fmt.Sprintf("SELECT %s FROM bookings WHERE %s ORDER BY event_date ASC, event_time ASC",
		bookingColumns, strings.Join(where, " AND "))
	var bookings []models.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// FindByID fetches a booking.
func (r *BookingRepository) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	query := fmt.Sprintf("SELECT %s FROM bookings WHERE id = $1", bookingColumns)
	var booking models.Booking
	if err := r.db.GetContext(ctx, &booking, query, id); err != nil {
		return nil, err
	}
	return &booking, nil
}

// AssignChef sets the booking's chef.
func (r *BookingRepository) AssignChef(ctx context.Context, bookingID, chefID string) error {
	return r.setChef(ctx, bookingID, &chefID)
}

// UnassignChef clears the booking's chef.
func (r *BookingRepository) UnassignChef(ctx context.Context, bookingID string) error {
	return r.setChef(ctx, bookingID, nil)
}

func (r *BookingRepository) setChef(ctx context.Context, bookingID string, chefID *string) error {
	const query = `UPDATE bookings SET chef_id = $2, updated_at = $3 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, bookingID, chefID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("set booking chef: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set booking chef: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
