package models

import "time"

// Booking statuses owned by the booking subsystem. Only confirmed
// bookings participate in calendar overlay.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Booking is read-only input to the availability engine. EventTime is
// the stored "HH:MM" clock time; SlotID is set when the upstream schema
// carries an explicit slot, otherwise the slot is derived from EventTime.
type Booking struct {
	ID              string    `db:"id" json:"id"`
	Date            time.Time `db:"event_date" json:"event_date"`
	EventTime       string    `db:"event_time" json:"event_time"`
	SlotID          *string   `db:"slot_id" json:"slot_id,omitempty"`
	ChefID          *string   `db:"chef_id" json:"chef_id,omitempty"`
	Status          string    `db:"status" json:"status"`
	CustomerName    string    `db:"customer_name" json:"customer_name"`
	AdultCount      int       `db:"adult_count" json:"adult_count"`
	ChildCount      int       `db:"child_count" json:"child_count"`
	LocationAddress string    `db:"location_address" json:"location_address"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// BookingFilter narrows down booking range queries.
type BookingFilter struct {
	DateFrom time.Time
	DateTo   time.Time
	Status   string
	ChefID   string
}
