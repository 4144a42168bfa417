package models

import (
	"time"

	"github.com/lib/pq"
)

// WeeklyTemplate is a chef's default recurring availability for one
// weekday (0 = Sunday .. 6 = Saturday). At most one template per
// (chef_id, day_of_week) is authoritative; the store enforces this.
type WeeklyTemplate struct {
	ID          string         `db:"id" json:"id"`
	ChefID      string         `db:"chef_id" json:"chef_id"`
	DayOfWeek   int            `db:"day_of_week" json:"day_of_week"`
	SlotIDs     pq.StringArray `db:"slot_ids" json:"slot_ids"`
	IsAvailable bool           `db:"is_available" json:"is_available"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// DateOverride is a date-specific exception that fully replaces the
// weekly template's effect for that date. One override per (chef_id, date).
type DateOverride struct {
	ID          string         `db:"id" json:"id"`
	ChefID      string         `db:"chef_id" json:"chef_id"`
	Date        time.Time      `db:"date" json:"date"`
	SlotIDs     pq.StringArray `db:"slot_ids" json:"slot_ids"`
	IsAvailable bool           `db:"is_available" json:"is_available"`
	Reason      *string        `db:"reason" json:"reason,omitempty"`
	CreatedBy   *string        `db:"created_by" json:"created_by,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// HasSlot reports whether the template lists the slot.
func (t WeeklyTemplate) HasSlot(slotID string) bool {
	for _, id := range t.SlotIDs {
		if id == slotID {
			return true
		}
	}
	return false
}

// HasSlot reports whether the override lists the slot.
func (o DateOverride) HasSlot(slotID string) bool {
	for _, id := range o.SlotIDs {
		if id == slotID {
			return true
		}
	}
	return false
}
