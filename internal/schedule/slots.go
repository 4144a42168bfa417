// Package schedule implements the availability resolution engine for the
// chef calendar: the fixed slot catalog, week/month range generation,
// template/override precedence, and the booking overlay. Everything in
// this package is a pure function over its inputs; persistence and
// transport live elsewhere.
package schedule

import (
	"time"

	"github.com/tableset/catering-api/internal/models"
)

// Slot identifiers for the four fixed daily service windows. These are
// configuration, not user data, and double as foreign keys from
// templates, overrides and derived booking lookups.
const (
	SlotNoon    = "noon"
	SlotThreePM = "3pm"
	SlotSixPM   = "6pm"
	SlotNinePM  = "9pm"
)

var catalog = []models.TimeSlot{
	{ID: SlotNoon, ClockTime: "12:00", Label: "Noon"},
	{ID: SlotThreePM, ClockTime: "15:00", Label: "3:00 PM"},
	{ID: SlotSixPM, ClockTime: "18:00", Label: "6:00 PM"},
	{ID: SlotNinePM, ClockTime: "21:00", Label: "9:00 PM"},
}

// AllSlots returns the ordered slot catalog (noon, 3pm, 6pm, 9pm). The
// returned slice is a copy; callers may not mutate the catalog.
func AllSlots() []models.TimeSlot {
	out := make([]models.TimeSlot, len(catalog))
	copy(out, catalog)
	return out
}

// ValidSlotID reports whether id names a catalog slot.
func ValidSlotID(id string) bool {
	for _, s := range catalog {
		if s.ID == id {
			return true
		}
	}
	return false
}

// SlotForHour maps an hour of day to the nearest catalog slot using
// inclusive buckets: [11,13] noon, [14,16] 3pm, [17,19] 6pm, [20,22] 9pm.
// Hours outside every bucket return ("", false); such bookings are
// excluded from the index and surfaced as anomalies.
func SlotForHour(hour int) (string, bool) {
	switch {
	case hour >= 11 && hour <= 13:
		return SlotNoon, true
	case hour >= 14 && hour <= 16:
		return SlotThreePM, true
	case hour >= 17 && hour <= 19:
		return SlotSixPM, true
	case hour >= 20 && hour <= 22:
		return SlotNinePM, true
	default:
		return "", false
	}
}

// DateKey truncates a timestamp to calendar-date granularity, the key
// used throughout the engine for override and booking lookups.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
