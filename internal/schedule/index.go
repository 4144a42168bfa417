package schedule

import (
	"strconv"
	"strings"
	"time"

	"github.com/tableset/catering-api/internal/models"
)

// BookingIndex maps (date, slot) to the confirmed bookings occupying
// it. The index is rebuilt from scratch for every range-scoped fetch;
// it never patches incrementally.
type BookingIndex struct {
	bySlot    map[string][]models.Booking
	anomalies []models.Booking
}

// BuildIndex indexes bookings by (date, slot). The slot is the
// booking's explicit slot id when present, otherwise derived from its
// event time via the hour buckets in SlotForHour. Bookings that map to
// no slot are kept aside as anomalies rather than dropped silently.
// Input order is preserved within a slot, so double bookings surface in
// arrival order.
func BuildIndex(bookings []models.Booking) *BookingIndex {
	idx := &BookingIndex{bySlot: make(map[string][]models.Booking)}
	for _, b := range bookings {
		slotID, ok := slotForBooking(b)
		if !ok {
			idx.anomalies = append(idx.anomalies, b)
			continue
		}
		key := indexKey(b.Date, slotID)
		idx.bySlot[key] = append(idx.bySlot[key], b)
	}
	return idx
}

// Lookup returns the bookings occupying (date, slot), possibly empty
// and possibly more than one.
func (idx *BookingIndex) Lookup(date time.Time, slotID string) []models.Booking {
	return idx.bySlot[indexKey(date, slotID)]
}

// Anomalies returns bookings whose time mapped to no catalog slot.
// These are excluded from the calendar and flagged for operator review.
func (idx *BookingIndex) Anomalies() []models.Booking {
	return idx.anomalies
}

func slotForBooking(b models.Booking) (string, bool) {
	if b.SlotID != nil && ValidSlotID(*b.SlotID) {
		return *b.SlotID, true
	}
	hour, ok := parseHour(b.EventTime)
	if !ok {
		return "", false
	}
	return SlotForHour(hour)
}

// parseHour extracts the hour from an "HH:MM" clock string.
func parseHour(clock string) (int, bool) {
	hh, _, found := strings.Cut(clock, ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}

func indexKey(date time.Time, slotID string) string {
	return DateKey(date) + "|" + slotID
}
