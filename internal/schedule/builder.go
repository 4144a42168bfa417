package schedule

import "github.com/tableset/catering-api/internal/models"

// SlotCell is the computed view of one slot on one date: resolved
// availability plus any bookings occupying it. Booked takes visual
// precedence over availability because bookings are commitments while
// availability toggles are advisory; the resolved state is still
// reported for diagnostics.
type SlotCell struct {
	SlotID    string           `json:"slot_id"`
	Label     string           `json:"label"`
	Available bool             `json:"available"`
	Source    Source           `json:"source"`
	Booked    bool             `json:"booked"`
	Bookings  []models.Booking `json:"bookings,omitempty"`
}

// DayCell is the computed availability+booking view for one chef on one
// calendar date, the engine's primary output.
type DayCell struct {
	Date             string     `json:"date"`
	InReferenceMonth bool       `json:"in_reference_month"`
	IsToday          bool       `json:"is_today"`
	Slots            []SlotCell `json:"slots"`
}

// BuildDayCell composes resolver output with the booking index for one
// date. Pure and idempotent: identical inputs yield identical cells.
func BuildDayCell(date CalendarDate, templates TemplateSet, overrides OverrideSet, idx *BookingIndex) DayCell {
	resolved := Resolve(date.Date, templates, overrides)

	cells := make([]SlotCell, 0, len(catalog))
	for _, slot := range catalog {
		state := resolved[slot.ID]
		bookings := idx.Lookup(date.Date, slot.ID)
		cells = append(cells, SlotCell{
			SlotID:    slot.ID,
			Label:     slot.Label,
			Available: state.Available,
			Source:    state.Source,
			Booked:    len(bookings) > 0,
			Bookings:  bookings,
		})
	}

	return DayCell{
		Date:             DateKey(date.Date),
		InReferenceMonth: date.InReferenceMonth,
		IsToday:          date.IsToday,
		Slots:            cells,
	}
}

// BuildRange builds one day cell per generated calendar date.
func BuildRange(dates []CalendarDate, templates TemplateSet, overrides OverrideSet, idx *BookingIndex) []DayCell {
	out := make([]DayCell, 0, len(dates))
	for _, d := range dates {
		out = append(out, BuildDayCell(d, templates, overrides, idx))
	}
	return out
}
