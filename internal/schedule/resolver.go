package schedule

import (
	"time"

	"github.com/tableset/catering-api/internal/models"
)

// Source records which record decided a slot's availability.
type Source string

const (
	SourceTemplate Source = "TEMPLATE"
	SourceOverride Source = "OVERRIDE"
	SourceNone     Source = "NONE"
)

// SlotAvailability is the resolved state of one slot on one date.
type SlotAvailability struct {
	Available bool   `json:"available"`
	Source    Source `json:"source"`
}

// TemplateSet holds one chef's weekly templates keyed by weekday, so
// uniqueness per (chef, weekday) is structural rather than a runtime
// invariant. When the input carries duplicates for a weekday the most
// recently updated record wins.
type TemplateSet struct {
	byDay map[time.Weekday]models.WeeklyTemplate
}

// NewTemplateSet indexes templates by weekday.
func NewTemplateSet(templates []models.WeeklyTemplate) TemplateSet {
	byDay := make(map[time.Weekday]models.WeeklyTemplate, len(templates))
	for _, t := range templates {
		day := time.Weekday(t.DayOfWeek)
		if existing, ok := byDay[day]; ok && existing.UpdatedAt.After(t.UpdatedAt) {
			continue
		}
		byDay[day] = t
	}
	return TemplateSet{byDay: byDay}
}

// ForDay returns the template governing the weekday, if any.
func (s TemplateSet) ForDay(day time.Weekday) (models.WeeklyTemplate, bool) {
	t, ok := s.byDay[day]
	return t, ok
}

// OverrideSet holds one chef's date overrides keyed by calendar date.
type OverrideSet struct {
	byDate map[string]models.DateOverride
}

// NewOverrideSet indexes overrides by date key.
func NewOverrideSet(overrides []models.DateOverride) OverrideSet {
	byDate := make(map[string]models.DateOverride, len(overrides))
	for _, o := range overrides {
		byDate[DateKey(o.Date)] = o
	}
	return OverrideSet{byDate: byDate}
}

// ForDate returns the override for the date, if any.
func (s OverrideSet) ForDate(date time.Time) (models.DateOverride, bool) {
	o, ok := s.byDate[DateKey(date)]
	return o, ok
}

// Resolve computes per-slot availability for one chef on one date.
// Precedence, per slot: an override for the date is authoritative for
// every slot whether or not it lists the slot; otherwise the weekday
// template decides; with neither, the slot is unavailable (fail-safe).
// Overrides replace the template wholesale, never merge with it.
func Resolve(date time.Time, templates TemplateSet, overrides OverrideSet) map[string]SlotAvailability {
	out := make(map[string]SlotAvailability, len(catalog))

	if o, ok := overrides.ForDate(date); ok {
		for _, slot := range catalog {
			out[slot.ID] = SlotAvailability{
				Available: o.IsAvailable && o.HasSlot(slot.ID),
				Source:    SourceOverride,
			}
		}
		return out
	}

	if t, ok := templates.ForDay(date.Weekday()); ok {
		for _, slot := range catalog {
			out[slot.ID] = SlotAvailability{
				Available: t.IsAvailable && t.HasSlot(slot.ID),
				Source:    SourceTemplate,
			}
		}
		return out
	}

	for _, slot := range catalog {
		out[slot.ID] = SlotAvailability{Available: false, Source: SourceNone}
	}
	return out
}

// SeedOverride builds the override produced by toggling a single slot
// on a date. The new record starts from the currently resolved state of
// all four slots, then flips the toggled one, so an override created
// from a single toggle is a complete day record and never blanks the
// other slots. Toggling on top of an existing override mutates only the
// toggled slot.
func SeedOverride(chefID string, date time.Time, slotID string, templates TemplateSet, overrides OverrideSet) models.DateOverride {
	resolved := Resolve(date, templates, overrides)

	slots := make([]string, 0, len(catalog))
	for _, slot := range catalog {
		state := resolved[slot.ID]
		available := state.Available
		if slot.ID == slotID {
			available = !available
		}
		if available {
			slots = append(slots, slot.ID)
		}
	}

	o := models.DateOverride{
		ChefID:      chefID,
		Date:        midnight(date),
		SlotIDs:     slots,
		IsAvailable: len(slots) > 0,
	}
	if existing, ok := overrides.ForDate(date); ok {
		o.ID = existing.ID
		o.Reason = existing.Reason
		o.CreatedBy = existing.CreatedBy
	}
	return o
}
