package schedule

import "time"

// ViewMode selects the calendar grid shape.
type ViewMode string

const (
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// monthGridSize keeps the month view a fixed 6x7 grid so the layout
// never jumps between months.
const monthGridSize = 42

// CalendarDate is one cell position in a generated range.
type CalendarDate struct {
	Date             time.Time `json:"date"`
	InReferenceMonth bool      `json:"in_reference_month"`
	IsToday          bool      `json:"is_today"`
}

// GenerateRange produces the ordered dates a week or month view
// displays. Week mode returns the 7 days of ref's Sunday-started week.
// Month mode returns 42 days: the full reference month plus leading
// padding from the previous month to align the 1st on its weekday
// column, and trailing padding from the next month to fill the grid.
// The result is a pure function of (ref, mode, today).
func GenerateRange(ref time.Time, mode ViewMode, today time.Time) []CalendarDate {
	if mode == ViewMonth {
		return monthRange(ref, today)
	}
	return weekRange(ref, today)
}

func weekRange(ref, today time.Time) []CalendarDate {
	start := midnight(ref).AddDate(0, 0, -int(ref.Weekday()))
	out := make([]CalendarDate, 0, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		out = append(out, CalendarDate{
			Date:             d,
			InReferenceMonth: d.Month() == ref.Month() && d.Year() == ref.Year(),
			IsToday:          sameDay(d, today),
		})
	}
	return out
}

func monthRange(ref, today time.Time) []CalendarDate {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	start := first.AddDate(0, 0, -int(first.Weekday()))
	out := make([]CalendarDate, 0, monthGridSize)
	for i := 0; i < monthGridSize; i++ {
		d := start.AddDate(0, 0, i)
		out = append(out, CalendarDate{
			Date:             d,
			InReferenceMonth: d.Month() == ref.Month() && d.Year() == ref.Year(),
			IsToday:          sameDay(d, today),
		})
	}
	return out
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
