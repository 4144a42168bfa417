package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tableset/catering-api/internal/models"
)

func mondayCell() CalendarDate {
	return CalendarDate{Date: monday, InReferenceMonth: true}
}

func TestBuildDayCellBookingOverlay(t *testing.T) {
	templates := NewTemplateSet([]models.WeeklyTemplate{fullMondayTemplate()})
	idx := BuildIndex([]models.Booking{confirmedBooking("b1", "18:00")})

	cell := BuildDayCell(mondayCell(), templates, NewOverrideSet(nil), idx)
	require.Len(t, cell.Slots, 4)
	assert.Equal(t, []string{SlotNoon, SlotThreePM, SlotSixPM, SlotNinePM},
		[]string{cell.Slots[0].SlotID, cell.Slots[1].SlotID, cell.Slots[2].SlotID, cell.Slots[3].SlotID},
		"slots must follow catalog order")

	six := cell.Slots[2]
	assert.True(t, six.Booked)
	require.Len(t, six.Bookings, 1)
	assert.Equal(t, "b1", six.Bookings[0].ID)
	assert.True(t, six.Available, "underlying availability is still reported")
}

func TestBuildDayCellBookedWinsOverUnavailable(t *testing.T) {
	// No template, no override: the slot resolves unavailable, yet an
	// existing booking must still render as booked.
	idx := BuildIndex([]models.Booking{confirmedBooking("b1", "12:30")})

	cell := BuildDayCell(mondayCell(), NewTemplateSet(nil), NewOverrideSet(nil), idx)
	noon := cell.Slots[0]
	assert.False(t, noon.Available)
	assert.Equal(t, SourceNone, noon.Source)
	assert.True(t, noon.Booked)
}

func TestBuildDayCellDoubleBookingReported(t *testing.T) {
	idx := BuildIndex([]models.Booking{
		confirmedBooking("first", "18:00"),
		confirmedBooking("second", "19:00"),
	})

	cell := BuildDayCell(mondayCell(), NewTemplateSet(nil), NewOverrideSet(nil), idx)
	six := cell.Slots[2]
	assert.True(t, six.Booked)
	assert.Len(t, six.Bookings, 2, "double bookings are surfaced, never dropped")
	assert.Equal(t, "first", six.Bookings[0].ID)
}

func TestBuildDayCellIdempotent(t *testing.T) {
	templates := NewTemplateSet([]models.WeeklyTemplate{fullMondayTemplate()})
	overrides := NewOverrideSet([]models.DateOverride{{
		ChefID:      "chef-1",
		Date:        monday,
		SlotIDs:     []string{SlotSixPM},
		IsAvailable: true,
	}})
	idx := BuildIndex([]models.Booking{confirmedBooking("b1", "18:00")})

	first := BuildDayCell(mondayCell(), templates, overrides, idx)
	second := BuildDayCell(mondayCell(), templates, overrides, idx)
	assert.Equal(t, first, second)
}

func TestBuildRangeOneCellPerDate(t *testing.T) {
	dates := GenerateRange(monday, ViewWeek, monday)
	cells := BuildRange(dates, NewTemplateSet(nil), NewOverrideSet(nil), BuildIndex(nil))
	require.Len(t, cells, 7)
	for i, cell := range cells {
		assert.Equal(t, DateKey(dates[i].Date), cell.Date)
		assert.Len(t, cell.Slots, 4)
	}
}
