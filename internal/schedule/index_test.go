package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tableset/catering-api/internal/models"
)

func confirmedBooking(id, clock string) models.Booking {
	return models.Booking{
		ID:        id,
		Date:      monday,
		EventTime: clock,
		Status:    models.BookingStatusConfirmed,
	}
}

func TestSlotForHourBuckets(t *testing.T) {
	cases := []struct {
		hour   int
		want   string
		mapped bool
	}{
		{11, SlotNoon, true},
		{12, SlotNoon, true},
		{13, SlotNoon, true},
		{14, SlotThreePM, true},
		{16, SlotThreePM, true},
		{17, SlotSixPM, true},
		{19, SlotSixPM, true},
		{20, SlotNinePM, true},
		{22, SlotNinePM, true},
		{10, "", false},
		{23, "", false},
		{0, "", false},
	}
	for _, tc := range cases {
		got, ok := SlotForHour(tc.hour)
		assert.Equal(t, tc.mapped, ok, "hour %d", tc.hour)
		assert.Equal(t, tc.want, got, "hour %d", tc.hour)
	}
}

func TestBuildIndexDerivesSlotFromTime(t *testing.T) {
	idx := BuildIndex([]models.Booking{confirmedBooking("b1", "18:00")})

	got := idx.Lookup(monday, SlotSixPM)
	require.Len(t, got, 1)
	assert.Equal(t, "b1", got[0].ID)
	assert.Empty(t, idx.Lookup(monday, SlotNoon))
	assert.Empty(t, idx.Anomalies())
}

func TestBuildIndexExplicitSlotWins(t *testing.T) {
	slot := SlotNinePM
	b := confirmedBooking("b1", "18:00")
	b.SlotID = &slot

	idx := BuildIndex([]models.Booking{b})
	assert.Empty(t, idx.Lookup(monday, SlotSixPM))
	assert.Len(t, idx.Lookup(monday, SlotNinePM), 1)
}

func TestBuildIndexAnomalies(t *testing.T) {
	idx := BuildIndex([]models.Booking{
		confirmedBooking("early", "07:30"),
		confirmedBooking("late", "23:15"),
		confirmedBooking("garbage", "lunchtime"),
		confirmedBooking("ok", "12:00"),
	})

	anomalies := idx.Anomalies()
	require.Len(t, anomalies, 3)
	assert.Equal(t, "early", anomalies[0].ID)
	assert.Len(t, idx.Lookup(monday, SlotNoon), 1)
}

func TestBuildIndexPreservesDoubleBookingOrder(t *testing.T) {
	idx := BuildIndex([]models.Booking{
		confirmedBooking("first", "18:00"),
		confirmedBooking("second", "18:30"),
	})

	got := idx.Lookup(monday, SlotSixPM)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].ID)
	assert.Equal(t, "second", got[1].ID)
}

func TestBuildIndexSeparatesDates(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)
	other := confirmedBooking("tue", "12:00")
	other.Date = tuesday

	idx := BuildIndex([]models.Booking{confirmedBooking("mon", "12:00"), other})
	assert.Len(t, idx.Lookup(monday, SlotNoon), 1)
	assert.Len(t, idx.Lookup(tuesday, SlotNoon), 1)
}

func TestBuildIndexTruncatesTimestampToDate(t *testing.T) {
	b := confirmedBooking("b1", "12:00")
	b.Date = time.Date(2025, time.March, 10, 16, 45, 12, 0, time.UTC)

	idx := BuildIndex([]models.Booking{b})
	assert.Len(t, idx.Lookup(monday, SlotNoon), 1)
}
