package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBooking(t *testing.T) {
	t.Parallel()

	raw := map[string]any{
		"appointment_id":      "a-9",
		"date":                "2024-03-05T09:00:00Z",
		"status":              "completed",
		"price":               "120.50",
		"service_name":        "Oil change",
		"service_center_name": "Downtown",
		"vehicle_model":       "Corolla",
	}

	b := NormalizeBooking(raw)
	assert.Equal(t, "a-9", b.ID)
	assert.Equal(t, "completed", b.RawStatus)
	assert.InDelta(t, 120.50, b.RawPrice, 0.001, "string prices must coerce")
	assert.Equal(t, "Oil change", b.Service)
	assert.Equal(t, "Downtown", b.ServiceCenterName)
	assert.Equal(t, "Corolla", b.VehicleModel)
	assert.Equal(t, time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC), b.RawDate)
}

func TestNormalizeBookingUnixDate(t *testing.T) {
	t.Parallel()

	b := NormalizeBooking(map[string]any{"id": "a-1", "date": float64(1709629200)})
	assert.False(t, b.RawDate.IsZero())
}

func TestNormalizeBookingDateLayouts(t *testing.T) {
	t.Parallel()

	// Every layout format.ParseDate knows must work here too.
	for _, date := range []string{
		"2024-03-05T09:00:00Z",
		"2024-03-05T09:00:00",
		"2024-03-05 09:00:00",
		"2024-03-05",
	} {
		b := NormalizeBooking(map[string]any{"id": "a-1", "date": date})
		assert.False(t, b.RawDate.IsZero(), "date %q must parse", date)
		assert.Equal(t, time.March, b.RawDate.Month())
	}
}

func TestNormalizeBookingMissingDate(t *testing.T) {
	t.Parallel()

	b := NormalizeBooking(map[string]any{"id": "a-1", "date": "garbage"})
	assert.True(t, b.RawDate.IsZero())
}

func TestSortBookingsDescending(t *testing.T) {
	t.Parallel()

	older := NormalizeBooking(map[string]any{"id": "old", "date": "2024-01-10"})
	newer := NormalizeBooking(map[string]any{"id": "new", "date": "2024-03-05"})
	undated := NormalizeBooking(map[string]any{"id": "none"})

	bs := []Booking{undated, older, newer}
	SortBookings(bs)

	assert.Equal(t, "new", bs[0].ID, "2024-03-05 must sort first")
	assert.Equal(t, "old", bs[1].ID)
	assert.Equal(t, "none", bs[2].ID, "undated bookings sink to the end")
}

func TestSortBookingsStable(t *testing.T) {
	t.Parallel()

	a := NormalizeBooking(map[string]any{"id": "a", "date": "2024-02-01"})
	b := NormalizeBooking(map[string]any{"id": "b", "date": "2024-02-01"})

	bs := []Booking{a, b}
	SortBookings(bs)
	assert.Equal(t, []string{"a", "b"}, []string{bs[0].ID, bs[1].ID})
}
