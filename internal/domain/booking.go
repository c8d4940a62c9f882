package domain

import (
	"sort"
	"time"

	"github.com/spf13/cast"

	"github.com/garagehub/garagectl/internal/format"
)

// Booking is one appointment as shown in the booking history. Raw fields
// keep the backend values for detail views; display fields are filled by
// the loader from the format package.
type Booking struct {
	ID                string    `json:"id"`
	RawDate           time.Time `json:"raw_date"`
	RawStatus         string    `json:"raw_status"`
	RawPrice          float64   `json:"raw_price"`
	Currency          string    `json:"currency"`
	Service           string    `json:"service"`
	ServiceCenterName string    `json:"service_center_name"`
	VehicleModel      string    `json:"vehicle_model"`
	Technician        string    `json:"technician"`
	Notes             string    `json:"notes"`

	// Localized display strings, resolved once at load time.
	DisplayDate   string `json:"display_date"`
	DisplayStatus string `json:"display_status"`
	DisplayPrice  string `json:"display_price"`
}

// NormalizeBooking maps a raw appointment payload onto the canonical
// shape. Date fields arrive as RFC3339, as bare dates, or as unix
// seconds depending on the endpoint; price may be a number or a string.
func NormalizeBooking(raw map[string]any) Booking {
	b := Booking{
		ID:                firstString(raw, "id", "_id", "appointment_id", "appointmentId", "booking_id"),
		RawStatus:         firstString(raw, "status", "state"),
		RawPrice:          firstFloat(raw, "price", "total_price", "totalPrice", "cost"),
		Currency:          firstString(raw, "currency"),
		Service:           firstString(raw, "service", "service_name", "serviceName", "service_type", "serviceType"),
		ServiceCenterName: firstString(raw, "service_center_name", "serviceCenterName", "center", "branch"),
		VehicleModel:      firstString(raw, "vehicle_model", "vehicleModel", "car_model", "carModel"),
		Technician:        firstString(raw, "technician", "staff_name", "staffName"),
		Notes:             firstString(raw, "notes", "description"),
	}
	b.RawDate = parseWhen(raw, "date", "appointment_date", "appointmentDate", "service_date", "scheduled_at", "scheduledAt")
	return b
}

// SortBookings orders bookings by raw date, newest first. Bookings with
// an unknown date sink to the end. The sort is stable so equal dates
// keep their fetch order.
func SortBookings(bs []Booking) {
	sort.SliceStable(bs, func(i, j int) bool {
		if bs[i].RawDate.IsZero() != bs[j].RawDate.IsZero() {
			return !bs[i].RawDate.IsZero()
		}
		return bs[i].RawDate.After(bs[j].RawDate)
	})
}

// firstFloat returns the first present numeric value among the given
// keys, coercing strings like "120.50" via cast.
func firstFloat(m map[string]any, keys ...string) float64 {
	for _, key := range keys {
		v, ok := m[key]
		if !ok || v == nil {
			continue
		}
		if f := cast.ToFloat64(v); f != 0 {
			return f
		}
		// A literal zero is still a valid price.
		if s := cast.ToString(v); s == "0" || s == "0.0" || s == "0.00" {
			return 0
		}
		if f, isFloat := v.(float64); isFloat {
			return f
		}
	}
	return 0
}

// parseWhen probes the given keys for a timestamp in any of the formats
// the backend is known to emit. String values go through
// format.ParseDate, the single home of the layout list. Returns the
// zero time when nothing parses; callers treat that as "date unknown".
func parseWhen(m map[string]any, keys ...string) time.Time {
	for _, key := range keys {
		v, ok := m[key]
		if !ok || v == nil {
			continue
		}
		switch tv := v.(type) {
		case time.Time:
			return tv
		case float64:
			if tv > 0 {
				return time.Unix(int64(tv), 0).UTC()
			}
		default:
			if t := format.ParseDate(cast.ToString(v)); !t.IsZero() {
				return t
			}
		}
	}
	return time.Time{}
}
