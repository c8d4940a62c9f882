package loader

import (
	"context"
	"strings"

	"github.com/garagehub/garagectl/internal/api"
	"github.com/garagehub/garagectl/internal/domain"
	"github.com/garagehub/garagectl/internal/format"
)

// BookingsAPI is the slice of the API client the booking history needs.
type BookingsAPI interface {
	Appointments(ctx context.Context) ([]map[string]any, error)
}

// BookingsLoader fetches the booking history, normalizes it and
// resolves all display strings once, newest first.
type BookingsLoader struct {
	sm       stateMachine[[]domain.Booking]
	client   BookingsAPI
	locale   string
	currency string
}

// NewBookingsLoader creates a BookingsLoader. locale and currency are
// the config defaults used when a booking carries no currency of its
// own.
func NewBookingsLoader(client BookingsAPI, locale, currency string) *BookingsLoader {
	return &BookingsLoader{client: client, locale: locale, currency: currency}
}

// Load fetches and rebuilds the booking list. The list is recomputed
// fresh on every call; bookings are never mutated in place afterwards.
func (l *BookingsLoader) Load(ctx context.Context) error {
	seq := l.sm.begin()

	raw, err := l.client.Appointments(ctx)
	if err != nil {
		l.sm.fail(seq, api.Classify(err))
		return err
	}

	bookings := make([]domain.Booking, 0, len(raw))
	for _, item := range raw {
		b := domain.NormalizeBooking(item)
		cur := b.Currency
		if cur == "" {
			cur = l.currency
		}
		b.DisplayDate = format.DisplayDate(b.RawDate)
		b.DisplayStatus = format.StatusLabel(b.RawStatus)
		b.DisplayPrice = format.Money(b.RawPrice, cur, l.locale)
		bookings = append(bookings, b)
	}
	domain.SortBookings(bookings)

	l.sm.succeed(seq, bookings)
	return nil
}

// Retry re-fetches. Identical contract to Load.
func (l *BookingsLoader) Retry(ctx context.Context) error {
	return l.Load(ctx)
}

// Snapshot returns the current render state.
func (l *BookingsLoader) Snapshot() State[[]domain.Booking] {
	return l.sm.snapshot()
}

// Filter returns the bookings matching a search query, preserving
// order. Purely local; never triggers a fetch. An empty query returns
// everything.
func (l *BookingsLoader) Filter(query string) []domain.Booking {
	data := l.sm.snapshot().Data
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return data
	}
	var out []domain.Booking
	for _, b := range data {
		haystack := strings.ToLower(strings.Join([]string{
			b.ID, b.Service, b.ServiceCenterName, b.VehicleModel,
			b.Technician, b.DisplayStatus, b.DisplayDate,
		}, " "))
		if strings.Contains(haystack, query) {
			out = append(out, b)
		}
	}
	return out
}

// GroupByStatus buckets the current bookings by display status,
// preserving order inside each bucket. Used by the work-log view.
func (l *BookingsLoader) GroupByStatus() map[string][]domain.Booking {
	groups := make(map[string][]domain.Booking)
	for _, b := range l.sm.snapshot().Data {
		groups[b.DisplayStatus] = append(groups[b.DisplayStatus], b)
	}
	return groups
}
