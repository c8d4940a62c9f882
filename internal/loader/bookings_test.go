package loader

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingsAPI implements BookingsAPI.
type fakeBookingsAPI struct {
	rows []map[string]any
	err  error
}

func (f *fakeBookingsAPI) Appointments(ctx context.Context) ([]map[string]any, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func sampleBookings() []map[string]any {
	return []map[string]any{
		{"id": "a-1", "date": "2024-01-10", "status": "completed", "price": 80.0, "service_name": "Oil change", "vehicle_model": "Corolla"},
		{"id": "a-2", "date": "2024-03-05", "status": "PENDING", "price": "150", "service_name": "Brake service", "vehicle_model": "Civic"},
	}
}

func TestBookingsLoadSortsDescending(t *testing.T) {
	t.Parallel()

	l := NewBookingsLoader(&fakeBookingsAPI{rows: sampleBookings()}, "en", "USD")
	require.NoError(t, l.Load(context.Background()))

	data := l.Snapshot().Data
	require.Len(t, data, 2)
	assert.Equal(t, "a-2", data[0].ID, "2024-03-05 must come first")
	assert.Equal(t, "a-1", data[1].ID)
}

func TestBookingsDisplayFields(t *testing.T) {
	t.Parallel()

	l := NewBookingsLoader(&fakeBookingsAPI{rows: sampleBookings()}, "en", "USD")
	require.NoError(t, l.Load(context.Background()))

	newest := l.Snapshot().Data[0]
	assert.Equal(t, "Mar 5, 2024", newest.DisplayDate)
	assert.Equal(t, "Pending", newest.DisplayStatus, "status label is case-insensitive")
	assert.Contains(t, newest.DisplayPrice, "150", "string price coerced and formatted")
	assert.Contains(t, newest.DisplayPrice, "$")
}

func TestBookingsFilterIsLocal(t *testing.T) {
	t.Parallel()

	client := &fakeBookingsAPI{rows: sampleBookings()}
	l := NewBookingsLoader(client, "en", "USD")
	require.NoError(t, l.Load(context.Background()))

	// Break the backend: filtering must still work from loaded state.
	client.err = errors.New("backend gone")

	got := l.Filter("brake")
	require.Len(t, got, 1)
	assert.Equal(t, "a-2", got[0].ID)

	assert.Len(t, l.Filter(""), 2, "empty query returns everything")
	assert.Empty(t, l.Filter("no such thing"))
}

func TestBookingsFailureKeepsStaleData(t *testing.T) {
	t.Parallel()

	client := &fakeBookingsAPI{rows: sampleBookings()}
	l := NewBookingsLoader(client, "en", "USD")
	require.NoError(t, l.Load(context.Background()))

	client.err = errors.New("network down")
	require.Error(t, l.Retry(context.Background()))

	st := l.Snapshot()
	assert.Len(t, st.Data, 2, "stale bookings stay visible")
	assert.NotEmpty(t, st.Err)
	assert.False(t, st.Loading)
}

func TestBookingsGroupByStatus(t *testing.T) {
	t.Parallel()

	l := NewBookingsLoader(&fakeBookingsAPI{rows: sampleBookings()}, "en", "USD")
	require.NoError(t, l.Load(context.Background()))

	groups := l.GroupByStatus()
	assert.Len(t, groups["Completed"], 1)
	assert.Len(t, groups["Pending"], 1)
}

func TestBookingsEmptyList(t *testing.T) {
	t.Parallel()

	l := NewBookingsLoader(&fakeBookingsAPI{}, "en", "USD")
	require.NoError(t, l.Load(context.Background()))

	st := l.Snapshot()
	assert.True(t, st.HasData, "loaded-empty is distinct from never-loaded")
	assert.Empty(t, st.Data)
}
