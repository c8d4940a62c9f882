package domain

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeProfileFieldFallbacks(t *testing.T) {
	t.Parallel()

	name := gofakeit.Name()
	email := gofakeit.Email()
	phone := gofakeit.Phone()

	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"snake_case", map[string]any{
			"user_id": "u-1", "full_name": name, "email": email, "phone": phone,
		}},
		{"camelCase", map[string]any{
			"userId": "u-1", "fullName": name, "email": email, "phoneNumber": phone,
		}},
		{"legacy name field", map[string]any{
			"id": "u-1", "name": name, "email": email, "phone_number": phone,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := NormalizeProfile(tt.raw)
			assert.Equal(t, "u-1", p.UserID)
			assert.Equal(t, name, p.FullName)
			assert.Equal(t, email, p.Email)
			assert.Equal(t, phone, p.Phone)
		})
	}
}

func TestNormalizeProfileNumericID(t *testing.T) {
	t.Parallel()

	p := NormalizeProfile(map[string]any{"id": float64(42)})
	assert.Equal(t, "42", p.UserID)
}

func TestNormalizeProfileVehicleAliases(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"vehicles", "cars"} {
		raw := map[string]any{
			"id": "u-1",
			key: []any{
				map[string]any{"id": "v-1", "model": "Civic", "plate": "AB-123", "year": float64(2019)},
			},
		}
		p := NormalizeProfile(raw)
		require.Len(t, p.Vehicles, 1, "key %q", key)
		assert.Equal(t, "Civic", p.Vehicles[0].Model)
		assert.Equal(t, "AB-123", p.Vehicles[0].Plate)
		assert.Equal(t, 2019, p.Vehicles[0].Year)
	}
}

func TestProfileMerge(t *testing.T) {
	t.Parallel()

	base := Profile{UserID: "u-1", FullName: "Old Name", Email: "old@x.com", Phone: "111"}
	merged := base.Merge(Profile{FullName: "New Name"})

	assert.Equal(t, "New Name", merged.FullName)
	assert.Equal(t, "old@x.com", merged.Email, "empty response fields must not wipe local ones")
	assert.Equal(t, "u-1", merged.UserID)
}
