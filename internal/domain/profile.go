// Package domain defines the canonical shapes the client works with and
// the normalization functions that map the backend's inconsistent JSON
// payloads onto them. All field-name fallback resolution happens here,
// once, at the data-loading boundary.
package domain

import (
	"github.com/spf13/cast"
)

// Profile is the canonical current-user record.
type Profile struct {
	UserID   string    `json:"user_id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Address  string    `json:"address"`
	Avatar   string    `json:"avatar"` // data URI or URL
	Role     string    `json:"role"`
	Vehicles []Vehicle `json:"vehicles"`
}

// Vehicle is one vehicle registered on a profile.
type Vehicle struct {
	ID    string `json:"id"`
	Model string `json:"model"`
	Plate string `json:"plate"`
	Year  int    `json:"year"`
}

// NormalizeProfile maps a raw profile payload onto the canonical shape.
// The backend is not consistent across endpoints, so each field probes
// its known aliases in priority order.
func NormalizeProfile(raw map[string]any) Profile {
	p := Profile{
		UserID:   firstString(raw, "user_id", "userId", "id", "_id"),
		FullName: firstString(raw, "full_name", "fullName", "name"),
		Email:    firstString(raw, "email"),
		Phone:    firstString(raw, "phone", "phone_number", "phoneNumber"),
		Address:  firstString(raw, "address"),
		Avatar:   firstString(raw, "avatar", "avatar_url", "avatarUrl", "image"),
		Role:     firstString(raw, "role", "user_type", "userType"),
	}

	for _, key := range []string{"vehicles", "cars"} {
		if v, ok := raw[key]; ok {
			for _, item := range cast.ToSlice(v) {
				m, ok := item.(map[string]any)
				if !ok {
					continue
				}
				p.Vehicles = append(p.Vehicles, Vehicle{
					ID:    firstString(m, "id", "_id", "vehicle_id"),
					Model: firstString(m, "model", "car_model", "carModel", "name"),
					Plate: firstString(m, "plate", "license_plate", "licensePlate"),
					Year:  cast.ToInt(m["year"]),
				})
			}
			break
		}
	}

	return p
}

// Merge overlays the non-empty fields of other onto p and returns the
// result. Used after a save so a partial server response cannot wipe
// locally known fields.
func (p Profile) Merge(other Profile) Profile {
	out := p
	if other.UserID != "" {
		out.UserID = other.UserID
	}
	if other.FullName != "" {
		out.FullName = other.FullName
	}
	if other.Email != "" {
		out.Email = other.Email
	}
	if other.Phone != "" {
		out.Phone = other.Phone
	}
	if other.Address != "" {
		out.Address = other.Address
	}
	if other.Avatar != "" {
		out.Avatar = other.Avatar
	}
	if other.Role != "" {
		out.Role = other.Role
	}
	if len(other.Vehicles) > 0 {
		out.Vehicles = other.Vehicles
	}
	return out
}

// firstString returns the first non-empty string among the given keys,
// coercing numbers and other scalar types via cast.
func firstString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		v, ok := m[key]
		if !ok || v == nil {
			continue
		}
		if s := cast.ToString(v); s != "" {
			return s
		}
	}
	return ""
}
