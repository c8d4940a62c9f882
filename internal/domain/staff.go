package domain

import "time"

// StaffMember is one entry of the staff directory.
type StaffMember struct {
	ID       string    `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Role     string    `json:"role"`
	Center   string    `json:"center"`
	HiredAt  time.Time `json:"hired_at"`
	Active   bool      `json:"active"`
}

// NormalizeStaff maps a raw staff payload onto the canonical shape.
func NormalizeStaff(raw map[string]any) StaffMember {
	active := true
	if v, ok := raw["active"]; ok {
		active = v == true
	} else if v, ok := raw["is_active"]; ok {
		active = v == true
	}
	return StaffMember{
		ID:       firstString(raw, "id", "_id", "staff_id", "staffId"),
		FullName: firstString(raw, "full_name", "fullName", "name"),
		Email:    firstString(raw, "email"),
		Phone:    firstString(raw, "phone", "phone_number", "phoneNumber"),
		Role:     firstString(raw, "role", "position", "title"),
		Center:   firstString(raw, "service_center_name", "serviceCenterName", "center", "branch"),
		HiredAt:  parseWhen(raw, "hired_at", "hiredAt", "start_date", "startDate"),
		Active:   active,
	}
}
