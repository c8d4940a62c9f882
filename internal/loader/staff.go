package loader

import (
	"context"
	"strings"

	"github.com/garagehub/garagectl/internal/api"
	"github.com/garagehub/garagectl/internal/domain"
)

// StaffAPI is the slice of the API client the staff directory needs.
type StaffAPI interface {
	Staff(ctx context.Context) ([]map[string]any, error)
}

// StaffLoader fetches the staff directory.
type StaffLoader struct {
	sm     stateMachine[[]domain.StaffMember]
	client StaffAPI
}

// NewStaffLoader creates a StaffLoader.
func NewStaffLoader(client StaffAPI) *StaffLoader {
	return &StaffLoader{client: client}
}

// Load fetches and normalizes the staff list.
func (l *StaffLoader) Load(ctx context.Context) error {
	seq := l.sm.begin()

	raw, err := l.client.Staff(ctx)
	if err != nil {
		l.sm.fail(seq, api.Classify(err))
		return err
	}

	members := make([]domain.StaffMember, 0, len(raw))
	for _, item := range raw {
		members = append(members, domain.NormalizeStaff(item))
	}

	l.sm.succeed(seq, members)
	return nil
}

// Retry re-fetches. Identical contract to Load.
func (l *StaffLoader) Retry(ctx context.Context) error {
	return l.Load(ctx)
}

// Snapshot returns the current render state.
func (l *StaffLoader) Snapshot() State[[]domain.StaffMember] {
	return l.sm.snapshot()
}

// Filter returns the staff members matching a search query. Purely
// local; an empty query returns everything.
func (l *StaffLoader) Filter(query string) []domain.StaffMember {
	data := l.sm.snapshot().Data
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return data
	}
	var out []domain.StaffMember
	for _, m := range data {
		haystack := strings.ToLower(strings.Join([]string{
			m.FullName, m.Email, m.Phone, m.Role, m.Center,
		}, " "))
		if strings.Contains(haystack, query) {
			out = append(out, m)
		}
	}
	return out
}
