package format

import "time"

// Placeholder is rendered wherever a value is missing or unparsable.
const Placeholder = "—"

// DisplayDate renders a timestamp as a short human date. The zero time
// renders as the placeholder.
func DisplayDate(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return t.Format("Jan 2, 2006")
}

// DisplayDateTime renders a timestamp with the time of day.
func DisplayDateTime(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return t.Format("Jan 2, 2006 15:04")
}

// ParseDate parses the date formats the backend emits. Returns the zero
// time when nothing matches; it never errors.
func ParseDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
