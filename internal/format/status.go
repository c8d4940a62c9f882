// Package format holds the display transforms: status labels, dates and
// money. Every function here is total: nil, empty and garbage inputs
// produce a fixed placeholder, never an error or a panic.
package format

import (
	"log/slog"
	"strings"
)

// statusLabels maps backend status codes to display labels. Lookup is
// case-insensitive; keys are stored lowercase.
var statusLabels = map[string]string{
	"pending":     "Pending",
	"confirmed":   "Confirmed",
	"scheduled":   "Scheduled",
	"in_progress": "In progress",
	"inprogress":  "In progress",
	"completed":   "Completed",
	"done":        "Completed",
	"cancelled":   "Cancelled",
	"canceled":    "Cancelled",
	"no_show":     "No-show",
	"paid":        "Paid",
	"unpaid":      "Unpaid",
	"refunded":    "Refunded",
}

// StatusLabel returns the display label for a backend status code.
// Unknown codes pass through unchanged (case preserved) with a single
// diagnostic; the empty code maps to the placeholder.
func StatusLabel(code string) string {
	if code == "" {
		return Placeholder
	}
	if label, ok := statusLabels[strings.ToLower(code)]; ok {
		return label
	}
	slog.Warn("unknown booking status code", "code", code)
	return code
}
