package output

import "time"

// FormatInstant formats an instant for list and detail views:
// "2023-01-01 00:11 UTC". Seconds are shown only when non-zero.
func FormatInstant(t time.Time) string {
	if t.Second() != 0 {
		return t.Format("2006-01-02 15:04:05 MST")
	}
	return t.Format("2006-01-02 15:04 MST")
}

// FormatDateISO formats a time as ISO 8601 date: "2025-01-20".
func FormatDateISO(t time.Time) string {
	return t.Format("2006-01-02")
}
