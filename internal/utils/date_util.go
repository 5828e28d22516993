package utils

import "time"

// displayDateLayout matches the "14 Oct 2025" style the mobile app renders.
const displayDateLayout = "02 Jan 2006"

// FormatDisplayDate formats a timestamp for API responses. Zero times yield
// an empty string.
func FormatDisplayDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(displayDateLayout)
}
