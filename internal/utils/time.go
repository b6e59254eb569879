package utils

import "time"

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04 MST"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatDate formats a timestamp as YYYY-MM-DD in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(layoutDate)
}

// FormatDateTime formats a timestamp for human-facing documents.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(layoutDateTime)
}
