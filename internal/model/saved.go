package model

import "time"

// TimestampLayout is the ISO-8601 form stored with each saved entry:
// UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// SavedEntry is a password the user chose to keep, with a note.
type SavedEntry struct {
	Password  string `json:"password"`
	Note      string `json:"note"`
	Timestamp string `json:"timestamp"`
}

// Time parses the entry timestamp.
func (e SavedEntry) Time() (time.Time, error) {
	return time.Parse(time.RFC3339, e.Timestamp)
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// SaveRequest represents a request to save a password.
type SaveRequest struct {
	Password string `json:"password"`
	Note     string `json:"note"`
}
