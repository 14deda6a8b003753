package shared

import "time"

// DateLayout is the civil date format used for all user-facing and persisted
// dates (check-in/out, issue/due dates, payment and expense dates).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD civil date. The field name is used in the
// validation message shown to the operator.
func ParseDate(value, field string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, Invalid("%s must be in YYYY-MM-DD format", field)
	}
	return t, nil
}

// FormatDate renders a time as a YYYY-MM-DD civil date
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current civil date truncated to midnight UTC
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole number of days from start to end
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start) / (24 * time.Hour))
}
