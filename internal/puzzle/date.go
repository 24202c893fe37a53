package puzzle

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day key format.
const DateLayout = "2006-01-02"

// DateKey returns the UTC calendar day for t.
func DateKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate validates a YYYY-MM-DD day key.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t.Format(DateLayout), nil
}
