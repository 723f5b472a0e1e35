package utils

import "time"

// NowRFC3339 returns the current time in RFC3339 format
func NowRFC3339() string {
	return time.Now().Format(time.RFC3339)
}

// ParseRFC3339 parses a time string in RFC3339 format
func ParseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// DaysBetween returns the number of whole days from earlier to later,
// never negative. Scoring measures activity age against a fixed snapshot
// timestamp, so both ends are explicit.
func DaysBetween(earlier, later time.Time) float64 {
	if later.Before(earlier) {
		return 0
	}
	return later.Sub(earlier).Hours() / 24
}
