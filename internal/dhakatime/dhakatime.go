// Package dhakatime computes calendar-day boundaries in the Asia/Dhaka zone.
// Bangladesh does not observe daylight saving time, so the zone is a fixed
// UTC+6 offset rather than a tzdata lookup. The Dhaka day is the
// deduplication boundary for all daily report submissions.
package dhakatime

import (
	"fmt"
	"time"
)

// Zone is the fixed Asia/Dhaka offset (UTC+6, no DST).
var Zone = time.FixedZone("Asia/Dhaka", 6*60*60)

const dateLayout = "2006-01-02"

// DayRange returns the half-open UTC interval [start, end) covering the
// Dhaka calendar day that contains t. start <= t < end and end-start is
// exactly 24 hours.
func DayRange(t time.Time) (time.Time, time.Time) {
	local := t.In(Zone)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Zone)
	return start.UTC(), start.Add(24 * time.Hour).UTC()
}

// DayRangeFor returns the [start, end) interval for a literal YYYY-MM-DD
// date, interpreted as a Dhaka calendar day. Malformed input is an error.
func DayRangeFor(date string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(dateLayout, date, Zone)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return start.UTC(), start.Add(24 * time.Hour).UTC(), nil
}

// Midnight returns the Dhaka-midnight instant of the day containing t.
// This is the single stored-date convention for daily reports.
func Midnight(t time.Time) time.Time {
	start, _ := DayRange(t)
	return start
}

// SameDay reports whether a and b fall on the same Dhaka calendar date.
func SameDay(a, b time.Time) bool {
	sa, _ := DayRange(a)
	sb, _ := DayRange(b)
	return sa.Equal(sb)
}
