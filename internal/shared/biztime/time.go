// Package biztime fixes the business timezone used for calendar-day
// boundaries. Timestamps are stored in UTC; only "which day is it" questions
// go through the business location.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

var (
	mu          sync.RWMutex
	bizLocation = time.Local
)

// Init sets the business timezone. Empty or "Local" selects the host zone.
func Init(tz string) error {
	loc := time.Local
	if tz != "" && tz != "Local" {
		var err error
		loc, err = time.LoadLocation(tz)
		if err != nil {
			return fmt.Errorf("failed to load timezone %q: %w", tz, err)
		}
	}

	mu.Lock()
	bizLocation = loc
	mu.Unlock()
	return nil
}

// Location returns the business timezone location.
func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfDayUTC returns 00:00 of t's business day, in UTC.
func StartOfDayUTC(t time.Time) time.Time {
	bizTime := t.In(Location())
	return time.Date(bizTime.Year(), bizTime.Month(), bizTime.Day(), 0, 0, 0, 0, Location()).UTC()
}

// SameBizDay reports whether a and b fall on the same business calendar day.
func SameBizDay(a, b time.Time) bool {
	return StartOfDayUTC(a).Equal(StartOfDayUTC(b))
}

// FormatInBizTimezone formats a UTC time in business timezone.
func FormatInBizTimezone(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}
