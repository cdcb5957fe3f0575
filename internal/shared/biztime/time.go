// Package biztime provides business timezone calculations. All storage and
// transport use UTC; the business timezone only decides calendar-day
// boundaries (ticket date filters, daily stats).
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "Asia/Kolkata"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the business timezone, auto-initializing with the default
// when Init has not been called.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to initialize default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// SameBizDay reports whether two instants fall on the same calendar day in
// the business timezone. Instant equality is deliberately not used: two
// tickets created on the same local day in different offsets must still match
// a date filter for that day.
func SameBizDay(a, b time.Time) bool {
	la := a.In(Location())
	lb := b.In(Location())
	return la.Year() == lb.Year() && la.Month() == lb.Month() && la.Day() == lb.Day()
}

// StartOfDayUTC returns the start of day in the business timezone, converted
// to UTC for queries.
func StartOfDayUTC(t time.Time) time.Time {
	lt := t.In(Location())
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, Location()).UTC()
}

// EndOfDayUTC returns the end of day in the business timezone, converted to
// UTC for queries.
func EndOfDayUTC(t time.Time) time.Time {
	lt := t.In(Location())
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 23, 59, 59, 999999999, Location()).UTC()
}

// ParseDateInBizTimezone parses a YYYY-MM-DD date as business-timezone
// midnight and returns the UTC equivalent.
func ParseDateInBizTimezone(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", dateStr, Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", dateStr, err)
	}
	return t.UTC(), nil
}
