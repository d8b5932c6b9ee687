// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"strings"
	"sync"
	"time"
)

var (
	appLoc     *time.Location
	appLocOnce sync.Once
	appTZName  = "Asia/Yangon"
)

// SetTimezone overrides the application timezone. Call before the first
// Location() lookup, usually from main after configs.LoadEnv.
func SetTimezone(name string) {
	if strings.TrimSpace(name) != "" {
		appTZName = strings.TrimSpace(name)
	}
}

// Location returns the application timezone, falling back to UTC.
func Location() *time.Location {
	appLocOnce.Do(func() {
		loc, err := time.LoadLocation(appTZName)
		if err != nil {
			appLoc = time.UTC
			return
		}
		appLoc = loc
	})
	return appLoc
}

// Now in the application timezone.
func Now() time.Time {
	return time.Now().In(Location())
}

// MonthStart is 00:00 on the first day of the month in loc.
func MonthStart(year int, month time.Month, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, loc)
}

// MonthWindow returns [start, end) covering the given month.
func MonthWindow(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := MonthStart(year, month, loc)
	return start, start.AddDate(0, 1, 0)
}

// AddMonths adds n calendar months to t, clamping to the last day of the
// target month (Jan 31 + 1 month = Feb 28/29).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	target := first.AddDate(0, n, 0)
	last := target.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
