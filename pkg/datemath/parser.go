package datemath

import (
	"fmt"
	"time"
)

// Calendar does wall-clock arithmetic in a fixed timezone.
type Calendar struct {
	location *time.Location
}

// NewCalendar creates a calendar for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewCalendar(timezone string) (*Calendar, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Calendar{location: loc}, nil
}

// NewCalendarIn creates a calendar for an already resolved location.
func NewCalendarIn(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{location: loc}
}

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// At returns the day dayOffset days after base, at hour:minute:00 in the calendar's timezone.
// Days are calendar days, so DST changes never shift the wall-clock time.
func (c *Calendar) At(base time.Time, dayOffset, hour, minute int) time.Time {
	t := base.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day()+dayOffset, hour, minute, 0, 0, c.location)
}

// AddMonthsAt is At for a month offset. Month overflow normalizes the way
// time.AddDate does (Jan 31 + 1 month = Mar 2/3).
func (c *Calendar) AddMonthsAt(base time.Time, months, hour, minute int) time.Time {
	t := base.In(c.location)
	return time.Date(t.Year(), t.Month()+time.Month(months), t.Day(), hour, minute, 0, 0, c.location)
}

// DaysUntil returns how many days from base until the next target weekday.
// With inclusive=true a target equal to today yields 0; otherwise it yields 7.
func (c *Calendar) DaysUntil(base time.Time, target time.Weekday, inclusive bool) int {
	days := int(target - base.In(c.location).Weekday())
	if days < 0 || (days == 0 && !inclusive) {
		days += 7
	}
	return days
}
