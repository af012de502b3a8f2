// Package week computes journal week boundaries.
//
// A journal week starts on Sunday and is identified by that Sunday's calendar
// date in the user's timezone. A week locks at local midnight of the Monday
// that follows it; after that instant its reflection is read-only.
package week

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"cloud.google.com/go/civil"
	"github.com/dmitrijs2005/weekjournal/internal/common"
)

// Calculator answers week questions relative to its clock.
type Calculator struct {
	now func() time.Time
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) { c.now = now }
}

func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Now reads the calculator's clock.
func (c *Calculator) Now() time.Time {
	return c.now()
}

// LoadLocation resolves an IANA timezone name. An empty name is UTC.
func LoadLocation(tz string) (*time.Location, error) {
	if tz == "" {
		tz = common.DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownTimezone, tz)
	}
	return loc, nil
}

// Start returns the Sunday on or before d.
func Start(d civil.Date) civil.Date {
	return d.AddDays(-int(d.In(time.UTC).Weekday()))
}

// CurrentWeekStart returns the Sunday starting the week that contains "now"
// as observed in tz.
func (c *Calculator) CurrentWeekStart(tz string) (civil.Date, error) {
	loc, err := LoadLocation(tz)
	if err != nil {
		return civil.Date{}, err
	}
	return Start(civil.DateOf(c.now().In(loc))), nil
}

// LockInstant is local midnight of the Monday after weekStart, in tz.
func LockInstant(weekStart civil.Date, tz string) (time.Time, error) {
	loc, err := LoadLocation(tz)
	if err != nil {
		return time.Time{}, err
	}
	return lockInstant(weekStart, loc), nil
}

func lockInstant(weekStart civil.Date, loc *time.Location) time.Time {
	return time.Date(weekStart.Year, weekStart.Month, weekStart.Day+1, 0, 0, 0, 0, loc)
}

// IsLocked reports whether now is at or past the lock instant of weekStart.
// The result only ever changes from false to true.
func (c *Calculator) IsLocked(weekStart civil.Date, tz string) (bool, error) {
	loc, err := LoadLocation(tz)
	if err != nil {
		return false, err
	}
	return !c.now().Before(lockInstant(weekStart, loc)), nil
}

// Parse reads a YYYY-MM-DD week start. Dates that are not Sundays are rejected.
func Parse(s string) (civil.Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return civil.Date{}, fmt.Errorf("%w: %v", common.ErrInvalidWeekStart, err)
	}
	if d != Start(d) {
		return civil.Date{}, fmt.Errorf("%w: %s is a %s, not a Sunday", common.ErrInvalidWeekStart, s, d.In(time.UTC).Weekday())
	}
	return d, nil
}
