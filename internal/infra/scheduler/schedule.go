package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
)

// dailySchedule is a cron.Schedule that fires once per calendar day at hour:00 in loc.
// On a spring-forward day where hour:00 does not exist it fires at the first instant after
// the gap; on a fall-back day it fires at the first of the two hour:00 instants only.
type dailySchedule struct {
	hour int
	loc  *time.Location
}

var _ cron.Schedule = dailySchedule{}

// Next returns the first wake strictly after now.
func (d dailySchedule) Next(now time.Time) time.Time {
	y, m, day := now.In(d.loc).Date()
	for i := 0; ; i++ {
		if t := d.on(y, m, day+i); t.After(now) {
			return t
		}
	}
}

// on returns the wake instant for a calendar day; day may overflow the month.
func (d dailySchedule) on(y int, m time.Month, day int) time.Time {
	y, m, day = time.Date(y, m, day, 12, 0, 0, 0, d.loc).Date()

	t := time.Date(y, m, day, d.hour, 0, 0, 0, d.loc)
	for t.Hour() < d.hour && t.Day() == day {
		t = t.Add(time.Hour)
	}
	if earlier := t.Add(-time.Hour); earlier.Hour() == t.Hour() && earlier.Day() == day {
		t = earlier
	}
	return t
}
