package datemath

import "time"

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// TomorrowAt returns the day after base (as seen in loc) at hour:00:00.000 in loc.
func TomorrowAt(base time.Time, hour int, loc *time.Location) time.Time {
	d := base.In(loc).AddDate(0, 0, 1)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, loc)
}

// Localize re-reads t's wall clock in loc, applying loc's offset rules for
// that date. A wall clock inside a DST gap is normalised forward by time.Date.
func Localize(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}
