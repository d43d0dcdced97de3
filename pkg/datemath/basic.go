package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	casualDayRe  = regexp.MustCompile(`\b(today|tonight|tomorrow|yesterday)\b`)
	inDurationRe = regexp.MustCompile(`\bin (\d+) (day|days|week|weeks|month|months)\b`)
	weekdayRe    = regexp.MustCompile(`\b(?:(next|this|last) )?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
	meridiemRe   = regexp.MustCompile(`\b(\d{1,2})(?::([0-5]\d))?\s*(am|pm)\b`)
	clockRe      = regexp.MustCompile(`\b([01]?\d|2[0-3]):([0-5]\d)\b`)
	namedTimeRe  = regexp.MustCompile(`\b(noon|midnight)\b`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// BasicEngine is a rule-based Engine for common English relative dates
// ("tomorrow", "in 3 days", "next friday") and clock times ("10am", "14:30").
// A date with no clock time resolves to the start of that day.
type BasicEngine struct{}

// NewBasicEngine creates a BasicEngine.
func NewBasicEngine() *BasicEngine {
	return &BasicEngine{}
}

// Resolve implements Engine.
func (e *BasicEngine) Resolve(text string, opt ResolveOptions) (Match, bool, error) {
	loc := opt.location()
	base := opt.Base.In(loc)
	lower := strings.ToLower(text)

	day, dayText, hasDay := e.resolveDay(lower, base, loc, opt.PreferFuture)
	hour, minute, clockText, hasClock := e.resolveClock(lower)
	if !hasDay && !hasClock {
		return Match{}, false, nil
	}

	if !hasDay {
		day = StartOfDay(base, loc)
	}
	t := day
	if hasClock {
		t = time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)
	}

	return Match{Time: t, Text: strings.TrimSpace(dayText + " " + clockText)}, true, nil
}

// resolveDay finds the first day expression, trying casual words, then
// "in N units", then weekdays.
func (e *BasicEngine) resolveDay(lower string, base time.Time, loc *time.Location, preferFuture bool) (time.Time, string, bool) {
	if m := casualDayRe.FindStringSubmatch(lower); m != nil {
		switch m[1] {
		case "tomorrow":
			return StartOfDay(base.AddDate(0, 0, 1), loc), m[0], true
		case "yesterday":
			return StartOfDay(base.AddDate(0, 0, -1), loc), m[0], true
		default:
			return StartOfDay(base, loc), m[0], true
		}
	}

	if m := inDurationRe.FindStringSubmatch(lower); m != nil {
		if t, ok := e.parseInDuration(m, base, loc); ok {
			return t, m[0], true
		}
	}

	if m := weekdayRe.FindStringSubmatch(lower); m != nil {
		return e.parseWeekday(m[1], weekdays[m[2]], base, loc, preferFuture), m[0], true
	}

	return time.Time{}, "", false
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (e *BasicEngine) parseInDuration(m []string, base time.Time, loc *time.Location) (time.Time, bool) {
	amount, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}

	switch unit := m[2]; {
	case strings.HasPrefix(unit, "day"):
		return StartOfDay(base.AddDate(0, 0, amount), loc), true
	case strings.HasPrefix(unit, "week"):
		return StartOfDay(base.AddDate(0, 0, amount*7), loc), true
	case strings.HasPrefix(unit, "month"):
		return StartOfDay(base.AddDate(0, amount, 0), loc), true
	}
	return time.Time{}, false
}

// parseWeekday resolves "next friday", "last monday", "this sunday" and a
// bare weekday. "next" always moves at least one day forward.
func (e *BasicEngine) parseWeekday(modifier string, target time.Weekday, base time.Time, loc *time.Location, preferFuture bool) time.Time {
	diff := int(target - base.Weekday())

	switch modifier {
	case "next":
		if diff <= 0 {
			diff += 7
		}
	case "last":
		if diff >= 0 {
			diff -= 7
		}
	default:
		if diff < 0 && preferFuture {
			diff += 7
		}
	}

	return StartOfDay(base.AddDate(0, 0, diff), loc)
}

// resolveClock finds "3pm", "3:15 pm", "14:30", "noon" or "midnight".
func (e *BasicEngine) resolveClock(lower string) (int, int, string, bool) {
	if m := meridiemRe.FindStringSubmatch(lower); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if hour >= 1 && hour <= 12 {
			minute := 0
			if m[2] != "" {
				minute, _ = strconv.Atoi(m[2])
			}
			hour %= 12
			if m[3] == "pm" {
				hour += 12
			}
			return hour, minute, m[0], true
		}
	}

	if m := clockRe.FindStringSubmatch(lower); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		return hour, minute, m[0], true
	}

	if m := namedTimeRe.FindStringSubmatch(lower); m != nil {
		if m[1] == "noon" {
			return 12, 0, m[0], true
		}
		return 0, 0, m[0], true
	}

	return 0, 0, "", false
}
