package datemath

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var (
	bareWeekdayRe = regexp.MustCompile(`(?i)\b(?:(last|past|this|next)\s+(?:week\s+)?)?(mon|tue|tues|wed|thu|thur|thurs|fri|sat|sun)(?:day|nesday|rsday|urday)?\b`)
	monthNameRe   = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|sept|oct|nov|dec)\b`)
	yearRe        = regexp.MustCompile(`\b\d{4}\b`)
)

// WhenEngine resolves expressions with github.com/olebedev/when using its
// English and common rule sets.
type WhenEngine struct {
	parser *when.Parser
}

// NewWhenEngine creates a WhenEngine.
func NewWhenEngine() *WhenEngine {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &WhenEngine{parser: w}
}

// Resolve implements Engine.
func (e *WhenEngine) Resolve(text string, opt ResolveOptions) (Match, bool, error) {
	loc := opt.location()
	base := opt.Base.In(loc)

	r, err := e.parser.Parse(text, base)
	if err != nil {
		return Match{}, false, fmt.Errorf("datemath.WhenEngine: %w", err)
	}
	if r == nil {
		return Match{}, false, nil
	}

	t := Localize(r.Time, loc)
	if opt.PreferFuture {
		t = rollForward(t, base, r.Text)
	}
	return Match{Time: t, Text: r.Text}, true, nil
}

// rollForward moves an ambiguous past weekday to next week and a past
// month/day without a year to next year. Explicit "last"/"past" is kept.
func rollForward(t, base time.Time, matched string) time.Time {
	today := StartOfDay(base, base.Location())
	if !t.Before(today) {
		return t
	}

	if m := bareWeekdayRe.FindStringSubmatch(matched); m != nil {
		if modifier := strings.ToLower(m[1]); modifier == "" || modifier == "this" {
			for t.Before(today) {
				t = t.AddDate(0, 0, 7)
			}
		}
		return t
	}

	if monthNameRe.MatchString(matched) && !yearRe.MatchString(matched) {
		return t.AddDate(1, 0, 0)
	}
	return t
}
