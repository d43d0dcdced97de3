package nlp

import (
	"math"
	"regexp"
	"strconv"
)

var (
	minuteRe = regexp.MustCompile(`(?i)(\d+)\s*(?:min|mins|minutes)`)
	hourRe   = regexp.MustCompile(`(?i)(\d+)\s*(?:h|hr|hrs|hours)`)
)

// ExtractDuration returns the meeting length in minutes named by text, or
// DefaultDurationMinutes. A minute expression wins over an hour expression.
func ExtractDuration(text string) int {
	return extractDuration(text, DefaultDurationMinutes)
}

func extractDuration(text string, def int) int {
	if m := minuteRe.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			return def
		}
		return n
	}

	if m := hourRe.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 || n > math.MaxInt/60 {
			return def
		}
		return n * 60
	}

	return def
}
