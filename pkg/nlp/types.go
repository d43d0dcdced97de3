package nlp

import (
	"time"

	"ai-scheduler/pkg/clock"
	"ai-scheduler/pkg/datemath"
)

const (
	DefaultTimezone        = "America/Los_Angeles"
	DefaultDurationMinutes = 30
	DefaultFallbackHour    = 9
)

// Config holds the parser tunables. Engine and Clock may be left nil.
type Config struct {
	DefaultTimezone        string
	DefaultDurationMinutes int
	FallbackHour           int
	Engine                 datemath.Engine
	Clock                  clock.Clock
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		DefaultTimezone:        DefaultTimezone,
		DefaultDurationMinutes: DefaultDurationMinutes,
		FallbackHour:           DefaultFallbackHour,
	}
}

// ParseResult is the structured meeting request derived from a command.
type ParseResult struct {
	Summary         string    `json:"summary"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	TimeZone        string    `json:"time_zone"`
	Attendees       []string  `json:"attendees"`
	OriginalCommand string    `json:"original_command"`
}

// Duration returns EndTime - StartTime.
func (r ParseResult) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// Parser turns free-text scheduling commands into ParseResults.
// A Parser is immutable after New and safe for concurrent use.
type Parser struct {
	defaultLoc      *time.Location
	defaultDuration int
	fallbackHour    int
	engine          datemath.Engine
	clock           clock.Clock
}
