package nlp

import (
	"fmt"
	"strings"
	"time"

	"ai-scheduler/pkg/clock"
	"ai-scheduler/pkg/datemath"
)

// New validates cfg and creates a Parser. A nil Engine selects the
// olebedev/when engine; a nil Clock selects the system clock.
func New(cfg Config) (*Parser, error) {
	if cfg.DefaultTimezone == "" {
		return nil, fmt.Errorf("%w: empty default timezone", ErrInvalidTimezone)
	}
	loc, err := time.LoadLocation(cfg.DefaultTimezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTimezone, cfg.DefaultTimezone, err)
	}
	if cfg.DefaultDurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: default duration must be positive, got %d", ErrInvalidConfig, cfg.DefaultDurationMinutes)
	}
	if cfg.FallbackHour < 0 || cfg.FallbackHour > 23 {
		return nil, fmt.Errorf("%w: fallback hour must be within 0..23, got %d", ErrInvalidConfig, cfg.FallbackHour)
	}

	engine := cfg.Engine
	if engine == nil {
		engine = datemath.NewWhenEngine()
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.NewSystem()
	}

	return &Parser{
		defaultLoc:      loc,
		defaultDuration: cfg.DefaultDurationMinutes,
		fallbackHour:    cfg.FallbackHour,
		engine:          engine,
		clock:           clk,
	}, nil
}

// DefaultLocation returns the zone used when a command names none.
func (p *Parser) DefaultLocation() *time.Location {
	return p.defaultLoc
}

// Parse interprets command against the configured default timezone.
func (p *Parser) Parse(command string) (ParseResult, error) {
	return p.parse(command, p.defaultLoc)
}

// ParseIn interprets command with timezone as the default zone. An empty
// timezone falls back to the configured one.
func (p *Parser) ParseIn(command, timezone string) (ParseResult, error) {
	if timezone == "" {
		return p.parse(command, p.defaultLoc)
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return ParseResult{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimezone, timezone, err)
	}
	return p.parse(command, loc)
}

func (p *Parser) parse(command string, def *time.Location) (ParseResult, error) {
	now := p.clock.Now()

	attendees := ExtractEmails(command)
	minutes := extractDuration(command, p.defaultDuration)

	cleaned := command
	for _, email := range attendees {
		cleaned = strings.Replace(cleaned, email, "", 1)
	}

	start, err := p.resolveStart(cleaned, now, def)
	if err != nil {
		return ParseResult{}, err
	}

	list := make([]string, len(attendees))
	copy(list, attendees)

	return ParseResult{
		Summary:         ExtractSummary(command, attendees),
		StartTime:       start,
		EndTime:         start.Add(time.Duration(minutes) * time.Minute),
		TimeZone:        start.Location().String(),
		Attendees:       list,
		OriginalCommand: command,
	}, nil
}

// resolveStart reads the start instant from text. An explicit zone
// abbreviation overrides def; no recognised expression yields tomorrow at
// the fallback hour in def.
func (p *Parser) resolveStart(text string, now time.Time, def *time.Location) (time.Time, error) {
	loc := def
	if zone, _, ok := datemath.DetectZone(text); ok {
		loc = zone
	}

	m, ok, err := p.engine.Resolve(text, datemath.ResolveOptions{
		Base:         now.In(loc),
		Location:     loc,
		PreferFuture: true,
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("nlp.Parser.resolveStart: %w", err)
	}
	if !ok {
		return datemath.TomorrowAt(now, p.fallbackHour, def), nil
	}

	return datemath.Localize(m.Time, loc), nil
}
