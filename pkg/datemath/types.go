package datemath

import "time"

// Engine resolves a date/time expression embedded in free text.
// Implementations must be safe for concurrent use.
type Engine interface {
	// Resolve returns ok=false when the text holds no recognisable expression.
	// A non-nil error means the engine itself failed and no fallback should apply.
	Resolve(text string, opt ResolveOptions) (Match, bool, error)
}

// ResolveOptions carries the reference instant and interpretation hints.
type ResolveOptions struct {
	Base         time.Time      // "now" for relative expressions
	Location     *time.Location // zone bare wall-clock values are read in
	PreferFuture bool           // pick the upcoming occurrence of ambiguous weekdays/dates
}

// Match is a resolved expression.
type Match struct {
	Time time.Time
	Text string // matched source fragment
}

func (o ResolveOptions) location() *time.Location {
	if o.Location != nil {
		return o.Location
	}
	return o.Base.Location()
}
