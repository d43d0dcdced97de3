package datemath_test

import (
	"testing"

	"ai-scheduler/pkg/datemath"
)

func TestDetectZone(t *testing.T) {
	tests := []struct {
		text     string
		wantAbbr string
		wantZone string
		wantOK   bool
	}{
		{text: "Call 3pm PST", wantAbbr: "PST", wantZone: "America/Los_Angeles", wantOK: true},
		{text: "sync at 9 EDT tomorrow", wantAbbr: "EDT", wantZone: "America/New_York", wantOK: true},
		{text: "check-in 10:00 AKST", wantAbbr: "AKST", wantZone: "America/Anchorage", wantOK: true},
		{text: "demo 4pm UTC", wantAbbr: "UTC", wantZone: "UTC", wantOK: true},
		{text: "lowercase pst is ignored", wantOK: false},
		{text: "PSTX is not a zone", wantOK: false},
		{text: "Meeting tomorrow", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			loc, abbr, ok := datemath.DetectZone(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("DetectZone() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if abbr != tt.wantAbbr {
				t.Errorf("abbr = %q, want %q", abbr, tt.wantAbbr)
			}
			if loc.String() != tt.wantZone {
				t.Errorf("zone = %q, want %q", loc.String(), tt.wantZone)
			}
		})
	}
}

func TestZoneAbbreviationsSortedAndResolvable(t *testing.T) {
	abbrs := datemath.ZoneAbbreviations()
	if len(abbrs) == 0 {
		t.Fatal("expected abbreviations")
	}
	for i, abbr := range abbrs {
		if i > 0 && abbrs[i-1] > abbr {
			t.Errorf("not sorted at %d: %q > %q", i, abbrs[i-1], abbr)
		}
		if _, ok := datemath.ZoneName(abbr); !ok {
			t.Errorf("ZoneName(%q) not found", abbr)
		}
	}
}
