package datemath_test

import (
	"testing"
	"time"

	"ai-scheduler/pkg/datemath"
)

func TestTomorrowAt(t *testing.T) {
	la, _ := time.LoadLocation("America/Los_Angeles")
	// 23:30 UTC on Nov 2 is still Nov 2 in Los Angeles; Nov 3 is the fall-back date.
	base := time.Date(2024, 11, 2, 23, 30, 0, 0, time.UTC)

	got := datemath.TomorrowAt(base, 9, la)
	want := time.Date(2024, 11, 3, 9, 0, 0, 0, la)
	if !got.Equal(want) {
		t.Fatalf("TomorrowAt() got = %v, want %v", got, want)
	}
	if _, offset := got.Zone(); offset != -8*3600 {
		t.Errorf("expected PST offset, got %d", offset)
	}
}

func TestLocalize(t *testing.T) {
	ny, _ := time.LoadLocation("America/New_York")
	wall := time.Date(2024, 7, 4, 15, 0, 0, 0, time.UTC)

	got := datemath.Localize(wall, ny)
	if got.Hour() != 15 || got.Location() != ny {
		t.Fatalf("Localize() kept wrong wall clock: %v", got)
	}
	if _, offset := got.Zone(); offset != -4*3600 {
		t.Errorf("expected EDT offset, got %d", offset)
	}
}
