package datemath_test

import (
	"testing"
	"time"

	"ai-scheduler/pkg/datemath"
)

func TestBasicEngineResolve(t *testing.T) {
	engine := datemath.NewBasicEngine()
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		text         string
		preferFuture bool
		want         time.Time
		wantOK       bool
	}{
		{name: "Today", text: "review today", want: startOfBase, wantOK: true},
		{name: "Tomorrow", text: "Tomorrow", want: startOfBase.AddDate(0, 0, 1), wantOK: true},
		{name: "Yesterday", text: "notes from yesterday", want: startOfBase.AddDate(0, 0, -1), wantOK: true},
		{name: "In 3 days", text: "ship in 3 days", want: startOfBase.AddDate(0, 0, 3), wantOK: true},
		{name: "In 2 weeks", text: "in 2 weeks", want: startOfBase.AddDate(0, 0, 14), wantOK: true},
		{name: "In 1 month", text: "in 1 month", want: startOfBase.AddDate(0, 1, 0), wantOK: true},
		{name: "Next Monday (from Wed)", text: "next monday", want: startOfBase.AddDate(0, 0, 5), wantOK: true},
		{name: "Next Wednesday (from Wed)", text: "next wednesday", want: startOfBase.AddDate(0, 0, 7), wantOK: true},
		{name: "Last Monday", text: "last monday", want: startOfBase.AddDate(0, 0, -2), wantOK: true},
		{name: "Bare past weekday prefers future", text: "monday", preferFuture: true, want: startOfBase.AddDate(0, 0, 5), wantOK: true},
		{name: "Bare past weekday without bias", text: "monday", want: startOfBase.AddDate(0, 0, -2), wantOK: true},
		{name: "Bare weekday today", text: "wednesday", preferFuture: true, want: startOfBase, wantOK: true},
		{name: "Tomorrow at 10am", text: "Meeting tomorrow 10am", want: time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC), wantOK: true},
		{name: "Bare time", text: "Call 3pm", want: time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC), wantOK: true},
		{name: "12am is midnight", text: "friday 12am", preferFuture: true, want: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), wantOK: true},
		{name: "Minutes with meridiem", text: "3:15 pm", want: time.Date(2024, 5, 1, 15, 15, 0, 0, time.UTC), wantOK: true},
		{name: "24h clock", text: "standup 14:30", want: time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC), wantOK: true},
		{name: "Noon", text: "lunch tomorrow at noon", want: time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC), wantOK: true},
		{name: "Invalid meridiem hour ignored", text: "13pm", wantOK: false},
		{name: "No expression", text: "some random text", wantOK: false},
		{name: "Empty", text: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := engine.Resolve(tt.text, datemath.ResolveOptions{
				Base:         baseTime,
				Location:     time.UTC,
				PreferFuture: tt.preferFuture,
			})
			if err != nil {
				t.Fatalf("Resolve() unexpected error: %v", err)
			}
			if ok != tt.wantOK {
				t.Fatalf("Resolve() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Time.Equal(tt.want) {
				t.Errorf("Resolve() got = %v, want %v", got.Time, tt.want)
			}
		})
	}
}

func TestBasicEngineUsesLocation(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}
	// 2024-03-10 is the US spring-forward date.
	base := time.Date(2024, 3, 9, 20, 0, 0, 0, la)

	got, ok, err := datemath.NewBasicEngine().Resolve("tomorrow 10am", datemath.ResolveOptions{Base: base, Location: la})
	if err != nil || !ok {
		t.Fatalf("Resolve() ok=%v err=%v", ok, err)
	}
	if _, offset := got.Time.Zone(); offset != -7*3600 {
		t.Errorf("expected PDT offset after the DST switch, got %d", offset)
	}
	if got.Time.Hour() != 10 || got.Time.Day() != 10 {
		t.Errorf("unexpected wall clock: %v", got.Time)
	}
}
