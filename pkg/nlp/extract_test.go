package nlp

import (
	"reflect"
	"testing"
)

func TestExtractEmails(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "single", text: "Meeting with alice@example.com tomorrow", want: []string{"alice@example.com"}},
		{name: "order kept", text: "bob@x.com then a.b-c@mail.example.org", want: []string{"bob@x.com", "a.b-c@mail.example.org"}},
		{name: "duplicates kept", text: "alice@example.com and alice@example.com", want: []string{"alice@example.com", "alice@example.com"}},
		{name: "no tld", text: "ping alice@localhost", want: []string{}},
		{name: "none", text: "Sync 45 mins", want: []string{}},
		{name: "empty", text: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractEmails(tt.text)
			if got == nil {
				t.Fatal("ExtractEmails() returned nil")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractEmails() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractDuration(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{text: "Sync 45 mins", want: 45},
		{text: "Sync 45min", want: 45},
		{text: "Review 90 MINUTES", want: 90},
		{text: "Workshop 2 hours", want: 120},
		{text: "Workshop 3h", want: 180},
		{text: "Workshop 1 hr", want: 60},
		{text: "2 hours then 15 mins", want: 15},
		{text: "10 mins or 20 mins", want: 10},
		{text: "Lunch tomorrow", want: 30},
		{text: "0 mins", want: 30},
		{text: "99999999999999999999 hours", want: 30},
		{text: "", want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := ExtractDuration(tt.text); got != tt.want {
				t.Errorf("ExtractDuration(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractSummary(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		attendees []string
		want      string
	}{
		{name: "about marker", text: "Chat about budget review", want: "budget review"},
		{name: "for marker", text: "Block time for deep work", want: "deep work"},
		{name: "colon marker", text: "Standup: daily sync", want: "daily sync"},
		{name: "first marker wins", text: "Planning about Q3 roadmap with bob@x.com for 2 hours", attendees: []string{"bob@x.com"}, want: "Q3 roadmap with bob@x.com for 2 hours"},
		{name: "case insensitive", text: "Talk ABOUT hiring", want: "hiring"},
		{name: "marker needs word boundary", text: "Coffee forever tomorrow", want: "Meeting"},
		{name: "empty remainder falls through", text: "What is this about ", attendees: []string{"c@d.io"}, want: "Meeting with c@d.io"},
		{name: "attendees", text: "alice@example.com bob@x.com tomorrow", attendees: []string{"alice@example.com", "bob@x.com"}, want: "Meeting with alice@example.com, bob@x.com"},
		{name: "default", text: "tomorrow 10am", want: "Meeting"},
		{name: "empty", text: "", want: "Meeting"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractSummary(tt.text, tt.attendees); got != tt.want {
				t.Errorf("ExtractSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}
