package nlp

import (
	"regexp"
	"strings"
)

var topicRe = regexp.MustCompile(`(?i)\b(about|for|:)\s+(.*)`)

// ExtractSummary derives a title. Text after the first "about", "for" or
// ":" marker wins; otherwise the attendee list, otherwise "Meeting".
func ExtractSummary(text string, attendees []string) string {
	if m := topicRe.FindStringSubmatch(text); m != nil {
		if topic := strings.TrimSpace(m[2]); topic != "" {
			return topic
		}
	}

	if len(attendees) > 0 {
		return "Meeting with " + strings.Join(attendees, ", ")
	}
	return "Meeting"
}
