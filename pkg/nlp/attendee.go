package nlp

import "regexp"

var emailRe = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)

// ExtractEmails returns every email-like substring of text in order of
// appearance. Duplicates are kept.
func ExtractEmails(text string) []string {
	found := emailRe.FindAllString(text, -1)
	if found == nil {
		return []string{}
	}
	return found
}
