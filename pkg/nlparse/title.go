package nlparse

import "strings"

const (
	maxTitleLength   = 100
	truncatedLength  = 97
	truncationSuffix = "..."
)

// cleanTitle strips the matched date, time, priority and duration phrases
// from the utterance and normalizes what remains. Stripping is best-effort:
// only the phrases the extractors actually matched are removed.
func cleanTitle(text, datePhrase, timePhrase, durationPhrase string) string {
	title := text
	if datePhrase != "" {
		title = strings.Replace(title, datePhrase, "", 1)
	}
	if timePhrase != "" {
		title = strings.Replace(title, timePhrase, "", 1)
	}
	title = highPriorityRe.ReplaceAllString(title, "")
	title = lowPriorityRe.ReplaceAllString(title, "")
	if durationPhrase != "" {
		title = strings.Replace(title, durationPhrase, "", 1)
	}

	title = strings.Join(strings.Fields(title), " ")
	title = strings.Trim(title, " ,.;-")

	if len([]rune(title)) > maxTitleLength {
		title = string([]rune(title)[:truncatedLength]) + truncationSuffix
	}
	return title
}
