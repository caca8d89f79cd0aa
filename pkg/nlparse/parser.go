package nlparse

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"personal-task-management/pkg/datemath"
)

// Parser extracts a structured task draft from one free-text utterance.
// Parsing is deterministic and never fails: an unmatched category simply
// leaves its field at the default.
type Parser struct {
	resolver *datemath.Resolver
}

// NewParser creates a parser resolving relative dates in the given IANA
// timezone.
func NewParser(timezone string) (*Parser, error) {
	resolver, err := datemath.NewResolver(timezone)
	if err != nil {
		return nil, err
	}
	return &Parser{resolver: resolver}, nil
}

// Parse maps an utterance to a Draft. The now argument anchors relative
// date phrases ("tomorrow", weekday names); identical text and now always
// produce identical output.
func (p *Parser) Parse(text string, now time.Time) Draft {
	dueDate, datePhrase := p.extractDate(text, now)
	dueTime, timePhrase := extractTime(text)
	priority := extractPriority(text)
	location := extractLocation(text)
	duration, durationPhrase := extractDuration(text)
	tags := extractTags(text)

	return Draft{
		Title:             cleanTitle(text, datePhrase, timePhrase, durationPhrase),
		Description:       text,
		DueDate:           dueDate,
		DueTime:           dueTime,
		Priority:          priority,
		Tags:              tags,
		Category:          deriveCategory(tags),
		Location:          location,
		EstimatedDuration: duration,
		VoiceCreated:      true,
		Confidence:        DefaultConfidence,
		AISuggested:       true,
		Status:            StatusPending,
	}
}

// extractDate returns the resolved due date and the full matched phrase
// (used for title cleanup). First matching rule wins.
func (p *Parser) extractDate(text string, now time.Time) (*time.Time, string) {
	for _, rule := range dateRules {
		m := rule.re.FindStringSubmatch(text)
		if m == nil || m[1] == "" {
			continue
		}

		switch rule.kind {
		case dateRelative:
			if resolved, ok := p.resolver.ResolveRelative(m[1], now); ok {
				return &resolved, m[0]
			}
		case dateNumeric:
			if resolved, ok := p.resolver.ResolveNumeric(m[1]); ok {
				return &resolved, m[0]
			}
			// Syntactically a date but out of range: treat the phrase as
			// consumed without assigning a due date.
			return nil, m[0]
		}
	}
	return nil, ""
}

// extractTime returns a 24-hour "HH:MM" string and the matched phrase.
// Conversion: pm adds 12 unless the hour is already 12, 12am becomes 0,
// and a bare hour below 8 is assumed to be afternoon.
func extractTime(text string) (string, string) {
	for _, rule := range timeRules {
		m := rule.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		hour, err := strconv.Atoi(m[rule.hourIdx])
		if err != nil {
			continue
		}
		minute := 0
		if rule.minIdx > 0 {
			minute, _ = strconv.Atoi(m[rule.minIdx])
		}
		ampm := ""
		if rule.ampmIdx > 0 {
			ampm = strings.ToLower(m[rule.ampmIdx])
		}

		switch {
		case ampm == "pm" && hour < 12:
			hour += 12
		case ampm == "am" && hour == 12:
			hour = 0
		case ampm == "" && hour < 8:
			hour += 12
		}

		if hour > 23 || minute > 59 {
			continue
		}
		return fmt.Sprintf("%02d:%02d", hour, minute), m[0]
	}
	return "", ""
}

// extractPriority classifies the utterance; high keywords are checked
// before low, so text matching both is high.
func extractPriority(text string) string {
	if highPriorityRe.MatchString(text) {
		return PriorityHigh
	}
	if lowPriorityRe.MatchString(text) {
		return PriorityLow
	}
	return PriorityMedium
}

// extractLocation returns the first "at/in <words>" capture that does not
// look like a time expression.
func extractLocation(text string) string {
	for _, re := range locationRules {
		m := re.FindStringSubmatch(text)
		if m == nil || m[1] == "" {
			continue
		}
		if timeLikeRe.MatchString(m[1]) {
			continue
		}
		return strings.TrimSpace(m[1])
	}
	return ""
}

// extractDuration returns the estimated duration in minutes and the
// matched phrase. Hour-unit rules multiply by 60.
func extractDuration(text string) (int, string) {
	for _, rule := range durationRules {
		m := rule.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return value * rule.multiplier, m[0]
	}
	return 0, ""
}

// extractTags evaluates every tag rule; all matches contribute in table
// order. The result is never empty.
func extractTags(text string) []string {
	var tags []string
	for _, rule := range tagRules {
		if rule.re.MatchString(text) {
			tags = append(tags, rule.tag)
		}
	}
	if len(tags) == 0 {
		tags = []string{DefaultTag}
	}
	return tags
}

// deriveCategory maps tag presence to a category using the fixed
// precedence table.
func deriveCategory(tags []string) string {
	present := make(map[string]bool, len(tags))
	for _, t := range tags {
		present[t] = true
	}
	for _, entry := range categoryPrecedence {
		if present[entry.tag] {
			return entry.category
		}
	}
	return CategoryGeneral
}
