package nlparse

import "regexp"

// Extraction is rule-table driven: each category holds an ordered list of
// (pattern, interpretation) pairs evaluated in sequence. Within a category
// the first applicable rule wins; categories are independent of each other.

type dateRuleKind int

const (
	dateRelative dateRuleKind = iota
	dateNumeric
)

type dateRule struct {
	re   *regexp.Regexp
	kind dateRuleKind
}

// Date rules in priority order: prefixed relative phrase, bare relative
// phrase, then numeric M/D/YY and M-D-YY forms.
var dateRules = []dateRule{
	{regexp.MustCompile(`(?i)(?:by|due|on)\s+(tomorrow|today|next\s+week|this\s+week|monday|tuesday|wednesday|thursday|friday|saturday|sunday)`), dateRelative},
	{regexp.MustCompile(`(?i)(tomorrow|today|next\s+week|this\s+week)`), dateRelative},
	{regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{2,4})`), dateNumeric},
	{regexp.MustCompile(`(\d{1,2}-\d{1,2}-\d{2,4})`), dateNumeric},
}

// timeRule maps a pattern's capture groups to hour/minute/meridiem.
// A zero group index means the component is absent from the pattern.
type timeRule struct {
	re      *regexp.Regexp
	hourIdx int
	minIdx  int
	ampmIdx int
}

var timeRules = []timeRule{
	{regexp.MustCompile(`(?i)at\s(\d{1,2}):(\d{2})\s?(am|pm)`), 1, 2, 3},
	{regexp.MustCompile(`(?i)at\s(\d{1,2})\s?(am|pm)`), 1, 0, 2},
	{regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s?(am|pm)`), 1, 2, 3},
	{regexp.MustCompile(`(?i)(\d{1,2})\s*(am|pm)`), 1, 0, 2},
	{regexp.MustCompile(`(\d{1,2}):(\d{2})`), 1, 2, 0},
}

// Priority keyword sets. High is tested before low, so an utterance
// matching both classifies as high.
var (
	highPriorityRe = regexp.MustCompile(`(?i)urgent|asap|immediate|critical|important|high\s+priority|emergency`)
	lowPriorityRe  = regexp.MustCompile(`(?i)sometime|when\s+you\s+can|low\s+priority|later|eventually|no\s+rush`)
)

// Location rules: "at <words>" then "in <words>", non-greedy up to the next
// separator. timeLikeRe guards against reading "at 3pm" as a place.
var (
	locationRules = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bat\s+([^,\s]+(?:\s+[^,\s]+)*?)(?:\s|,|$)`),
		regexp.MustCompile(`(?i)\bin\s+([^,\s]+(?:\s+[^,\s]+)*?)(?:\s|,|$)`),
	}
	timeLikeRe = regexp.MustCompile(`(?i)\d{1,2}:?\d{0,2}\s?(am|pm)`)
)

// durationRule carries the minutes-per-unit multiplier for its pattern.
type durationRule struct {
	re         *regexp.Regexp
	multiplier int
}

var durationRules = []durationRule{
	{regexp.MustCompile(`(?i)(\d+)\s?hours?`), 60},
	{regexp.MustCompile(`(?i)(\d+)\s?minutes?`), 1},
	{regexp.MustCompile(`(?i)(\d+)\s?mins?`), 1},
	{regexp.MustCompile(`(?i)(\d+)h`), 60},
	{regexp.MustCompile(`(?i)(\d+)m`), 1},
}

// tagRule appends its tag when the keyword set matches. Unlike the other
// categories, every matching rule contributes, in table order.
type tagRule struct {
	tag string
	re  *regexp.Regexp
}

var tagRules = []tagRule{
	{"work", regexp.MustCompile(`(?i)work|job|office|meeting|call|email|project|deadline`)},
	{"home", regexp.MustCompile(`(?i)home|house|apartment|family|personal`)},
	{"study", regexp.MustCompile(`(?i)study|school|class|learn|course|homework|assignment`)},
	{"meeting", regexp.MustCompile(`(?i)meeting|call|conference|zoom|teams`)},
	{"communication", regexp.MustCompile(`(?i)call|email|mail|message|reply|respond`)},
	{"shopping", regexp.MustCompile(`(?i)buy|purchase|order|shop|store|market`)},
	{"health", regexp.MustCompile(`(?i)health|doctor|appointment|exercise|gym|workout`)},
	{"travel", regexp.MustCompile(`(?i)travel|trip|vacation|flight|hotel`)},
	{"finance", regexp.MustCompile(`(?i)finance|money|bank|pay|bill|budget`)},
}

// DefaultTag is assigned when no tag rule matches.
const DefaultTag = "general"

// categoryByTag maps tag presence to a display category, checked in fixed
// precedence order. Meeting, communication, travel and finance tags carry
// no category of their own.
var categoryPrecedence = []struct {
	tag      string
	category string
}{
	{"work", "Work"},
	{"home", "Personal"},
	{"study", "Education"},
	{"health", "Health"},
	{"shopping", "Shopping"},
}

// CategoryGeneral is the fallback category.
const CategoryGeneral = "General"
