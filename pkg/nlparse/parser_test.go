package nlparse_test

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"personal-task-management/pkg/nlparse"
)

func newParser(t *testing.T) *nlparse.Parser {
	t.Helper()
	p, err := nlparse.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return p
}

// Wednesday, May 6, 2026, 10:00 UTC.
var baseNow = time.Date(2026, 5, 6, 10, 0, 0, 0, time.UTC)

func TestParseEmptyUtterance(t *testing.T) {
	p := newParser(t)

	draft := p.Parse("", baseNow)

	if draft.Title != "" {
		t.Errorf("title = %q, want empty", draft.Title)
	}
	if draft.Priority != nlparse.PriorityMedium {
		t.Errorf("priority = %q, want medium", draft.Priority)
	}
	if !reflect.DeepEqual(draft.Tags, []string{nlparse.DefaultTag}) {
		t.Errorf("tags = %v, want [general]", draft.Tags)
	}
	if draft.DueDate != nil || draft.DueTime != "" || draft.Location != "" || draft.EstimatedDuration != 0 {
		t.Errorf("optional fields must be absent: %+v", draft)
	}
	if draft.Status != nlparse.StatusPending {
		t.Errorf("status = %q, want pending", draft.Status)
	}
}

func TestParseCallMomTomorrow(t *testing.T) {
	p := newParser(t)

	draft := p.Parse("Call mom tomorrow at 3pm, urgent", baseNow)

	wantDate := time.Date(2026, 5, 7, 0, 0, 0, 0, time.UTC)
	if draft.DueDate == nil || !draft.DueDate.Equal(wantDate) {
		t.Errorf("dueDate = %v, want %v", draft.DueDate, wantDate)
	}
	if draft.DueTime != "15:00" {
		t.Errorf("dueTime = %q, want 15:00", draft.DueTime)
	}
	if draft.Priority != nlparse.PriorityHigh {
		t.Errorf("priority = %q, want high", draft.Priority)
	}
	if !hasTag(draft.Tags, "communication") {
		t.Errorf("tags = %v, want communication included", draft.Tags)
	}
	for _, stripped := range []string{"tomorrow", "at 3pm", "urgent"} {
		if strings.Contains(draft.Title, stripped) {
			t.Errorf("title %q still contains %q", draft.Title, stripped)
		}
	}
	if draft.Title != "Call mom" {
		t.Errorf("title = %q, want %q", draft.Title, "Call mom")
	}
	if draft.Description != "Call mom tomorrow at 3pm, urgent" {
		t.Errorf("description must preserve the utterance, got %q", draft.Description)
	}
}

func TestParseShoppingWithLocation(t *testing.T) {
	p := newParser(t)

	draft := p.Parse("Buy groceries at Walmart", baseNow)

	if !hasTag(draft.Tags, "shopping") {
		t.Errorf("tags = %v, want shopping included", draft.Tags)
	}
	if draft.Location != "Walmart" {
		t.Errorf("location = %q, want Walmart", draft.Location)
	}
	if draft.Category != "Shopping" {
		t.Errorf("category = %q, want Shopping", draft.Category)
	}
}

func TestParseDuration(t *testing.T) {
	p := newParser(t)

	draft := p.Parse("Team meeting for 2 hours", baseNow)

	if draft.EstimatedDuration != 120 {
		t.Errorf("estimatedDuration = %d, want 120", draft.EstimatedDuration)
	}
	if !hasTag(draft.Tags, "meeting") {
		t.Errorf("tags = %v, want meeting included", draft.Tags)
	}
}

func TestParseDateRules(t *testing.T) {
	p := newParser(t)

	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{
			name: "Prefixed relative",
			text: "Finish report by tomorrow",
			want: time.Date(2026, 5, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Due next week",
			text: "Taxes due next week",
			want: time.Date(2026, 5, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Bare today",
			text: "Water plants today",
			want: time.Date(2026, 5, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Weekday strictly after",
			text: "Dentist on friday",
			want: time.Date(2026, 5, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Same weekday rolls a full week",
			text: "Review on wednesday",
			want: time.Date(2026, 5, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Numeric slash date",
			text: "Renew passport 6/20/2026",
			want: time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Numeric dash date two-digit year",
			text: "Submit form 7-1-27",
			want: time.Date(2027, 7, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := p.Parse(tt.text, baseNow)
			if draft.DueDate == nil {
				t.Fatalf("dueDate is nil")
			}
			if !draft.DueDate.Equal(tt.want) {
				t.Errorf("dueDate = %v, want %v", draft.DueDate, tt.want)
			}
		})
	}
}

func TestParseTimeConversion(t *testing.T) {
	p := newParser(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"At with minutes pm", "Standup at 9:30 am", "09:30"},
		{"At bare hour pm", "Dinner at 7pm", "19:00"},
		{"Noon stays noon", "Lunch at 12pm", "12:00"},
		{"Midnight", "Backup at 12am", "00:00"},
		{"Bare time with minutes no suffix", "Leave 14:45 sharp", "14:45"},
		{"Bare small hour assumes afternoon", "Pick up kids 2:30", "14:30"},
		{"Morning hour without suffix stays", "Run 9:15 route", "09:15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := p.Parse(tt.text, baseNow)
			if draft.DueTime != tt.want {
				t.Errorf("dueTime = %q, want %q", draft.DueTime, tt.want)
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	p := newParser(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"High keyword", "Fix the build asap", nlparse.PriorityHigh},
		{"Low keyword", "Sort photos eventually", nlparse.PriorityLow},
		{"Default", "Read a chapter", nlparse.PriorityMedium},
		{"High wins over low", "urgent but no rush really", nlparse.PriorityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := p.Parse(tt.text, baseNow)
			if draft.Priority != tt.want {
				t.Errorf("priority = %q, want %q", draft.Priority, tt.want)
			}
		})
	}
}

func TestParseLocationGuard(t *testing.T) {
	p := newParser(t)

	// "at 3pm" looks like a location capture but is a time expression.
	draft := p.Parse("Review slides at 3pm", baseNow)
	if draft.Location != "" {
		t.Errorf("location = %q, want empty (time guard)", draft.Location)
	}

	draft = p.Parse("Meet at Central Station, then lunch", baseNow)
	if draft.Location != "Central" {
		t.Errorf("location = %q, want first non-greedy capture", draft.Location)
	}
}

func TestParseDurationUnits(t *testing.T) {
	p := newParser(t)

	tests := []struct {
		name string
		text string
		want int
	}{
		{"Hours", "Deep work 3 hours", 180},
		{"Minutes", "Stretch 15 minutes", 15},
		{"Mins", "Email triage 20 mins", 20},
		{"Shorthand hours", "Workshop 2h", 120},
		{"Shorthand minutes", "Call 45m", 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := p.Parse(tt.text, baseNow)
			if draft.EstimatedDuration != tt.want {
				t.Errorf("estimatedDuration = %d, want %d", draft.EstimatedDuration, tt.want)
			}
		})
	}
}

func TestParseTagsNeverEmpty(t *testing.T) {
	p := newParser(t)

	for _, text := range []string{
		"zzzz qqqq",
		"42",
		"Do the thing",
		"Buy milk and email Bob about the gym trip budget",
	} {
		draft := p.Parse(text, baseNow)
		if len(draft.Tags) == 0 {
			t.Errorf("tags empty for %q", text)
		}
	}
}

func TestParseTagOrder(t *testing.T) {
	p := newParser(t)

	// "email" triggers work and communication; "buy" shopping; "gym" health.
	// Order must follow the rule table, not match position in the text.
	draft := p.Parse("Buy a gym pass and email the receipt", baseNow)

	want := []string{"work", "communication", "shopping", "health"}
	if !reflect.DeepEqual(draft.Tags, want) {
		t.Errorf("tags = %v, want %v", draft.Tags, want)
	}
}

func TestParseCategoryPrecedence(t *testing.T) {
	p := newParser(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"Work beats home", "Office work at home", "Work"},
		{"Home when no work", "Clean the apartment", "Personal"},
		{"Study", "Learn the course material", "Education"},
		{"Health", "Book doctor visit", "Health"},
		{"Meeting tag alone maps to General", "Zoom with grandma", "General"},
		{"No tags", "Do something", "General"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := p.Parse(tt.text, baseNow)
			if draft.Category != tt.want {
				t.Errorf("category = %q, want %q", draft.Category, tt.want)
			}
		})
	}
}

func TestParseTitleTruncation(t *testing.T) {
	p := newParser(t)

	long := strings.Repeat("x", 150)
	draft := p.Parse(long, baseNow)

	if len([]rune(draft.Title)) != 100 {
		t.Errorf("title length = %d, want 100", len([]rune(draft.Title)))
	}
	if !strings.HasSuffix(draft.Title, "...") {
		t.Errorf("truncated title must end with ellipsis: %q", draft.Title)
	}
	if draft.Description != long {
		t.Errorf("description must keep the full utterance")
	}
}

func TestParseDeterministic(t *testing.T) {
	p := newParser(t)

	text := "Email the bank about the bill by friday at 4pm, important, 30 minutes"
	first := p.Parse(text, baseNow)
	second := p.Parse(first.Description, baseNow)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-parsing the description changed the draft:\n%+v\n%+v", first, second)
	}
}

func TestParseProvenance(t *testing.T) {
	p := newParser(t)

	draft := p.Parse("anything", baseNow)

	if !draft.VoiceCreated || !draft.AISuggested {
		t.Errorf("provenance flags must be set: %+v", draft)
	}
	if draft.Confidence != nlparse.DefaultConfidence {
		t.Errorf("confidence = %v, want %v", draft.Confidence, nlparse.DefaultConfidence)
	}
}

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}
