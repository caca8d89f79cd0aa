package insight

// Suggestion kinds.
const (
	SuggestionOptimization = "optimization"
	SuggestionReminder     = "reminder"
	SuggestionInsight      = "insight"
)

// Metrics are the aggregate productivity figures for one user, all
// integers in [0,100].
type Metrics struct {
	ProductivityScore int
	CompletionRate    int
	VoiceUsageRate    int
}

// Suggestion is one personalized recommendation derived from recent task
// statistics. Suggestions are ephemeral: computed fresh per request, never
// persisted.
type Suggestion struct {
	Kind        string
	Title       string
	Description string
	Priority    string
}

// Tip is one entry from the static rotating productivity tip catalog.
type Tip struct {
	Title       string
	Description string
}

// --- UseCase inputs/outputs ---

type MetricsInput struct {
	Days int // how many trailing days of stats to aggregate (default 14)
}

type MetricsOutput struct {
	Metrics Metrics
	Days    int
}

type SuggestionsOutput struct {
	Suggestions []Suggestion
}

type TipsOutput struct {
	Tips []Tip
}
