package nlparse

import "time"

// Priority levels assigned by the parser.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// StatusPending is the initial status of every parsed draft.
const StatusPending = "pending"

// DefaultConfidence is the fixed confidence score attached to parsed
// drafts. Extraction is heuristic, so the score is a constant rather than
// a measured value.
const DefaultConfidence = 0.85

// Draft is the structured partial task produced from one free-text
// utterance. The caller attaches ownership and persists it.
type Draft struct {
	Title             string
	Description       string // original utterance, unmodified
	DueDate           *time.Time
	DueTime           string // "HH:MM" 24-hour, empty when absent
	Priority          string
	Tags              []string // never empty
	Category          string
	Location          string
	EstimatedDuration int // minutes, 0 when absent

	VoiceCreated bool
	Confidence   float64
	AISuggested  bool
	Status       string
}
