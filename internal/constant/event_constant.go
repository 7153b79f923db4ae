package constant

// Event type codes published on the bus for user decisions on suggestions.
const (
	EventSuggestionAccepted  = "SUGGESTION_ACCEPTED"
	EventSuggestionRejected  = "SUGGESTION_REJECTED"
	EventSuggestionCorrected = "SUGGESTION_CORRECTED"
	EventSuggestionSkipped   = "SUGGESTION_SKIPPED"
)

// DecisionEventsTopic is the in-process watermill topic decision events are
// published on.
const DecisionEventsTopic = "al.suggestion.decisions"
