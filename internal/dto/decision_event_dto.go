package dto

import (
	"time"

	"github.com/google/uuid"
)

// AlternativeSuggestion is a competing suggestion at the same position,
// carried on decision events so subscribers can see what else was proposed.
type AlternativeSuggestion struct {
	RecommenderName string  `json:"recommender_name"`
	Label           string  `json:"label"`
	Score           float64 `json:"score"`
	Visible         bool    `json:"visible"`
}

// SuggestionDecisionEvent is the payload published when a user accepts,
// corrects, rejects or skips a suggestion.
type SuggestionDecisionEvent struct {
	EventType    string                  `json:"event_type"`
	ProjectId    uuid.UUID               `json:"project_id"`
	DocumentId   uuid.UUID               `json:"document_id"`
	DocumentName string                  `json:"document_name"`
	DataOwner    string                  `json:"data_owner"`
	LayerId      uuid.UUID               `json:"layer_id"`
	LayerName    string                  `json:"layer_name"`
	Feature      string                  `json:"feature"`
	Label        string                  `json:"label"`
	Begin        int                     `json:"begin"`
	End          int                     `json:"end"`
	Action       string                  `json:"action"`
	Alternatives []AlternativeSuggestion `json:"alternatives"`
	OccurredAt   time.Time               `json:"occurred_at"`
}
