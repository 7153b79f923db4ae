package entity

import (
	"fmt"

	"github.com/google/uuid"
)

// ActiveLearningUserState is the process-resident active learning session of
// one (user, project) pair. It is serializable so it can be stored across
// requests. Mutators must only be invoked by the owning user's requests; the
// caller serializes requests per key.
type ActiveLearningUserState struct {
	SessionActive       bool              `json:"session_active"`
	DoExistRecommenders bool              `json:"do_exist_recommenders"`
	Layer               *AnnotationLayer  `json:"layer,omitempty"`
	StrategyName        string            `json:"strategy_name"`
	Suggestions         []SuggestionGroup `json:"suggestions"`
	CurrentDelta        *Delta            `json:"current_delta,omitempty"`
	LeftContext         string            `json:"left_context"`
	RightContext        string            `json:"right_context"`
}

func NewActiveLearningUserState() *ActiveLearningUserState {
	return &ActiveLearningUserState{
		DoExistRecommenders: true,
	}
}

// Suggestion returns the suggestion currently presented to the user, derived
// from the current delta's primary member.
func (s *ActiveLearningUserState) Suggestion() (*AnnotationSuggestion, bool) {
	if s.CurrentDelta == nil || s.CurrentDelta.First == nil {
		return nil, false
	}
	return s.CurrentDelta.First, true
}

// SetSuggestions replaces the filtered group snapshot wholesale.
func (s *ActiveLearningUserState) SetSuggestions(groups []SuggestionGroup) {
	s.Suggestions = groups
}

// SetCurrentDelta records the delta to present next; pass nil to clear.
func (s *ActiveLearningUserState) SetCurrentDelta(delta *Delta) {
	s.CurrentDelta = delta
}

// ALSessionKey identifies a session in the process-wide session table.
func ALSessionKey(username string, projectId uuid.UUID) string {
	return fmt.Sprintf("%s:%s", username, projectId)
}
