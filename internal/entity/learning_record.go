package entity

import (
	"time"

	"github.com/google/uuid"
)

// LearningRecordAction is the decision a user took on a suggestion.
type LearningRecordAction string

const (
	ActionAccepted  LearningRecordAction = "ACCEPTED"
	ActionRejected  LearningRecordAction = "REJECTED"
	ActionCorrected LearningRecordAction = "CORRECTED"
	ActionSkipped   LearningRecordAction = "SKIPPED"
)

// LearningRecordChangeLocation identifies the UI surface the decision was taken from.
type LearningRecordChangeLocation string

const (
	LocationALSidebar  LearningRecordChangeLocation = "AL_SIDEBAR"
	LocationMainEditor LearningRecordChangeLocation = "MAIN_EDITOR"
)

// LearningRecord is an append-only audit entry of a user decision on a suggestion.
// Records are never mutated by this service once written.
type LearningRecord struct {
	Id             uuid.UUID
	Username       string // session owner
	ProjectId      uuid.UUID
	DocumentId     uuid.UUID
	DocumentName   string
	LayerId        uuid.UUID
	Feature        string
	Annotation     string // the suggested label the decision was about
	OffsetBegin    int
	OffsetEnd      int
	SuggestionKind SuggestionKind
	Action         LearningRecordAction
	ChangeLocation LearningRecordChangeLocation
	Details        map[string]interface{} // score, explanation, recommender snapshot
	CreatedAt      time.Time
}

// Matches reports whether the record refers to the same annotation opportunity
// and label as the given suggestion.
func (r *LearningRecord) Matches(s *AnnotationSuggestion) bool {
	return r.DocumentName == s.DocumentName &&
		r.OffsetBegin == s.Begin &&
		r.OffsetEnd == s.End &&
		s.LabelEquals(r.Annotation)
}
