package dto

import (
	"github.com/google/uuid"
)

// AcceptSuggestionRequest references a live suggestion by id within the
// caller's current prediction batch. The value is the label the user chose;
// it may differ from the suggested label (a correction).
type AcceptSuggestionRequest struct {
	Username     string    `json:"username" validate:"required"`
	ProjectId    uuid.UUID `json:"project_id" validate:"required"`
	SuggestionId uuid.UUID `json:"suggestion_id" validate:"required"`
	Value        string    `json:"value" validate:"required"`
}

type RejectSuggestionRequest struct {
	Username     string    `json:"username" validate:"required"`
	ProjectId    uuid.UUID `json:"project_id" validate:"required"`
	SuggestionId uuid.UUID `json:"suggestion_id" validate:"required"`
}

type SkipSuggestionRequest struct {
	Username     string    `json:"username" validate:"required"`
	ProjectId    uuid.UUID `json:"project_id" validate:"required"`
	SuggestionId uuid.UUID `json:"suggestion_id" validate:"required"`
}
