package entity

import (
	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// SuggestionKind tags the variant of an AnnotationSuggestion.
// The decision processor switches exhaustively on this tag; adding a new
// annotation kind means adding a constant and updating those switches.
type SuggestionKind string

const (
	SuggestionKindSpan     SuggestionKind = "SPAN"
	SuggestionKindRelation SuggestionKind = "RELATION"
)

// NoScore marks a suggestion whose recommender did not provide a confidence.
const NoScore = -1.0

// AnnotationSuggestion is a candidate label proposed by a recommender for a
// document position. It is created by the prediction run, may be hidden by the
// filter pipeline, and is discarded on the next prediction refresh.
type AnnotationSuggestion struct {
	Id               uuid.UUID      `json:"id"`
	Kind             SuggestionKind `json:"kind"`
	RecommenderId    uuid.UUID      `json:"recommender_id"`
	RecommenderName  string         `json:"recommender_name"`
	LayerId          uuid.UUID      `json:"layer_id"`
	Feature          string         `json:"feature"`
	DocumentName     string         `json:"document_name"`
	Label            string         `json:"label"`
	UiLabel          string         `json:"ui_label"`
	Score            float64        `json:"score"`
	ScoreExplanation string         `json:"score_explanation,omitempty"`

	// Span offsets. For relations these are the offsets of the source span;
	// the governed (target) span is carried separately below.
	Begin       int    `json:"begin"`
	End         int    `json:"end"`
	CoveredText string `json:"covered_text,omitempty"`

	// Relation target span (Kind == SuggestionKindRelation only).
	TargetBegin int `json:"target_begin,omitempty"`
	TargetEnd   int `json:"target_end,omitempty"`

	// Boundaries of the prediction window this suggestion belongs to.
	WindowBegin int `json:"window_begin"`
	WindowEnd   int `json:"window_end"`

	Visible         bool                 `json:"visible"`
	ReasonForHiding LearningRecordAction `json:"reason_for_hiding,omitempty"`
}

// LabelEquals compares labels tolerating encoding variants of the same
// category (e.g. composed vs. decomposed unicode forms).
func (s *AnnotationSuggestion) LabelEquals(label string) bool {
	return norm.NFC.String(s.Label) == norm.NFC.String(label)
}

// HasScore reports whether the recommender supplied a confidence value.
func (s *AnnotationSuggestion) HasScore() bool {
	return s.Score != NoScore
}

// Hide marks the suggestion invisible, recording the action that caused it.
// Hiding is monotonic within one prediction batch: a hidden suggestion keeps
// its first reason and only a fresh prediction run may re-show it.
func (s *AnnotationSuggestion) Hide(action LearningRecordAction) {
	if !s.Visible {
		return
	}
	s.Visible = false
	s.ReasonForHiding = action
}

// PositionKey identifies the annotation opportunity the suggestion competes
// for. Suggestions with equal keys belong in the same SuggestionGroup.
func (s *AnnotationSuggestion) PositionKey() SuggestionPosition {
	return SuggestionPosition{
		DocumentName: s.DocumentName,
		LayerId:      s.LayerId,
		Feature:      s.Feature,
		Begin:        s.Begin,
		End:          s.End,
	}
}

// SuggestionPosition is the grouping key for suggestions competing for the
// same document position, layer and feature.
type SuggestionPosition struct {
	DocumentName string
	LayerId      uuid.UUID
	Feature      string
	Begin        int
	End          int
}

// Clone returns an independent copy of the suggestion.
func (s *AnnotationSuggestion) Clone() *AnnotationSuggestion {
	c := *s
	return &c
}

// WithLabel returns a copy of the suggestion carrying the given label, used
// when the user corrected the proposed value.
func (s *AnnotationSuggestion) WithLabel(label string) *AnnotationSuggestion {
	c := s.Clone()
	c.Label = label
	c.UiLabel = label
	return c
}
