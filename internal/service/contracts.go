package service

import (
	"context"

	"text-annotation-be/internal/dto"
	"text-annotation-be/internal/entity"

	"github.com/google/uuid"
)

// AnnotationCas is the opaque mutable annotation state of one
// (document, data owner) copy. The storage collaborator owns its concrete
// representation; this service only threads it between read, upsert and
// write.
type AnnotationCas interface{}

// AnnotationStorage loads and persists per data owner annotation state.
// Concurrent writes on the same (document, data owner) pair are serialized by
// the storage implementation.
type AnnotationStorage interface {
	ReadAnnotationCas(ctx context.Context, document *entity.SourceDocument, dataOwner string) (AnnotationCas, error)
	WriteAnnotationCas(ctx context.Context, cas AnnotationCas, document *entity.SourceDocument, dataOwner string) error
}

// AnnotationAdapter applies a suggestion to the annotation state of a layer,
// creating or updating the span or relation feature value. Semantic conflicts
// (e.g. incompatible overlap) surface as *AnnotationError.
type AnnotationAdapter interface {
	UpsertSpanFeature(ctx context.Context, cas AnnotationCas, document *entity.SourceDocument, dataOwner string,
		feature *entity.AnnotationFeature, suggestion *entity.AnnotationSuggestion) error
	UpsertRelationFeature(ctx context.Context, cas AnnotationCas, document *entity.SourceDocument, dataOwner string,
		feature *entity.AnnotationFeature, suggestion *entity.AnnotationSuggestion) error
}

// FeatureSupportRegistry converts a user supplied value into the feature's
// native label representation.
type FeatureSupportRegistry interface {
	UnwrapFeatureValue(feature *entity.AnnotationFeature, value interface{}) (string, error)
}

// RecommendationEngine exposes the latest prediction batch and the strategy
// preferences per (user, project). GetPredictions returns nil while no
// prediction run has completed.
type RecommendationEngine interface {
	GetPredictions(username string, projectId uuid.UUID) *entity.Predictions
	GetPreferences(username string, projectId uuid.UUID) entity.Preferences
}

// DecisionEventPublisher emits suggestion decision events. Fire and forget:
// the contract ends at "message enqueued", publish failures must not fail the
// decision itself.
type DecisionEventPublisher interface {
	PublishDecision(ctx context.Context, event *dto.SuggestionDecisionEvent) error
}
