package service

import (
	"context"
	"fmt"

	"text-annotation-be/internal/entity"
)

// spanLayerAdapter applies suggestions to span layers: one annotation per
// (layer, begin, end), feature values keyed by feature name.
type spanLayerAdapter struct{}

// relationLayerAdapter applies suggestions to relation layers keyed by the
// source and target span positions.
type relationLayerAdapter struct{}

func NewSpanLayerAdapter() AnnotationAdapter {
	return &spanLayerAdapter{}
}

func NewRelationLayerAdapter() AnnotationAdapter {
	return &relationLayerAdapter{}
}

// DefaultAdapters wires one adapter per supported layer type.
func DefaultAdapters() map[entity.LayerType]AnnotationAdapter {
	return map[entity.LayerType]AnnotationAdapter{
		entity.LayerTypeSpan:     NewSpanLayerAdapter(),
		entity.LayerTypeRelation: NewRelationLayerAdapter(),
	}
}

func asAnnotationDocument(cas AnnotationCas, document *entity.SourceDocument, suggestion *entity.AnnotationSuggestion) (*entity.AnnotationDocument, error) {
	state, ok := cas.(*entity.AnnotationDocument)
	if !ok {
		return nil, &AnnotationError{
			DocumentName: document.Name,
			Begin:        suggestion.Begin,
			End:          suggestion.End,
			Message:      fmt.Sprintf("unsupported annotation state type %T", cas),
		}
	}
	return state, nil
}

func (a *spanLayerAdapter) UpsertSpanFeature(ctx context.Context, cas AnnotationCas, document *entity.SourceDocument, dataOwner string,
	feature *entity.AnnotationFeature, suggestion *entity.AnnotationSuggestion) error {

	state, err := asAnnotationDocument(cas, document, suggestion)
	if err != nil {
		return err
	}

	if suggestion.Begin < 0 || suggestion.End < suggestion.Begin {
		return &AnnotationError{
			DocumentName: document.Name,
			Begin:        suggestion.Begin,
			End:          suggestion.End,
			Message:      "invalid span offsets",
		}
	}

	span := state.SpanAt(suggestion.LayerId, suggestion.Begin, suggestion.End)
	if span == nil {
		span = &entity.SpanAnnotation{
			LayerId: suggestion.LayerId,
			Begin:   suggestion.Begin,
			End:     suggestion.End,
		}
		state.Spans = append(state.Spans, span)
	}
	if span.Features == nil {
		span.Features = make(map[string]string)
	}
	span.Features[feature.Name] = suggestion.Label

	return nil
}

func (a *spanLayerAdapter) UpsertRelationFeature(ctx context.Context, cas AnnotationCas, document *entity.SourceDocument, dataOwner string,
	feature *entity.AnnotationFeature, suggestion *entity.AnnotationSuggestion) error {
	return &AnnotationError{
		DocumentName: document.Name,
		Begin:        suggestion.Begin,
		End:          suggestion.End,
		Message:      "span layer cannot hold relation annotations",
	}
}

func (a *relationLayerAdapter) UpsertSpanFeature(ctx context.Context, cas AnnotationCas, document *entity.SourceDocument, dataOwner string,
	feature *entity.AnnotationFeature, suggestion *entity.AnnotationSuggestion) error {
	return &AnnotationError{
		DocumentName: document.Name,
		Begin:        suggestion.Begin,
		End:          suggestion.End,
		Message:      "relation layer cannot hold span annotations",
	}
}

func (a *relationLayerAdapter) UpsertRelationFeature(ctx context.Context, cas AnnotationCas, document *entity.SourceDocument, dataOwner string,
	feature *entity.AnnotationFeature, suggestion *entity.AnnotationSuggestion) error {

	state, err := asAnnotationDocument(cas, document, suggestion)
	if err != nil {
		return err
	}

	rel := state.RelationAt(suggestion.LayerId,
		suggestion.Begin, suggestion.End,
		suggestion.TargetBegin, suggestion.TargetEnd)
	if rel == nil {
		rel = &entity.RelationAnnotation{
			LayerId:     suggestion.LayerId,
			SourceBegin: suggestion.Begin,
			SourceEnd:   suggestion.End,
			TargetBegin: suggestion.TargetBegin,
			TargetEnd:   suggestion.TargetEnd,
		}
		state.Relations = append(state.Relations, rel)
	}
	if rel.Features == nil {
		rel.Features = make(map[string]string)
	}
	rel.Features[feature.Name] = suggestion.Label

	return nil
}
