package service

import (
	"context"
	"testing"

	"text-annotation-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpanAdapterUpsert(t *testing.T) {
	ctx := context.Background()
	adapter := NewSpanLayerAdapter()

	layerId := uuid.New()
	document := &entity.SourceDocument{Id: uuid.New(), Name: "doc.txt"}
	feature := &entity.AnnotationFeature{LayerId: layerId, Name: "value"}
	state := entity.NewAnnotationDocument(document.Id, "kim")

	first := &entity.AnnotationSuggestion{Kind: entity.SuggestionKindSpan, LayerId: layerId, Label: "PER", Begin: 0, End: 4}
	require.NoError(t, adapter.UpsertSpanFeature(ctx, state, document, "kim", feature, first))

	require.Len(t, state.Spans, 1)
	assert.Equal(t, "PER", state.Spans[0].Features["value"])

	// Same position updates in place instead of stacking annotations.
	update := &entity.AnnotationSuggestion{Kind: entity.SuggestionKindSpan, LayerId: layerId, Label: "ORG", Begin: 0, End: 4}
	require.NoError(t, adapter.UpsertSpanFeature(ctx, state, document, "kim", feature, update))

	require.Len(t, state.Spans, 1)
	assert.Equal(t, "ORG", state.Spans[0].Features["value"])

	// A different position is a new annotation.
	other := &entity.AnnotationSuggestion{Kind: entity.SuggestionKindSpan, LayerId: layerId, Label: "LOC", Begin: 10, End: 14}
	require.NoError(t, adapter.UpsertSpanFeature(ctx, state, document, "kim", feature, other))
	assert.Len(t, state.Spans, 2)
}

func TestSpanAdapterRejectsInvalidOffsets(t *testing.T) {
	adapter := NewSpanLayerAdapter()
	document := &entity.SourceDocument{Id: uuid.New(), Name: "doc.txt"}
	feature := &entity.AnnotationFeature{Name: "value"}
	state := entity.NewAnnotationDocument(document.Id, "kim")

	bad := &entity.AnnotationSuggestion{Kind: entity.SuggestionKindSpan, Label: "PER", Begin: 10, End: 4}

	err := adapter.UpsertSpanFeature(context.Background(), state, document, "kim", feature, bad)

	var annErr *AnnotationError
	require.ErrorAs(t, err, &annErr)
	assert.Equal(t, "doc.txt", annErr.DocumentName)
	assert.Empty(t, state.Spans)
}

func TestSpanAdapterRejectsRelationUpsert(t *testing.T) {
	adapter := NewSpanLayerAdapter()
	document := &entity.SourceDocument{Id: uuid.New(), Name: "doc.txt"}
	state := entity.NewAnnotationDocument(document.Id, "kim")

	err := adapter.UpsertRelationFeature(context.Background(), state, document, "kim",
		&entity.AnnotationFeature{Name: "value"},
		&entity.AnnotationSuggestion{Kind: entity.SuggestionKindRelation})

	var annErr *AnnotationError
	assert.ErrorAs(t, err, &annErr)
}

func TestRelationAdapterUpsert(t *testing.T) {
	ctx := context.Background()
	adapter := NewRelationLayerAdapter()

	layerId := uuid.New()
	document := &entity.SourceDocument{Id: uuid.New(), Name: "doc.txt"}
	feature := &entity.AnnotationFeature{LayerId: layerId, Name: "relation"}
	state := entity.NewAnnotationDocument(document.Id, "kim")

	suggestion := &entity.AnnotationSuggestion{
		Kind: entity.SuggestionKindRelation, LayerId: layerId, Label: "works_for",
		Begin: 0, End: 4, TargetBegin: 10, TargetEnd: 14,
	}

	require.NoError(t, adapter.UpsertRelationFeature(ctx, state, document, "kim", feature, suggestion))
	require.Len(t, state.Relations, 1)
	assert.Equal(t, "works_for", state.Relations[0].Features["relation"])

	// Upserting the same pair updates the feature value.
	suggestion = &entity.AnnotationSuggestion{
		Kind: entity.SuggestionKindRelation, LayerId: layerId, Label: "employed_by",
		Begin: 0, End: 4, TargetBegin: 10, TargetEnd: 14,
	}
	require.NoError(t, adapter.UpsertRelationFeature(ctx, state, document, "kim", feature, suggestion))
	require.Len(t, state.Relations, 1)
	assert.Equal(t, "employed_by", state.Relations[0].Features["relation"])
}

func TestInMemoryAnnotationStorageIsolation(t *testing.T) {
	ctx := context.Background()
	storage := NewInMemoryAnnotationStorage()
	document := &entity.SourceDocument{Id: uuid.New(), Name: "doc.txt"}

	cas, err := storage.ReadAnnotationCas(ctx, document, "kim")
	require.NoError(t, err)
	state := cas.(*entity.AnnotationDocument)

	// Mutating an unwritten copy does not leak into the store.
	state.Spans = append(state.Spans, &entity.SpanAnnotation{Begin: 0, End: 4})

	fresh, err := storage.ReadAnnotationCas(ctx, document, "kim")
	require.NoError(t, err)
	assert.Empty(t, fresh.(*entity.AnnotationDocument).Spans)

	require.NoError(t, storage.WriteAnnotationCas(ctx, state, document, "kim"))

	persisted, err := storage.ReadAnnotationCas(ctx, document, "kim")
	require.NoError(t, err)
	assert.Len(t, persisted.(*entity.AnnotationDocument).Spans, 1)

	// Other data owners have their own copy.
	other, err := storage.ReadAnnotationCas(ctx, document, "alex")
	require.NoError(t, err)
	assert.Empty(t, other.(*entity.AnnotationDocument).Spans)
}

func TestPrimitiveFeatureSupport(t *testing.T) {
	registry := NewPrimitiveFeatureSupport()
	feature := &entity.AnnotationFeature{Name: "value"}

	tests := []struct {
		name    string
		value   interface{}
		want    string
		wantErr bool
	}{
		{name: "string", value: "PER", want: "PER"},
		{name: "bool", value: true, want: "true"},
		{name: "int", value: 42, want: "42"},
		{name: "float", value: 0.5, want: "0.5"},
		{name: "nil", value: nil, wantErr: true},
		{name: "unsupported struct", value: struct{}{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := registry.UnwrapFeatureValue(feature, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
