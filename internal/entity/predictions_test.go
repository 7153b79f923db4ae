package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupedPredictions(t *testing.T) {
	layerId := uuid.New()
	otherLayer := uuid.New()

	span := &AnnotationSuggestion{Id: uuid.New(), Kind: SuggestionKindSpan, LayerId: layerId, DocumentName: "a.txt", Feature: "value", Visible: true}
	relation := &AnnotationSuggestion{Id: uuid.New(), Kind: SuggestionKindRelation, LayerId: layerId, DocumentName: "a.txt", Feature: "value", Visible: true}
	wrongLayer := &AnnotationSuggestion{Id: uuid.New(), Kind: SuggestionKindSpan, LayerId: otherLayer, DocumentName: "a.txt", Feature: "value", Visible: true}
	inaccessible := &AnnotationSuggestion{Id: uuid.New(), Kind: SuggestionKindSpan, LayerId: layerId, DocumentName: "hidden.txt", Feature: "value", Visible: true}

	p := &Predictions{
		Suggestions: []*AnnotationSuggestion{span, relation, wrongLayer, inaccessible},
	}

	grouped := p.GroupedPredictions(layerId, []string{"a.txt"})

	require.Len(t, grouped, 1)
	require.Len(t, grouped["a.txt"], 1)
	assert.Equal(t, span, grouped["a.txt"][0][0])
}

func TestPredictionsAt(t *testing.T) {
	layerId := uuid.New()
	at := func(label string, begin, end int) *AnnotationSuggestion {
		return &AnnotationSuggestion{
			Id: uuid.New(), Kind: SuggestionKindSpan, LayerId: layerId,
			DocumentName: "a.txt", Feature: "value", Label: label,
			Begin: begin, End: end,
		}
	}

	first := at("PER", 0, 4)
	second := at("ORG", 0, 4)
	second.Visible = false // visibility does not matter here
	elsewhere := at("LOC", 10, 14)

	p := &Predictions{Suggestions: []*AnnotationSuggestion{first, second, elsewhere}}

	got := p.PredictionsAt("a.txt", layerId, 0, 4, "value")
	assert.Equal(t, []*AnnotationSuggestion{first, second}, got)
}

func TestFindSuggestionStaleReference(t *testing.T) {
	known := &AnnotationSuggestion{Id: uuid.New()}
	p := &Predictions{Suggestions: []*AnnotationSuggestion{known}}

	assert.Equal(t, known, p.FindSuggestion(known.Id))
	assert.Nil(t, p.FindSuggestion(uuid.New()))
}
