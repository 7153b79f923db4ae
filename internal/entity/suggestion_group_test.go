package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSuggestion(recommender, label string, score float64) *AnnotationSuggestion {
	return &AnnotationSuggestion{
		Kind:            SuggestionKindSpan,
		RecommenderName: recommender,
		DocumentName:    "doc.txt",
		Feature:         "value",
		Label:           label,
		Score:           score,
		Visible:         true,
	}
}

func TestBestSuggestions(t *testing.T) {
	tests := []struct {
		name       string
		group      SuggestionGroup
		prefs      Preferences
		wantLabels []string
	}{
		{
			name: "ordered by descending score",
			group: SuggestionGroup{
				makeSuggestion("r1", "ORG", 0.3),
				makeSuggestion("r1", "PER", 0.9),
				makeSuggestion("r2", "LOC", 0.6),
			},
			wantLabels: []string{"PER", "LOC", "ORG"},
		},
		{
			name: "threshold drops low scores",
			group: SuggestionGroup{
				makeSuggestion("r1", "PER", 0.9),
				makeSuggestion("r1", "ORG", 0.2),
			},
			prefs:      Preferences{ScoreThreshold: 0.5},
			wantLabels: []string{"PER"},
		},
		{
			name: "unscored suggestions always pass the threshold",
			group: SuggestionGroup{
				makeSuggestion("r1", "PER", NoScore),
			},
			prefs:      Preferences{ScoreThreshold: 0.5},
			wantLabels: []string{"PER"},
		},
		{
			name: "hidden members are excluded",
			group: func() SuggestionGroup {
				hidden := makeSuggestion("r1", "PER", 0.9)
				hidden.Hide(ActionRejected)
				return SuggestionGroup{hidden, makeSuggestion("r2", "ORG", 0.4)}
			}(),
			wantLabels: []string{"ORG"},
		},
		{
			name: "score ties break on recommender name then label",
			group: SuggestionGroup{
				makeSuggestion("zeta", "PER", 0.5),
				makeSuggestion("alpha", "ORG", 0.5),
				makeSuggestion("alpha", "LOC", 0.5),
			},
			wantLabels: []string{"LOC", "ORG", "PER"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best := tt.group.BestSuggestions(tt.prefs)
			labels := make([]string, len(best))
			for i, s := range best {
				labels[i] = s.Label
			}
			assert.Equal(t, tt.wantLabels, labels)
		})
	}
}

func TestTopDelta(t *testing.T) {
	t.Run("second is the best different label", func(t *testing.T) {
		group := SuggestionGroup{
			makeSuggestion("r1", "PER", 0.9),
			makeSuggestion("r2", "PER", 0.8), // same label, must be skipped
			makeSuggestion("r3", "ORG", 0.7),
		}

		delta, ok := group.TopDelta(Preferences{})
		require.True(t, ok)
		assert.Equal(t, "PER", delta.First.Label)
		require.NotNil(t, delta.Second)
		assert.Equal(t, "ORG", delta.Second.Label)
		assert.InDelta(t, 0.2, delta.Score(), 1e-9)
	})

	t.Run("no alternative label means no second", func(t *testing.T) {
		group := SuggestionGroup{
			makeSuggestion("r1", "PER", 0.9),
			makeSuggestion("r2", "PER", 0.8),
		}

		delta, ok := group.TopDelta(Preferences{})
		require.True(t, ok)
		assert.Nil(t, delta.Second)
		assert.Equal(t, math.MaxFloat64, delta.Score())
	})

	t.Run("empty group has no delta", func(t *testing.T) {
		_, ok := SuggestionGroup{}.TopDelta(Preferences{})
		assert.False(t, ok)
	})

	t.Run("unscored members are maximally certain", func(t *testing.T) {
		group := SuggestionGroup{
			makeSuggestion("r1", "PER", NoScore),
			makeSuggestion("r2", "ORG", NoScore),
		}

		delta, ok := group.TopDelta(Preferences{})
		require.True(t, ok)
		assert.Equal(t, math.MaxFloat64, delta.Score())
	})
}

func TestGroupSuggestionsPreservesOrder(t *testing.T) {
	a := makeSuggestion("r1", "PER", 0.9)
	a.Begin, a.End = 0, 4
	b := makeSuggestion("r2", "ORG", 0.8)
	b.Begin, b.End = 0, 4
	c := makeSuggestion("r1", "LOC", 0.7)
	c.Begin, c.End = 10, 14

	groups := GroupSuggestions([]*AnnotationSuggestion{a, b, c})

	require.Len(t, groups, 2)
	assert.Equal(t, SuggestionGroup{a, b}, groups[0])
	assert.Equal(t, SuggestionGroup{c}, groups[1])
}

func TestGroupSuggestionsByDocument(t *testing.T) {
	a := makeSuggestion("r1", "PER", 0.9)
	b := makeSuggestion("r1", "ORG", 0.8)
	b.DocumentName = "other.txt"

	byDoc := GroupSuggestionsByDocument([]*AnnotationSuggestion{a, b})

	require.Len(t, byDoc, 2)
	assert.Len(t, byDoc["doc.txt"], 1)
	assert.Len(t, byDoc["other.txt"], 1)
}
