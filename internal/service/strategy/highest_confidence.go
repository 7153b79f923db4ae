package strategy

import (
	"sort"

	"text-annotation-be/internal/entity"
)

const HighestConfidenceName = "highest_confidence"

// HighestConfidenceStrategy presents the suggestion with the highest
// confidence score first, walking the corpus in position order on ties.
type HighestConfidenceStrategy struct{}

func NewHighestConfidenceStrategy() *HighestConfidenceStrategy {
	return &HighestConfidenceStrategy{}
}

func (s *HighestConfidenceStrategy) Name() string {
	return HighestConfidenceName
}

func (s *HighestConfidenceStrategy) GenerateNextSuggestion(prefs entity.Preferences, groups []entity.SuggestionGroup) (entity.Delta, bool) {
	deltas := collectDeltas(prefs, groups)
	if len(deltas) == 0 {
		return entity.Delta{}, false
	}

	sort.SliceStable(deltas, func(i, j int) bool {
		return deltas[i].First.Score > deltas[j].First.Score
	})

	return deltas[0], true
}
