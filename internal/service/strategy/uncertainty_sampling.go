package strategy

import (
	"sort"

	"text-annotation-be/internal/entity"
)

const UncertaintySamplingName = "uncertainty_sampling"

// UncertaintySamplingStrategy presents the suggestion the recommenders are
// least certain about: the group with the smallest confidence margin between
// its best suggestion and the best alternative label.
type UncertaintySamplingStrategy struct{}

func NewUncertaintySamplingStrategy() *UncertaintySamplingStrategy {
	return &UncertaintySamplingStrategy{}
}

func (s *UncertaintySamplingStrategy) Name() string {
	return UncertaintySamplingName
}

func (s *UncertaintySamplingStrategy) GenerateNextSuggestion(prefs entity.Preferences, groups []entity.SuggestionGroup) (entity.Delta, bool) {
	deltas := collectDeltas(prefs, groups)
	if len(deltas) == 0 {
		return entity.Delta{}, false
	}

	// Stable sort on top of the position order keeps ties deterministic.
	sort.SliceStable(deltas, func(i, j int) bool {
		return deltas[i].Score() < deltas[j].Score()
	})

	return deltas[0], true
}
