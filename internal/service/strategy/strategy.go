package strategy

import (
	"sort"

	"text-annotation-be/internal/entity"
)

// ActiveLearningStrategy picks at most one suggestion delta to present next
// out of the filtered suggestion groups. Implementations must be
// deterministic: identical preferences and groups produce identical output,
// so a UI refresh is idempotent.
type ActiveLearningStrategy interface {
	Name() string
	GenerateNextSuggestion(prefs entity.Preferences, groups []entity.SuggestionGroup) (entity.Delta, bool)
}

// collectDeltas computes the per-group top deltas in a stable position order
// (document, begin, end, feature). Groups without eligible members are
// dropped.
func collectDeltas(prefs entity.Preferences, groups []entity.SuggestionGroup) []entity.Delta {
	var deltas []entity.Delta
	for _, group := range groups {
		if delta, ok := group.TopDelta(prefs); ok {
			deltas = append(deltas, delta)
		}
	}

	sort.SliceStable(deltas, func(i, j int) bool {
		a, b := deltas[i].First, deltas[j].First
		if a.DocumentName != b.DocumentName {
			return a.DocumentName < b.DocumentName
		}
		if a.Begin != b.Begin {
			return a.Begin < b.Begin
		}
		if a.End != b.End {
			return a.End < b.End
		}
		return a.Feature < b.Feature
	})

	return deltas
}
