package entity

import (
	"math"
	"sort"
)

// SuggestionGroup is an ordered collection of suggestions competing for the
// same annotation opportunity (document, layer, feature, begin, end),
// contributed by one or more recommenders. Membership does not imply equal
// labels.
type SuggestionGroup []*AnnotationSuggestion

// Visible returns the currently visible members in group order.
func (g SuggestionGroup) Visible() []*AnnotationSuggestion {
	var out []*AnnotationSuggestion
	for _, s := range g {
		if s.Visible {
			out = append(out, s)
		}
	}
	return out
}

// BestSuggestions returns the visible members that clear the score threshold,
// ordered by descending score. Ordering is deterministic: ties break on
// recommender name, then label.
func (g SuggestionGroup) BestSuggestions(prefs Preferences) []*AnnotationSuggestion {
	var out []*AnnotationSuggestion
	for _, s := range g {
		if !s.Visible {
			continue
		}
		if s.HasScore() && s.Score < prefs.ScoreThreshold {
			continue
		}
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].RecommenderName != out[j].RecommenderName {
			return out[i].RecommenderName < out[j].RecommenderName
		}
		return out[i].Label < out[j].Label
	})

	return out
}

// TopDelta selects the best visible suggestion of the group together with the
// best alternative carrying a different label, if any. Returns false if the
// group has no eligible member.
func (g SuggestionGroup) TopDelta(prefs Preferences) (Delta, bool) {
	best := g.BestSuggestions(prefs)
	if len(best) == 0 {
		return Delta{}, false
	}

	delta := Delta{First: best[0]}
	for _, s := range best[1:] {
		if !s.LabelEquals(best[0].Label) {
			delta.Second = s
			break
		}
	}
	return delta, true
}

// Delta pairs the suggestion chosen for presentation with an optional
// alternative proposing a different label for the same position. Immutable
// once constructed.
type Delta struct {
	First  *AnnotationSuggestion `json:"first"`
	Second *AnnotationSuggestion `json:"second,omitempty"`
}

// Score is the confidence margin between the chosen suggestion and its
// alternative. Groups without an alternative (or without scores) are treated
// as maximally certain.
func (d Delta) Score() float64 {
	if d.First == nil || d.Second == nil {
		return math.MaxFloat64
	}
	if !d.First.HasScore() || !d.Second.HasScore() {
		return math.MaxFloat64
	}
	return d.First.Score - d.Second.Score
}

// SuggestionDocumentGroup maps a document name to the suggestion groups within
// that document. One entry per document name.
type SuggestionDocumentGroup map[string][]SuggestionGroup

// GroupSuggestions partitions suggestions into groups by position, preserving
// the input order both across and within groups.
func GroupSuggestions(suggestions []*AnnotationSuggestion) []SuggestionGroup {
	var order []SuggestionPosition
	byPos := map[SuggestionPosition]SuggestionGroup{}

	for _, s := range suggestions {
		key := s.PositionKey()
		if _, seen := byPos[key]; !seen {
			order = append(order, key)
		}
		byPos[key] = append(byPos[key], s)
	}

	groups := make([]SuggestionGroup, 0, len(order))
	for _, key := range order {
		groups = append(groups, byPos[key])
	}
	return groups
}

// GroupSuggestionsByDocument builds a SuggestionDocumentGroup from a flat
// suggestion slice.
func GroupSuggestionsByDocument(suggestions []*AnnotationSuggestion) SuggestionDocumentGroup {
	byDoc := map[string][]*AnnotationSuggestion{}
	for _, s := range suggestions {
		byDoc[s.DocumentName] = append(byDoc[s.DocumentName], s)
	}

	out := SuggestionDocumentGroup{}
	for doc, list := range byDoc {
		out[doc] = GroupSuggestions(list)
	}
	return out
}
