package entity

import (
	"time"

	"github.com/google/uuid"
)

// Preferences are the strategy tuning knobs for a (user, project) pair.
type Preferences struct {
	ScoreThreshold float64 `json:"score_threshold"`
	MaxSuggestions int     `json:"max_suggestions"`
}

// Predictions is one prediction batch: the full set of suggestions the
// recommenders generated for a (user, project) at a point in time. A batch is
// replaced wholesale on refresh; it is never partially updated.
type Predictions struct {
	ProjectId    uuid.UUID               `json:"project_id"`
	SessionOwner string                  `json:"session_owner"`
	GeneratedAt  time.Time               `json:"generated_at"`
	Suggestions  []*AnnotationSuggestion `json:"suggestions"`
}

// GroupedPredictions returns the span suggestion groups of the batch for one
// layer, restricted to the given accessible documents, keyed by document name.
func (p *Predictions) GroupedPredictions(layerId uuid.UUID, accessibleDocs []string) SuggestionDocumentGroup {
	allowed := make(map[string]bool, len(accessibleDocs))
	for _, d := range accessibleDocs {
		allowed[d] = true
	}

	var filtered []*AnnotationSuggestion
	for _, s := range p.Suggestions {
		if s.Kind != SuggestionKindSpan {
			continue
		}
		if s.LayerId != layerId || !allowed[s.DocumentName] {
			continue
		}
		filtered = append(filtered, s)
	}
	return GroupSuggestionsByDocument(filtered)
}

// PredictionsAt returns all suggestions of the batch competing for the exact
// (document, layer, begin, end, feature) position, regardless of visibility.
func (p *Predictions) PredictionsAt(documentName string, layerId uuid.UUID, begin, end int, feature string) []*AnnotationSuggestion {
	var out []*AnnotationSuggestion
	for _, s := range p.Suggestions {
		if s.DocumentName == documentName && s.LayerId == layerId &&
			s.Begin == begin && s.End == end && s.Feature == feature {
			out = append(out, s)
		}
	}
	return out
}

// FindSuggestion resolves a suggestion of the batch by id. Returns nil when
// the id does not belong to this batch (e.g. the batch was refreshed since
// the reference was handed out).
func (p *Predictions) FindSuggestion(id uuid.UUID) *AnnotationSuggestion {
	for _, s := range p.Suggestions {
		if s.Id == id {
			return s
		}
	}
	return nil
}
