package entity

import "github.com/google/uuid"

// SpanAnnotation is one annotated region of a document with its feature
// values keyed by feature name.
type SpanAnnotation struct {
	LayerId  uuid.UUID         `json:"layer_id"`
	Begin    int               `json:"begin"`
	End      int               `json:"end"`
	Features map[string]string `json:"features"`
}

// RelationAnnotation connects a source span to a target span.
type RelationAnnotation struct {
	LayerId     uuid.UUID         `json:"layer_id"`
	SourceBegin int               `json:"source_begin"`
	SourceEnd   int               `json:"source_end"`
	TargetBegin int               `json:"target_begin"`
	TargetEnd   int               `json:"target_end"`
	Features    map[string]string `json:"features"`
}

// AnnotationDocument is the mutable annotation state of one
// (document, data owner) copy.
type AnnotationDocument struct {
	DocumentId uuid.UUID             `json:"document_id"`
	DataOwner  string                `json:"data_owner"`
	Spans      []*SpanAnnotation     `json:"spans"`
	Relations  []*RelationAnnotation `json:"relations"`
}

func NewAnnotationDocument(documentId uuid.UUID, dataOwner string) *AnnotationDocument {
	return &AnnotationDocument{
		DocumentId: documentId,
		DataOwner:  dataOwner,
	}
}

// SpanAt returns the span annotation at the exact position on the layer, or
// nil when the position is unannotated.
func (d *AnnotationDocument) SpanAt(layerId uuid.UUID, begin, end int) *SpanAnnotation {
	for _, span := range d.Spans {
		if span.LayerId == layerId && span.Begin == begin && span.End == end {
			return span
		}
	}
	return nil
}

// RelationAt returns the relation annotation between the two spans on the
// layer, or nil.
func (d *AnnotationDocument) RelationAt(layerId uuid.UUID, sourceBegin, sourceEnd, targetBegin, targetEnd int) *RelationAnnotation {
	for _, rel := range d.Relations {
		if rel.LayerId == layerId &&
			rel.SourceBegin == sourceBegin && rel.SourceEnd == sourceEnd &&
			rel.TargetBegin == targetBegin && rel.TargetEnd == targetEnd {
			return rel
		}
	}
	return nil
}

// Clone returns a deep copy so callers can mutate freely before writing the
// state back.
func (d *AnnotationDocument) Clone() *AnnotationDocument {
	out := &AnnotationDocument{
		DocumentId: d.DocumentId,
		DataOwner:  d.DataOwner,
		Spans:      make([]*SpanAnnotation, 0, len(d.Spans)),
		Relations:  make([]*RelationAnnotation, 0, len(d.Relations)),
	}
	for _, span := range d.Spans {
		cp := *span
		cp.Features = cloneFeatures(span.Features)
		out.Spans = append(out.Spans, &cp)
	}
	for _, rel := range d.Relations {
		cp := *rel
		cp.Features = cloneFeatures(rel.Features)
		out.Relations = append(out.Relations, &cp)
	}
	return out
}

func cloneFeatures(features map[string]string) map[string]string {
	if features == nil {
		return nil
	}
	out := make(map[string]string, len(features))
	for k, v := range features {
		out[k] = v
	}
	return out
}
