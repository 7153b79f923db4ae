package entity

import (
	"time"

	"github.com/google/uuid"
)

// LayerType discriminates the annotation layer kinds the platform supports.
type LayerType string

const (
	LayerTypeSpan     LayerType = "span"
	LayerTypeRelation LayerType = "relation"
)

type Project struct {
	Id        uuid.UUID
	Name      string
	Slug      string
	CreatedAt time.Time
}

type User struct {
	Id       uuid.UUID
	Username string
	Enabled  bool
}

// AnnotationLayer describes one annotation type of a project's schema, e.g.
// "NamedEntity".
type AnnotationLayer struct {
	Id        uuid.UUID `json:"id"`
	ProjectId uuid.UUID `json:"project_id"`
	Name      string    `json:"name"`
	UiName    string    `json:"ui_name"`
	Type      LayerType `json:"type"`
	Enabled   bool      `json:"enabled"`
}

// AnnotationFeature describes one feature of a layer, e.g. "value" on
// "NamedEntity".
type AnnotationFeature struct {
	Id      uuid.UUID `json:"id"`
	LayerId uuid.UUID `json:"layer_id"`
	Name    string    `json:"name"`
	UiName  string    `json:"ui_name"`
	Type    string    `json:"type"`
}

// SourceDocument is a text document of a project. Each data owner edits their
// own annotation copy of it.
type SourceDocument struct {
	Id        uuid.UUID
	ProjectId uuid.UUID
	Name      string
	State     string
	CreatedAt time.Time
}
