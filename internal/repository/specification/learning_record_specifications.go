package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByUsername filters records by their session owner.
type ByUsername struct {
	Username string
}

func (s ByUsername) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("username = ?", s.Username)
}

// ByLayer filters by annotation layer.
type ByLayer struct {
	LayerID uuid.UUID
}

func (s ByLayer) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("layer_id = ?", s.LayerID)
}

// ByAction filters records by the user decision that produced them.
type ByAction struct {
	Action string
}

func (s ByAction) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("action = ?", s.Action)
}

// ByDocumentName filters by source document name.
type ByDocumentName struct {
	DocumentName string
}

func (s ByDocumentName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("document_name = ?", s.DocumentName)
}

// ByEventType filters event log rows by type code.
type ByEventType struct {
	EventType string
}

func (s ByEventType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("event_type = ?", s.EventType)
}
