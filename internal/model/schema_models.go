package model

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Slug      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Project) TableName() string {
	return "projects"
}

type AnnotationLayer struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectId uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	UiName    string    `gorm:"type:varchar(255)"`
	Type      string    `gorm:"type:varchar(32);not null"`
	Enabled   bool      `gorm:"not null;default:true"`
}

func (AnnotationLayer) TableName() string {
	return "annotation_layers"
}

type AnnotationFeature struct {
	Id      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LayerId uuid.UUID `gorm:"type:uuid;not null;index"`
	Name    string    `gorm:"type:varchar(255);not null"`
	UiName  string    `gorm:"type:varchar(255)"`
	Type    string    `gorm:"type:varchar(64);not null"`
}

func (AnnotationFeature) TableName() string {
	return "annotation_features"
}

type SourceDocument struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectId uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null;index"`
	State     string    `gorm:"type:varchar(32)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (SourceDocument) TableName() string {
	return "source_documents"
}
