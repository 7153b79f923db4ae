package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type LearningRecord struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username       string         `gorm:"type:varchar(255);not null;index:idx_learning_records_user_layer"`
	ProjectId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	DocumentId     uuid.UUID      `gorm:"type:uuid;not null"`
	DocumentName   string         `gorm:"type:varchar(255);not null"`
	LayerId        uuid.UUID      `gorm:"type:uuid;not null;index:idx_learning_records_user_layer"`
	Feature        string         `gorm:"type:varchar(255);not null"`
	Annotation     string         `gorm:"type:text"`
	OffsetBegin    int            `gorm:"not null"`
	OffsetEnd      int            `gorm:"not null"`
	SuggestionKind string         `gorm:"type:varchar(32);not null"`
	Action         string         `gorm:"type:varchar(32);not null;index"`
	ChangeLocation string         `gorm:"type:varchar(32);not null"`
	Details        datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
}

func (LearningRecord) TableName() string {
	return "learning_records"
}
