package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventLog persists decision events consumed from the bus so other components
// (timelines, dashboards) can read them back without replaying the stream.
type EventLog struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EventType    string         `gorm:"type:varchar(64);not null;index"`
	Username     string         `gorm:"type:varchar(255);not null;index"`
	ProjectId    *uuid.UUID     `gorm:"type:uuid;index"`
	DocumentName string         `gorm:"type:varchar(255)"`
	Details      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
}

func (EventLog) TableName() string {
	return "event_logs"
}
