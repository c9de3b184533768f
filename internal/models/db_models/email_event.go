package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type EmailEventType string

const (
	EmailEventSent   EmailEventType = "sent"
	EmailEventFailed EmailEventType = "failed"
)

const EmailTypeRoutineDelivery = "routine_delivery"

type EmailEvent struct {
	BaseModel
	LeadID    uuid.UUID      `gorm:"type:uuid;index;not null"`
	EventType EmailEventType `gorm:"type:varchar(20);index"`
	EmailType string         `gorm:"type:varchar(50)"`
	Metadata  datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
