package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type QuizSession struct {
	BaseModel
	SessionID string     `gorm:"uniqueIndex;not null"`
	LeadID    *uuid.UUID `gorm:"type:uuid;index"`

	Completed   bool
	CompletedAt *int64

	Answers            datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	LastQuestionViewed int
	// TimeOnQuestions maps question id to seconds spent.
	TimeOnQuestions datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
