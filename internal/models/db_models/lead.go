package db_models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Lead struct {
	BaseModel
	Email     string `gorm:"uniqueIndex;not null"`
	Name      string
	HairType  string         `gorm:"index"`
	HairGoals pq.StringArray `gorm:"type:text[]"`

	// QuizAnswers holds the raw answer set as submitted.
	QuizAnswers datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	ProfileID   string         `gorm:"index"`
	BudgetTier  string

	RoutineGenerated bool
	RoutineText      string `gorm:"type:text"`
	RoutinePdfURL    string

	EmailSequenceStarted bool
	LastEmailSent        *int64

	Sessions    []QuizSession `gorm:"foreignKey:LeadID"`
	EmailEvents []EmailEvent  `gorm:"foreignKey:LeadID"`
}
