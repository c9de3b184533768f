package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cougcuts/internal/models/db_models"
)

type EmailEventRepositoryInterface interface {
	CreateEvent(ctx context.Context, event *db_models.EmailEvent) error
	ListByLead(ctx context.Context, leadID uuid.UUID) ([]db_models.EmailEvent, error)
}

func NewEmailEventRepository(db *gorm.DB) EmailEventRepositoryInterface {
	return &EmailEventRepository{db: db}
}

type EmailEventRepository struct {
	db *gorm.DB
}

func (r *EmailEventRepository) CreateEvent(ctx context.Context, event *db_models.EmailEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *EmailEventRepository) ListByLead(ctx context.Context, leadID uuid.UUID) ([]db_models.EmailEvent, error) {
	var events []db_models.EmailEvent
	err := r.db.WithContext(ctx).
		Where("lead_id = ?", leadID).
		Order("created_at ASC").
		Find(&events).Error
	return events, err
}
