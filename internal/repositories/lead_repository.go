package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cougcuts/internal/models/db_models"
)

type LeadRepositoryInterface interface {
	CreateLead(ctx context.Context, lead *db_models.Lead) error
	FindByEmail(ctx context.Context, email string) (*db_models.Lead, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Lead, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	ListLeads(ctx context.Context, page, pageSize int) ([]db_models.Lead, int64, error)
}

func NewLeadRepository(db *gorm.DB) LeadRepositoryInterface {
	return &LeadRepository{db: db}
}

type LeadRepository struct {
	db *gorm.DB
}

// CreateLead returns gorm.ErrDuplicatedKey when the email is taken.
func (r *LeadRepository) CreateLead(ctx context.Context, lead *db_models.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *LeadRepository) FindByEmail(ctx context.Context, email string) (*db_models.Lead, error) {
	var lead db_models.Lead
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&lead).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &lead, nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Lead, error) {
	var lead db_models.Lead
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&lead).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &lead, nil
}

func (r *LeadRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Lead{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *LeadRepository) ListLeads(ctx context.Context, page, pageSize int) ([]db_models.Lead, int64, error) {
	var (
		leads []db_models.Lead
		total int64
	)
	if err := r.db.WithContext(ctx).Model(&db_models.Lead{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).Scopes(func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * pageSize
		return db.Offset(offset).Limit(pageSize)
	}).Order("created_at DESC").Find(&leads).Error
	if err != nil {
		return nil, 0, err
	}
	return leads, total, nil
}
