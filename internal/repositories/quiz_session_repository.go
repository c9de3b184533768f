package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cougcuts/internal/models/db_models"
)

type QuizSessionRepositoryInterface interface {
	FindBySessionID(ctx context.Context, sessionID string) (*db_models.QuizSession, error)

	// UpsertCompletion marks the session completed, creating it if needed.
	UpsertCompletion(ctx context.Context, session *db_models.QuizSession) error

	// UpdateProgress loads (or starts) the session under a row lock, lets
	// apply mutate it, and saves the result.
	UpdateProgress(ctx context.Context, sessionID string, apply func(*db_models.QuizSession) error) error
}

func NewQuizSessionRepository(db *gorm.DB) QuizSessionRepositoryInterface {
	return &QuizSessionRepository{db: db}
}

type QuizSessionRepository struct {
	db *gorm.DB
}

func (r *QuizSessionRepository) FindBySessionID(ctx context.Context, sessionID string) (*db_models.QuizSession, error) {
	var s db_models.QuizSession
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *QuizSessionRepository) UpsertCompletion(ctx context.Context, session *db_models.QuizSession) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "completed_at", "answers", "lead_id", "updated_at"}),
	}).Create(session).Error
}

func (r *QuizSessionRepository) UpdateProgress(ctx context.Context, sessionID string, apply func(*db_models.QuizSession) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var s db_models.QuizSession
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("session_id = ?", sessionID).
			First(&s).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			s = db_models.QuizSession{SessionID: sessionID}
		case err != nil:
			return err
		}

		if err := apply(&s); err != nil {
			return err
		}
		return tx.Save(&s).Error
	})
}
