package repository

import (
	"context"

	"licportal/internal/models"

	"gorm.io/gorm"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	GetAll(ctx context.Context) ([]models.Feedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) GetAll(ctx context.Context) ([]models.Feedback, error) {
	var feedbacks []models.Feedback
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&feedbacks).Error
	if err != nil {
		return nil, err
	}
	return feedbacks, nil
}
