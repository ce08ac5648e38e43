package repository

import (
	"context"

	"licportal/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetAll(ctx context.Context) ([]models.Review, error)
	GetRecent(ctx context.Context, limit int) ([]models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create appends a new review
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// GetAll retrieves all reviews, newest first
func (r *reviewRepository) GetAll(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetRecent retrieves the most recent reviews, newest first
func (r *reviewRepository) GetRecent(ctx context.Context, limit int) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
