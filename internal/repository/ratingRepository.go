package repository

import (
	"context"
	"errors"

	"licportal/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RatingRepository interface {
	Upsert(ctx context.Context, rating *models.Rating) (created bool, err error)
	GetAll(ctx context.Context) ([]models.Rating, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert creates a rating, or replaces the existing one for the same user.
// One rating per user is enforced by the unique index on user_id.
func (r *ratingRepository) Upsert(ctx context.Context, rating *models.Rating) (bool, error) {
	var existing models.Rating
	err := r.db.WithContext(ctx).Where("user_id = ?", rating.UserID).First(&existing).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	created := errors.Is(err, gorm.ErrRecordNotFound)

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
	}).Create(rating)
	if result.Error != nil {
		return false, result.Error
	}

	if !created {
		// Create on conflict does not refresh the struct; reload the row.
		if err := r.db.WithContext(ctx).Where("user_id = ?", rating.UserID).First(rating).Error; err != nil {
			return false, err
		}
	}
	return created, nil
}

// GetAll retrieves every stored rating, valid or not
func (r *ratingRepository) GetAll(ctx context.Context) ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}
