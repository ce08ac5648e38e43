package service

import (
	"context"

	"licportal/internal/models"
	"licportal/internal/repository"
)

type RatingService interface {
	SubmitRating(ctx context.Context, userID string, value int) (*models.Rating, bool, error)
	ListRatings(ctx context.Context) ([]models.Rating, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
}

func NewRatingService(ratingRepo repository.RatingRepository) RatingService {
	return &ratingService{ratingRepo: ratingRepo}
}

// SubmitRating stores a user's rating, replacing any previous one. The
// returned flag reports whether a new row was created. Out-of-range values
// are stored as-is; the aggregator ignores them.
func (s *ratingService) SubmitRating(ctx context.Context, userID string, value int) (*models.Rating, bool, error) {
	rating := &models.Rating{
		UserID: userID,
		Rating: value,
	}
	created, err := s.ratingRepo.Upsert(ctx, rating)
	if err != nil {
		return nil, false, err
	}
	return rating, created, nil
}

func (s *ratingService) ListRatings(ctx context.Context) ([]models.Rating, error) {
	return s.ratingRepo.GetAll(ctx)
}
