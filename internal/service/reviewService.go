package service

import (
	"context"

	"licportal/internal/models"
	"licportal/internal/repository"

	"github.com/google/uuid"
)

type ReviewService interface {
	CreateReview(ctx context.Context, username, comment string) (*models.Review, error)
	ListReviews(ctx context.Context) ([]models.Review, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

// CreateReview appends a review. Reviews are never edited or deleted.
func (s *reviewService) CreateReview(ctx context.Context, username, comment string) (*models.Review, error) {
	review := &models.Review{
		ID:       uuid.New().String(),
		Username: username,
		Comment:  comment,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) ListReviews(ctx context.Context) ([]models.Review, error) {
	return s.reviewRepo.GetAll(ctx)
}
