package service

import (
	"context"

	"licportal/internal/models"
	"licportal/internal/repository"

	"github.com/google/uuid"
)

type FeedbackService interface {
	CreateFeedback(ctx context.Context, name, email, feedback string) (*models.Feedback, error)
	ListFeedbacks(ctx context.Context) ([]models.Feedback, error)
}

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{feedbackRepo: feedbackRepo}
}

func (s *feedbackService) CreateFeedback(ctx context.Context, name, email, feedback string) (*models.Feedback, error) {
	record := &models.Feedback{
		ID:       uuid.New().String(),
		Name:     name,
		Email:    email,
		Feedback: feedback,
	}
	if err := s.feedbackRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *feedbackService) ListFeedbacks(ctx context.Context) ([]models.Feedback, error) {
	return s.feedbackRepo.GetAll(ctx)
}
