package service

import (
	"context"
	"log/slog"
	"math"

	"licportal/internal/dto"
	"licportal/internal/metrics"
	"licportal/internal/repository"
)

// recentReviewCount is how many reviews the landing page shows.
const recentReviewCount = 3

type AggregateService interface {
	Snapshot(ctx context.Context) dto.AggregateSnapshot
}

type aggregateService struct {
	ratingRepo repository.RatingRepository
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

func NewAggregateService(ratingRepo repository.RatingRepository, reviewRepo repository.ReviewRepository, logger *slog.Logger) AggregateService {
	return &aggregateService{
		ratingRepo: ratingRepo,
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

// Snapshot computes the derived rating/review state for one render. Store
// failures degrade to a zero snapshot rather than failing the page; the
// failure is logged and counted so monitoring can tell an outage apart
// from a genuinely unrated page.
func (s *aggregateService) Snapshot(ctx context.Context) dto.AggregateSnapshot {
	snap := dto.AggregateSnapshot{Reviews: []dto.ReviewItem{}}

	ratings, err := s.ratingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("rating query failed, serving zero snapshot", "error", err)
		metrics.AggregateStoreFailures.Inc()
		return snap
	}

	sum := 0
	for _, rating := range ratings {
		if rating.IsValid() {
			sum += rating.Rating
			snap.RatingCount++
		}
	}
	if snap.RatingCount > 0 {
		avg := float64(sum) / float64(snap.RatingCount)
		snap.AverageRating = math.Round(avg*10) / 10
	}

	reviews, err := s.reviewRepo.GetRecent(ctx, recentReviewCount)
	if err != nil {
		s.logger.Error("review query failed, serving zero snapshot", "error", err)
		metrics.AggregateStoreFailures.Inc()
		return dto.AggregateSnapshot{Reviews: []dto.ReviewItem{}}
	}
	for i := range reviews {
		snap.Reviews = append(snap.Reviews, dto.FromModelToReviewItem(&reviews[i]))
	}

	return snap
}
