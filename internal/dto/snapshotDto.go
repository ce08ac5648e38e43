package dto

import (
	"strconv"
	"time"

	"licportal/internal/models"
)

// ReviewItem is the review shape embedded in the landing page payload.
type ReviewItem struct {
	Username  string    `json:"username"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// AggregateSnapshot is the derived rating/review state for one render.
// It is recomputed on every cache miss and never persisted.
type AggregateSnapshot struct {
	AverageRating float64      `json:"averageRating"`
	RatingCount   int          `json:"ratingCount"`
	Reviews       []ReviewItem `json:"reviews"`
}

// DisplayRating formats the average with one decimal place, e.g. "4.7".
func (s AggregateSnapshot) DisplayRating() string {
	return strconv.FormatFloat(s.AverageRating, 'f', 1, 64)
}

func FromModelToReviewItem(review *models.Review) ReviewItem {
	return ReviewItem{
		Username:  review.Username,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}
