package dto

type CreateRatingDTO struct {
	UserID string `json:"userId" binding:"required"`
	// Pointer so "required" checks presence, not the zero value: a rating
	// of 0 is stored and merely ignored by the aggregator.
	Rating *int `json:"rating" binding:"required"`
}
