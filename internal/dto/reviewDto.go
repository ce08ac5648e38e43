package dto

type CreateReviewDTO struct {
	Username string `json:"username" binding:"required"`
	Comment  string `json:"comment" binding:"required"`
}
