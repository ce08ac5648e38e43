package dto

type CreateFeedbackDTO struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Feedback string `json:"feedback" binding:"required"`
}
