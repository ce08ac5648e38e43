package dto

type CreateQueryDTO struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Query string `json:"query" binding:"required"`
}
