package handler

import (
	"net/http"

	"licportal/internal/dto"
	"licportal/internal/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// RegisterRoutes registers rating-related routes
func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup, write ...gin.HandlerFunc) {
	ratings := router.Group("/ratings")
	{
		ratings.GET("", h.List)
		ratings.POST("", append(write, h.Submit)...)
	}
}

// Submit creates or replaces the caller's rating
// POST /api/lic/ratings
func (h *RatingHandler) Submit(c *gin.Context) {
	var req dto.CreateRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and rating are required"})
		return
	}

	rating, created, err := h.ratingService.SubmitRating(c.Request.Context(), req.UserID, *req.Rating)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save rating"})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, rating)
}

// List retrieves all ratings
// GET /api/lic/ratings
func (h *RatingHandler) List(c *gin.Context) {
	ratings, err := h.ratingService.ListRatings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load ratings"})
		return
	}
	c.JSON(http.StatusOK, ratings)
}
