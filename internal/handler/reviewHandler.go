package handler

import (
	"net/http"

	"licportal/internal/dto"
	"licportal/internal/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// RegisterRoutes registers review-related routes
func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup, write ...gin.HandlerFunc) {
	reviews := router.Group("/reviews")
	{
		reviews.GET("", h.List)
		reviews.POST("", append(write, h.Create)...)
	}
}

// Create appends a new review
// POST /api/lic/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and comment are required"})
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), req.Username, req.Comment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save review"})
		return
	}
	c.JSON(http.StatusCreated, review)
}

// List retrieves all reviews, newest first
// GET /api/lic/reviews
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.reviewService.ListReviews(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}
