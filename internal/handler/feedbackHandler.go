package handler

import (
	"net/http"

	"licportal/internal/dto"
	"licportal/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	feedbackService service.FeedbackService
}

func NewFeedbackHandler(feedbackService service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
	}
}

// RegisterRoutes registers feedback-related routes
func (h *FeedbackHandler) RegisterRoutes(router *gin.RouterGroup, write ...gin.HandlerFunc) {
	router.POST("/submit-feedback", append(write, h.Submit)...)
	router.GET("/feedbacks", h.List)
}

// Submit stores a feedback message
// POST /api/lic/submit-feedback
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req dto.CreateFeedbackDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and feedback are required"})
		return
	}

	if _, err := h.feedbackService.CreateFeedback(c.Request.Context(), req.Name, req.Email, req.Feedback); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save feedback"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Feedback submitted successfully"})
}

// List retrieves all feedback records
// GET /api/lic/feedbacks
func (h *FeedbackHandler) List(c *gin.Context) {
	feedbacks, err := h.feedbackService.ListFeedbacks(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load feedbacks"})
		return
	}
	c.JSON(http.StatusOK, feedbacks)
}
