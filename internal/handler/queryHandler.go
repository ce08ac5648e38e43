package handler

import (
	"net/http"

	"licportal/internal/dto"
	"licportal/internal/service"

	"github.com/gin-gonic/gin"
)

type QueryHandler struct {
	queryService service.QueryService
}

func NewQueryHandler(queryService service.QueryService) *QueryHandler {
	return &QueryHandler{
		queryService: queryService,
	}
}

// RegisterRoutes registers policy-query routes
func (h *QueryHandler) RegisterRoutes(router *gin.RouterGroup, write ...gin.HandlerFunc) {
	router.POST("/submit-query", append(write, h.Submit)...)
	router.GET("/queries", h.List)
}

// Submit stores a policy query
// POST /api/lic/submit-query
func (h *QueryHandler) Submit(c *gin.Context) {
	var req dto.CreateQueryDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and query are required"})
		return
	}

	if _, err := h.queryService.CreateQuery(c.Request.Context(), req.Name, req.Email, req.Query); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save query"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Query submitted successfully"})
}

// List retrieves all policy queries
// GET /api/lic/queries
func (h *QueryHandler) List(c *gin.Context) {
	queries, err := h.queryService.ListQueries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load queries"})
		return
	}
	c.JSON(http.StatusOK, queries)
}
