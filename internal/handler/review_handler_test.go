package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"licportal/internal/handler"
	"licportal/internal/models"
)

type stubReviewService struct {
	created []models.Review
	reviews []models.Review
	err     error
}

func (s *stubReviewService) CreateReview(_ context.Context, username, comment string) (*models.Review, error) {
	if s.err != nil {
		return nil, s.err
	}
	review := models.Review{ID: "r1", Username: username, Comment: comment}
	s.created = append(s.created, review)
	return &review, nil
}

func (s *stubReviewService) ListReviews(_ context.Context) ([]models.Review, error) {
	return s.reviews, s.err
}

func newReviewRouter(svc *stubReviewService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler.NewReviewHandler(svc).RegisterRoutes(r.Group("/api/lic"))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateReview_MissingComment(t *testing.T) {
	svc := &stubReviewService{}
	r := newReviewRouter(svc)

	w := postJSON(r, "/api/lic/reviews", `{"username":"A"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.created, "nothing may be persisted on validation failure")
}

func TestCreateReview_MissingUsername(t *testing.T) {
	svc := &stubReviewService{}
	r := newReviewRouter(svc)

	w := postJSON(r, "/api/lic/reviews", `{"comment":"great service"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.created)
}

func TestCreateReview_Created(t *testing.T) {
	svc := &stubReviewService{}
	r := newReviewRouter(svc)

	w := postJSON(r, "/api/lic/reviews", `{"username":"A","comment":"great service"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"A"`)
	assert.Len(t, svc.created, 1)
}

func TestListReviews(t *testing.T) {
	svc := &stubReviewService{reviews: []models.Review{
		{ID: "1", Username: "A", Comment: "x"},
		{ID: "2", Username: "B", Comment: "y"},
	}}
	r := newReviewRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/lic/reviews", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"A"`)
	assert.Contains(t, w.Body.String(), `"username":"B"`)
}
