package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"licportal/internal/handler"
	"licportal/internal/models"
)

type stubFeedbackService struct {
	created []models.Feedback
	err     error
}

func (s *stubFeedbackService) CreateFeedback(_ context.Context, name, email, feedback string) (*models.Feedback, error) {
	if s.err != nil {
		return nil, s.err
	}
	record := models.Feedback{ID: "f1", Name: name, Email: email, Feedback: feedback}
	s.created = append(s.created, record)
	return &record, nil
}

func (s *stubFeedbackService) ListFeedbacks(_ context.Context) ([]models.Feedback, error) {
	return s.created, s.err
}

type stubQueryService struct {
	created []models.Query
	err     error
}

func (s *stubQueryService) CreateQuery(_ context.Context, name, email, query string) (*models.Query, error) {
	if s.err != nil {
		return nil, s.err
	}
	record := models.Query{ID: "q1", Name: name, Email: email, Query: query}
	s.created = append(s.created, record)
	return &record, nil
}

func (s *stubQueryService) ListQueries(_ context.Context) ([]models.Query, error) {
	return s.created, s.err
}

func newContactRouter(feedback *stubFeedbackService, query *stubQueryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/lic")
	handler.NewFeedbackHandler(feedback).RegisterRoutes(api)
	handler.NewQueryHandler(query).RegisterRoutes(api)
	return r
}

func TestSubmitFeedback(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		svc := &stubFeedbackService{}
		r := newContactRouter(svc, &stubQueryService{})

		w := postJSON(r, "/api/lic/submit-feedback", `{"name":"Priya","email":"p@example.com","feedback":"Great help"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "message")
		assert.Len(t, svc.created, 1)
	})

	t.Run("EmailIsOptional", func(t *testing.T) {
		svc := &stubFeedbackService{}
		r := newContactRouter(svc, &stubQueryService{})

		w := postJSON(r, "/api/lic/submit-feedback", `{"name":"Priya","feedback":"Great help"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("MissingFeedback", func(t *testing.T) {
		svc := &stubFeedbackService{}
		r := newContactRouter(svc, &stubQueryService{})

		w := postJSON(r, "/api/lic/submit-feedback", `{"name":"Priya"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, svc.created)
	})
}

func TestSubmitQuery(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		svc := &stubQueryService{}
		r := newContactRouter(&stubFeedbackService{}, svc)

		w := postJSON(r, "/api/lic/submit-query", `{"name":"Amit","query":"Which plan suits a 30 year old?"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Len(t, svc.created, 1)
	})

	t.Run("MissingQuery", func(t *testing.T) {
		svc := &stubQueryService{}
		r := newContactRouter(&stubFeedbackService{}, svc)

		w := postJSON(r, "/api/lic/submit-query", `{"name":"Amit"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, svc.created)
	})
}

func TestListFeedbacks(t *testing.T) {
	svc := &stubFeedbackService{created: []models.Feedback{
		{ID: "f1", Name: "Priya", Feedback: "Great help"},
	}}
	r := newContactRouter(svc, &stubQueryService{})

	req := httptest.NewRequest(http.MethodGet, "/api/lic/feedbacks", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Priya"`)
}
