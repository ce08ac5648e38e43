package service

import (
	"context"

	"licportal/internal/models"
	"licportal/internal/repository"

	"github.com/google/uuid"
)

type QueryService interface {
	CreateQuery(ctx context.Context, name, email, query string) (*models.Query, error)
	ListQueries(ctx context.Context) ([]models.Query, error)
}

type queryService struct {
	queryRepo repository.QueryRepository
}

func NewQueryService(queryRepo repository.QueryRepository) QueryService {
	return &queryService{queryRepo: queryRepo}
}

func (s *queryService) CreateQuery(ctx context.Context, name, email, query string) (*models.Query, error) {
	record := &models.Query{
		ID:    uuid.New().String(),
		Name:  name,
		Email: email,
		Query: query,
	}
	if err := s.queryRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *queryService) ListQueries(ctx context.Context) ([]models.Query, error) {
	return s.queryRepo.GetAll(ctx)
}
