package repository

import (
	"context"

	"licportal/internal/models"

	"gorm.io/gorm"
)

type QueryRepository interface {
	Create(ctx context.Context, query *models.Query) error
	GetAll(ctx context.Context) ([]models.Query, error)
}

type queryRepository struct {
	db *gorm.DB
}

func NewQueryRepository(db *gorm.DB) QueryRepository {
	return &queryRepository{db: db}
}

func (r *queryRepository) Create(ctx context.Context, query *models.Query) error {
	return r.db.WithContext(ctx).Create(query).Error
}

func (r *queryRepository) GetAll(ctx context.Context) ([]models.Query, error) {
	var queries []models.Query
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&queries).Error
	if err != nil {
		return nil, err
	}
	return queries, nil
}
