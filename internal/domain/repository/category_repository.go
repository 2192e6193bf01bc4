package repository

import (
	"context"

	"bazroba/internal/domain/entity"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)
	ListActive(ctx context.Context) ([]*entity.Category, error)
	ListRoots(ctx context.Context) ([]*entity.Category, error)
	ListChildren(ctx context.Context, parentID string) ([]*entity.Category, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
}
