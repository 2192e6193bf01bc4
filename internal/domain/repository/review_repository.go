package repository

import (
	"context"

	"bazroba/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	FindByUserAndProduct(ctx context.Context, userID, productID string) (*entity.Review, error)
	ListVisibleByProduct(ctx context.Context, productID string) ([]*entity.Review, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}
