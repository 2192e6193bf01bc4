package repository

import (
	"context"

	"bazroba/internal/domain/entity"
)

type WishlistRepository interface {
	Create(ctx context.Context, item *entity.WishlistItem) error
	FindByUserAndProduct(ctx context.Context, userID, productID string) (*entity.WishlistItem, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.WishlistItem, error)
	Delete(ctx context.Context, id string) error
}
