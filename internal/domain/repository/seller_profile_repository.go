package repository

import (
	"context"

	"bazroba/internal/domain/entity"
)

type SellerProfileRepository interface {
	Create(ctx context.Context, profile *entity.SellerProfile) error
	GetByID(ctx context.Context, id string) (*entity.SellerProfile, error)
	FindByUserID(ctx context.Context, userID string) (*entity.SellerProfile, error)
	ListByRegion(ctx context.Context, region string) ([]*entity.SellerProfile, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
}

// FollowRepository tracks which users follow which sellers.
type FollowRepository interface {
	Create(ctx context.Context, follow *entity.Follow) error
	FindByUserAndSeller(ctx context.Context, userID, sellerID string) (*entity.Follow, error)
	Delete(ctx context.Context, id string) error
}
