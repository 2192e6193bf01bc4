package repository

import (
	"context"

	"bazroba/internal/domain/entity"
)

type BannerRepository interface {
	Create(ctx context.Context, banner *entity.Banner) error
	GetByID(ctx context.Context, id string) (*entity.Banner, error)
	ListActive(ctx context.Context) ([]*entity.Banner, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
}
