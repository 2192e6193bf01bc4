package repository

import (
	"context"

	"bazroba/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// ListActiveApproved returns the full publicly visible set, newest first.
	// Filtering beyond active+approved happens in-process in the usecase.
	ListActiveApproved(ctx context.Context) ([]*entity.Product, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.Product, error)

	Update(ctx context.Context, id string, fields map[string]interface{}) error
	IncrementViews(ctx context.Context, id string) error
}
