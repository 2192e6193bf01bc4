package repository

import (
	"context"

	"bazroba/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*entity.Order, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Order, error)
	// ListAll returns every order newest first; seller listings and analytics
	// filter the result in-process.
	ListAll(ctx context.Context) ([]*entity.Order, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
}
