package repository

import (
	"context"

	"bazroba/internal/domain/entity"
)

type AddressRepository interface {
	Create(ctx context.Context, address *entity.Address) error
	GetByID(ctx context.Context, id string) (*entity.Address, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Address, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}
