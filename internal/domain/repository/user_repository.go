package repository

import (
	"context"

	"bazroba/internal/domain/entity"
)

// UserRepository persists user documents. GetByID returns a NotFound error for
// missing users; the Find* lookups return (nil, nil) so callers can branch on
// existence without error plumbing.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)
	FindByProviderID(ctx context.Context, provider, providerUID string) (*entity.User, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	ListByRole(ctx context.Context, role string) ([]*entity.User, error)
}
