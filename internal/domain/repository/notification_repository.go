package repository

import (
	"context"

	"bazroba/internal/domain/entity"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	GetByID(ctx context.Context, id string) (*entity.Notification, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error)
	ListUnreadByUser(ctx context.Context, userID string) ([]*entity.Notification, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
}
