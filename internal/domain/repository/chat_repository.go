package repository

import (
	"context"

	"bazroba/internal/domain/entity"
)

type ChatRepository interface {
	Create(ctx context.Context, message *entity.ChatMessage) error
	GetByID(ctx context.Context, id string) (*entity.ChatMessage, error)
	ListByOrder(ctx context.Context, orderID string) ([]*entity.ChatMessage, error)
	// ListConversation returns the direct messages exchanged between two
	// users, oldest first.
	ListConversation(ctx context.Context, userA, userB string) ([]*entity.ChatMessage, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
}
