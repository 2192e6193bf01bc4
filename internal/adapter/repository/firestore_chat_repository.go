package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"

	"bazroba/internal/domain/entity"
	"bazroba/internal/domain/repository"
	"bazroba/internal/infrastructure/docstore"
	"bazroba/pkg/errors"
)

const chatMessagesCollection = "chat_messages"

type firestoreChatRepository struct {
	store *docstore.Store
}

func NewFirestoreChatRepository(store *docstore.Store) repository.ChatRepository {
	return &firestoreChatRepository{store: store}
}

func (r *firestoreChatRepository) Create(ctx context.Context, message *entity.ChatMessage) error {
	return r.store.Create(ctx, chatMessagesCollection, message)
}

func (r *firestoreChatRepository) GetByID(ctx context.Context, id string) (*entity.ChatMessage, error) {
	var message entity.ChatMessage
	found, err := r.store.FindByID(ctx, chatMessagesCollection, id, &message)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NotFound("Message", nil)
	}
	return &message, nil
}

func (r *firestoreChatRepository) ListByOrder(ctx context.Context, orderID string) ([]*entity.ChatMessage, error) {
	q := r.store.Query(chatMessagesCollection).
		Where("orderId", "==", orderID).
		OrderBy("createdAt", firestore.Asc)
	return docstore.FindAll[entity.ChatMessage](ctx, q)
}

// ListConversation merges both directions of a direct-message thread.
// Firestore has no OR across fields, so each direction is its own query.
func (r *firestoreChatRepository) ListConversation(ctx context.Context, userA, userB string) ([]*entity.ChatMessage, error) {
	sent, err := docstore.FindAll[entity.ChatMessage](ctx, r.store.Query(chatMessagesCollection).
		Where("orderId", "==", "").
		Where("senderId", "==", userA).
		Where("receiverId", "==", userB))
	if err != nil {
		return nil, err
	}
	received, err := docstore.FindAll[entity.ChatMessage](ctx, r.store.Query(chatMessagesCollection).
		Where("orderId", "==", "").
		Where("senderId", "==", userB).
		Where("receiverId", "==", userA))
	if err != nil {
		return nil, err
	}

	messages := append(sent, received...)
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	return messages, nil
}

func (r *firestoreChatRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.store.Update(ctx, chatMessagesCollection, id, fields)
}
