package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"bazroba/internal/domain/entity"
	"bazroba/internal/domain/repository"
	"bazroba/internal/infrastructure/docstore"
	"bazroba/pkg/errors"
)

const notificationsCollection = "notifications"

type firestoreNotificationRepository struct {
	store *docstore.Store
}

func NewFirestoreNotificationRepository(store *docstore.Store) repository.NotificationRepository {
	return &firestoreNotificationRepository{store: store}
}

func (r *firestoreNotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	return r.store.Create(ctx, notificationsCollection, notification)
}

func (r *firestoreNotificationRepository) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	var notification entity.Notification
	found, err := r.store.FindByID(ctx, notificationsCollection, id, &notification)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NotFound("Notification", nil)
	}
	return &notification, nil
}

func (r *firestoreNotificationRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	q := r.store.Query(notificationsCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit)
	return docstore.FindAll[entity.Notification](ctx, q)
}

func (r *firestoreNotificationRepository) ListUnreadByUser(ctx context.Context, userID string) ([]*entity.Notification, error) {
	q := r.store.Query(notificationsCollection).
		Where("userId", "==", userID).
		Where("isRead", "==", false)
	return docstore.FindAll[entity.Notification](ctx, q)
}

func (r *firestoreNotificationRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.store.Update(ctx, notificationsCollection, id, fields)
}
