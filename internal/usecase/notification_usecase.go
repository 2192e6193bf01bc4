package usecase

import (
	"context"
	"time"

	"bazroba/internal/domain/entity"
	"bazroba/internal/domain/repository"
	"bazroba/internal/infrastructure/websocket"
	"bazroba/pkg/errors"
)

const notificationPageSize = 50

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
	wsManager        *websocket.Manager
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository, wsManager *websocket.Manager) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		wsManager:        wsManager,
	}
}

type CreateNotificationInput struct {
	UserID  string
	Type    string
	Title   string
	Message string
	Link    string
}

// Create persists a notification and pushes it to the user's websocket
// connection when one is open.
func (uc *NotificationUseCase) Create(ctx context.Context, input CreateNotificationInput) (*entity.Notification, error) {
	notification := &entity.Notification{
		UserID:  input.UserID,
		Type:    input.Type,
		Title:   input.Title,
		Message: input.Message,
		Link:    input.Link,
	}

	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}

	if uc.wsManager != nil {
		uc.wsManager.SendToUser(input.UserID, websocket.Event{
			Type:    "notification",
			Payload: notification,
		})
	}

	return notification, nil
}

func (uc *NotificationUseCase) ListForUser(ctx context.Context, userID string) ([]*entity.Notification, error) {
	return uc.notificationRepo.ListByUser(ctx, userID, notificationPageSize)
}

func (uc *NotificationUseCase) UnreadCount(ctx context.Context, userID string) (int, error) {
	unread, err := uc.notificationRepo.ListUnreadByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return len(unread), nil
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, id, userID string) (*entity.Notification, error) {
	notification, err := uc.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification.UserID != userID {
		return nil, errors.NotFound("Notification", nil)
	}

	now := time.Now()
	if err := uc.notificationRepo.Update(ctx, id, map[string]interface{}{
		"isRead": true,
		"readAt": now,
	}); err != nil {
		return nil, err
	}

	notification.IsRead = true
	notification.ReadAt = &now
	return notification, nil
}

func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) error {
	unread, err := uc.notificationRepo.ListUnreadByUser(ctx, userID)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, notification := range unread {
		if err := uc.notificationRepo.Update(ctx, notification.ID, map[string]interface{}{
			"isRead": true,
			"readAt": now,
		}); err != nil {
			return err
		}
	}
	return nil
}
