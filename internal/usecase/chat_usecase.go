package usecase

import (
	"context"
	"time"

	"bazroba/internal/domain/entity"
	"bazroba/internal/domain/repository"
	"bazroba/internal/infrastructure/websocket"
	"bazroba/pkg/errors"
	"bazroba/pkg/logger"
)

type ChatUseCase struct {
	chatRepo    repository.ChatRepository
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	wsManager   *websocket.Manager
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	wsManager *websocket.Manager,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:    chatRepo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		wsManager:   wsManager,
	}
}

// MessageDetail pairs a message with resolved sender and receiver profiles.
type MessageDetail struct {
	*entity.ChatMessage
	Sender   *entity.PublicProfile `json:"sender,omitempty"`
	Receiver *entity.PublicProfile `json:"receiver,omitempty"`
}

// SendOrderMessage posts a message on an order thread. Only the buyer and
// the seller of the order may write, and always to the counterparty.
func (uc *ChatUseCase) SendOrderMessage(ctx context.Context, orderID, senderID, text string) (*MessageDetail, error) {
	if text == "" {
		return nil, errors.BadRequest("Message cannot be empty", nil)
	}

	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	sellerID, err := uc.orderSeller(ctx, order)
	if err != nil {
		return nil, err
	}

	var receiverID string
	switch senderID {
	case order.BuyerID:
		receiverID = sellerID
	case sellerID:
		receiverID = order.BuyerID
	default:
		return nil, errors.Forbidden("You are not a participant of this order", nil)
	}

	return uc.deliver(ctx, &entity.ChatMessage{
		OrderID:    orderID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Message:    text,
	})
}

// SendDirectMessage posts a message outside any order thread.
func (uc *ChatUseCase) SendDirectMessage(ctx context.Context, senderID, receiverID, text string) (*MessageDetail, error) {
	if text == "" {
		return nil, errors.BadRequest("Message cannot be empty", nil)
	}
	if senderID == receiverID {
		return nil, errors.BadRequest("You cannot message yourself", nil)
	}
	if _, err := uc.userRepo.GetByID(ctx, receiverID); err != nil {
		return nil, err
	}

	return uc.deliver(ctx, &entity.ChatMessage{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Message:    text,
	})
}

// ListOrderMessages returns an order thread oldest first. Only participants
// may read it.
func (uc *ChatUseCase) ListOrderMessages(ctx context.Context, orderID, userID string) ([]*MessageDetail, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	sellerID, err := uc.orderSeller(ctx, order)
	if err != nil {
		return nil, err
	}
	if userID != order.BuyerID && userID != sellerID {
		return nil, errors.Forbidden("You are not a participant of this order", nil)
	}

	messages, err := uc.chatRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return uc.resolveAll(ctx, messages), nil
}

// ListConversation returns the direct messages between the caller and
// another user, oldest first.
func (uc *ChatUseCase) ListConversation(ctx context.Context, userID, otherID string) ([]*MessageDetail, error) {
	messages, err := uc.chatRepo.ListConversation(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}
	return uc.resolveAll(ctx, messages), nil
}

// MarkRead stamps a message read. Only the receiver can mark it, and marking
// twice keeps the original readAt.
func (uc *ChatUseCase) MarkRead(ctx context.Context, messageID, userID string) error {
	message, err := uc.chatRepo.GetByID(ctx, messageID)
	if err != nil {
		return err
	}
	if message.ReceiverID != userID {
		return errors.Forbidden("Only the receiver can mark a message read", nil)
	}
	if message.IsRead {
		return nil
	}
	return uc.chatRepo.Update(ctx, messageID, map[string]interface{}{
		"isRead": true,
		"readAt": time.Now(),
	})
}

func (uc *ChatUseCase) deliver(ctx context.Context, message *entity.ChatMessage) (*MessageDetail, error) {
	if err := uc.chatRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	if uc.wsManager != nil {
		uc.wsManager.SendToUser(message.ReceiverID, websocket.Event{
			Type:    "chat_message",
			Payload: message,
		})
	}

	return uc.resolve(ctx, message), nil
}

// orderSeller identifies the selling side of an order via the first line
// item's product. Orders are single-seller carts.
func (uc *ChatUseCase) orderSeller(ctx context.Context, order *entity.Order) (string, error) {
	if len(order.Items) == 0 {
		return "", errors.Internal("Order has no items", nil)
	}
	product, err := uc.productRepo.GetByID(ctx, order.Items[0].ProductID)
	if err != nil {
		logger.Warn("Failed to resolve seller for order %s: %v", order.ID, err)
		return "", err
	}
	return product.SellerID, nil
}

func (uc *ChatUseCase) resolve(ctx context.Context, message *entity.ChatMessage) *MessageDetail {
	detail := &MessageDetail{ChatMessage: message}
	if sender, err := uc.userRepo.GetByID(ctx, message.SenderID); err == nil {
		public := sender.Public()
		detail.Sender = &public
	}
	if receiver, err := uc.userRepo.GetByID(ctx, message.ReceiverID); err == nil {
		public := receiver.Public()
		detail.Receiver = &public
	}
	return detail
}

func (uc *ChatUseCase) resolveAll(ctx context.Context, messages []*entity.ChatMessage) []*MessageDetail {
	details := make([]*MessageDetail, len(messages))
	for i, m := range messages {
		details[i] = uc.resolve(ctx, m)
	}
	return details
}
