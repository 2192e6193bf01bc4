package entity

import "time"

// ChatMessage is immutable once created except for the read flag. OrderID is
// empty for direct messages.
type ChatMessage struct {
	Metadata

	// Stored even when empty so direct-message queries can match on it.
	OrderID    string `json:"order_id,omitempty" firestore:"orderId"`
	SenderID   string `json:"sender_id" firestore:"senderId"`
	ReceiverID string `json:"receiver_id" firestore:"receiverId"`
	Message    string `json:"message" firestore:"message"`

	IsRead bool       `json:"is_read" firestore:"isRead"`
	ReadAt *time.Time `json:"read_at,omitempty" firestore:"readAt,omitempty"`
}
