package entity

import "time"

type Notification struct {
	Metadata

	UserID  string `json:"user_id" firestore:"userId"`
	Type    string `json:"type" firestore:"type"`
	Title   string `json:"title" firestore:"title"`
	Message string `json:"message" firestore:"message"`
	Link    string `json:"link,omitempty" firestore:"link,omitempty"`

	IsRead bool       `json:"is_read" firestore:"isRead"`
	ReadAt *time.Time `json:"read_at,omitempty" firestore:"readAt,omitempty"`
}
