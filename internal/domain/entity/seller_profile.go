package entity

import "time"

// SellerProfile is 1:1 with a User of role seller.
type SellerProfile struct {
	Metadata

	UserID      string `json:"user_id" firestore:"userId"`
	ShopName    string `json:"shop_name" firestore:"shopName"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`
	Logo        string `json:"logo,omitempty" firestore:"logo,omitempty"`
	Region      string `json:"region,omitempty" firestore:"region,omitempty"`
	Phone       string `json:"phone,omitempty" firestore:"phone,omitempty"`

	ModerationStatus  string     `json:"moderation_status" firestore:"moderationStatus"`
	ModerationComment string     `json:"moderation_comment,omitempty" firestore:"moderationComment,omitempty"`
	ModeratedBy       string     `json:"moderated_by,omitempty" firestore:"moderatedBy,omitempty"`
	ModeratedAt       *time.Time `json:"moderated_at,omitempty" firestore:"moderatedAt,omitempty"`

	FollowerCount int `json:"follower_count" firestore:"followerCount"`
}

// Follow links a user to a seller they follow.
type Follow struct {
	Metadata

	UserID   string `json:"user_id" firestore:"userId"`
	SellerID string `json:"seller_id" firestore:"sellerId"`
}
