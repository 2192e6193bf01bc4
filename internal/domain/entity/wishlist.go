package entity

type WishlistItem struct {
	Metadata

	UserID    string `json:"user_id" firestore:"userId"`
	ProductID string `json:"product_id" firestore:"productId"`
}
