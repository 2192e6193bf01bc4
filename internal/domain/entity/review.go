package entity

type Review struct {
	Metadata

	UserID    string `json:"user_id" firestore:"userId"`
	ProductID string `json:"product_id" firestore:"productId"`
	Rating    int    `json:"rating" firestore:"rating"`
	Comment   string `json:"comment,omitempty" firestore:"comment,omitempty"`

	// Set when the reviewer has a delivered order containing the product.
	IsVerifiedPurchase bool `json:"is_verified_purchase" firestore:"isVerifiedPurchase"`
	IsVisible          bool `json:"is_visible" firestore:"isVisible"`
}
