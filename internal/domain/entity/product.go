package entity

import "time"

const (
	ModerationPending  = "pending"
	ModerationApproved = "approved"
	ModerationRejected = "rejected"
)

type ProductImage struct {
	URL       string `json:"url" firestore:"url"`
	SortOrder int    `json:"sort_order" firestore:"sortOrder"`
}

type ProductVariant struct {
	Size  string   `json:"size,omitempty" firestore:"size,omitempty"`
	Color string   `json:"color,omitempty" firestore:"color,omitempty"`
	Price *float64 `json:"price,omitempty" firestore:"price,omitempty"`
	Stock int      `json:"stock" firestore:"stock"`
	SKU   string   `json:"sku,omitempty" firestore:"sku,omitempty"`
}

type Product struct {
	Metadata

	SellerID   string `json:"seller_id" firestore:"sellerId"`
	CategoryID string `json:"category_id" firestore:"categoryId"`

	Title       string   `json:"title" firestore:"title"`
	Slug        string   `json:"slug" firestore:"slug"`
	Description string   `json:"description" firestore:"description"`
	Price       float64  `json:"price" firestore:"price"`
	DiscountPrice *float64 `json:"discount_price,omitempty" firestore:"discountPrice,omitempty"`
	Stock       int      `json:"stock" firestore:"stock"`
	Material    string   `json:"material,omitempty" firestore:"material,omitempty"`

	Images   []ProductImage   `json:"images" firestore:"images"`
	Variants []ProductVariant `json:"variants,omitempty" firestore:"variants,omitempty"`

	AverageRating float64 `json:"average_rating" firestore:"averageRating"`
	TotalReviews  int     `json:"total_reviews" firestore:"totalReviews"`
	TotalSales    int     `json:"total_sales" firestore:"totalSales"`
	Views         int     `json:"views" firestore:"views"`

	ModerationStatus  string     `json:"moderation_status" firestore:"moderationStatus"`
	ModerationComment string     `json:"moderation_comment,omitempty" firestore:"moderationComment,omitempty"`
	ModeratedBy       string     `json:"moderated_by,omitempty" firestore:"moderatedBy,omitempty"`
	ModeratedAt       *time.Time `json:"moderated_at,omitempty" firestore:"moderatedAt,omitempty"`

	IsActive   bool `json:"is_active" firestore:"isActive"`
	IsFeatured bool `json:"is_featured" firestore:"isFeatured"`
}

// UnitPrice is the price an order line is charged at.
func (p *Product) UnitPrice() float64 {
	if p.DiscountPrice != nil && *p.DiscountPrice > 0 {
		return *p.DiscountPrice
	}
	return p.Price
}

func (p *Product) MainImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].URL
}
