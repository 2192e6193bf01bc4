package entity

type Banner struct {
	Metadata

	Title     string `json:"title" firestore:"title"`
	Image     string `json:"image" firestore:"image"`
	Link      string `json:"link,omitempty" firestore:"link,omitempty"`
	SortOrder int    `json:"sort_order" firestore:"sortOrder"`
	IsActive  bool   `json:"is_active" firestore:"isActive"`
}
