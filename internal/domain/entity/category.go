package entity

type Category struct {
	Metadata

	Name        string `json:"name" firestore:"name"`
	Slug        string `json:"slug" firestore:"slug"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`
	Image       string `json:"image,omitempty" firestore:"image,omitempty"`
	ParentID    string `json:"parent_id,omitempty" firestore:"parentId,omitempty"`
	SortOrder   int    `json:"sort_order" firestore:"sortOrder"`
	IsActive    bool   `json:"is_active" firestore:"isActive"`
}
