package entity

type Address struct {
	Metadata

	UserID     string   `json:"user_id" firestore:"userId"`
	Label      string   `json:"label" firestore:"label"`
	Street     string   `json:"street" firestore:"street"`
	Building   string   `json:"building,omitempty" firestore:"building,omitempty"`
	Apartment  string   `json:"apartment,omitempty" firestore:"apartment,omitempty"`
	City       string   `json:"city" firestore:"city"`
	Region     string   `json:"region" firestore:"region"`
	PostalCode string   `json:"postal_code,omitempty" firestore:"postalCode,omitempty"`
	Phone      string   `json:"phone,omitempty" firestore:"phone,omitempty"`
	Notes      string   `json:"notes,omitempty" firestore:"notes,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty" firestore:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty" firestore:"longitude,omitempty"`

	// At most one address per user carries the default flag.
	IsDefault bool `json:"is_default" firestore:"isDefault"`
}
