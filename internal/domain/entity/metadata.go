package entity

import "time"

// Metadata carries the fields every stored document shares. The document id is
// persisted inside the document itself so decoded records are self-describing.
type Metadata struct {
	ID        string    `json:"id" firestore:"id"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (m *Metadata) DocID() string {
	return m.ID
}

func (m *Metadata) SetDocID(id string) {
	m.ID = id
}

func (m *Metadata) Stamp(now time.Time) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}
