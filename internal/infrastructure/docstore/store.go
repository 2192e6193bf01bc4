// Package docstore wraps the Firestore client with the small collection-scoped
// CRUD surface the rest of the system is built on: generated ids, automatic
// create/update timestamps, and reads that report absence instead of failing.
// No transaction or batch primitive is exposed; multi-document workflows issue
// independent sequential calls.
package docstore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"bazroba/pkg/errors"
)

// Document is implemented by every stored entity (via entity.Metadata).
type Document interface {
	DocID() string
	SetDocID(id string)
	Stamp(now time.Time)
}

type Store struct {
	client *firestore.Client
}

func NewStore(client *firestore.Client) *Store {
	return &Store{client: client}
}

// Create assigns a generated id when the document has none, stamps timestamps
// and persists the document.
func (s *Store) Create(ctx context.Context, collection string, doc Document) error {
	if doc.DocID() == "" {
		doc.SetDocID(s.client.Collection(collection).NewDoc().ID)
	}
	doc.Stamp(time.Now())

	if _, err := s.client.Collection(collection).Doc(doc.DocID()).Set(ctx, doc); err != nil {
		return errors.Internal("Failed to create document", err)
	}
	return nil
}

// Set overwrites the full document, refreshing the update timestamp.
func (s *Store) Set(ctx context.Context, collection string, doc Document) error {
	doc.Stamp(time.Now())
	if _, err := s.client.Collection(collection).Doc(doc.DocID()).Set(ctx, doc); err != nil {
		return errors.Internal("Failed to update document", err)
	}
	return nil
}

// FindByID decodes the document into out. Absence is not an error; the bool
// result reports whether the document exists.
func (s *Store) FindByID(ctx context.Context, collection, id string, out Document) (bool, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, errors.Internal("Failed to get document", err)
	}
	if err := snap.DataTo(out); err != nil {
		return false, errors.Internal("Failed to parse document data", err)
	}
	out.SetDocID(snap.Ref.ID)
	return true, nil
}

// FindOneBy fetches the first document whose field equals value.
func (s *Store) FindOneBy(ctx context.Context, collection, field string, value interface{}, out Document) (bool, error) {
	iter := s.client.Collection(collection).Where(field, "==", value).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, errors.Internal("Failed to query document", err)
	}
	if err := snap.DataTo(out); err != nil {
		return false, errors.Internal("Failed to parse document data", err)
	}
	out.SetDocID(snap.Ref.ID)
	return true, nil
}

// Update merges the given fields into the document and refreshes the update
// timestamp. Missing documents surface as NotFound from Firestore; callers
// are expected to have loaded the document first.
func (s *Store) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields)+1)
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: time.Now()})

	if _, err := s.client.Collection(collection).Doc(id).Update(ctx, updates); err != nil {
		return errors.Internal("Failed to update document", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return errors.Internal("Failed to delete document", err)
	}
	return nil
}

// Query starts a raw query on a collection for callers that need equality or
// range predicates beyond the single-field helpers.
func (s *Store) Query(collection string) firestore.Query {
	return s.client.Collection(collection).Query
}

// FindAll executes a query and decodes every document into a fresh T.
func FindAll[T any](ctx context.Context, q firestore.Query) ([]*T, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	var results []*T
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate documents", err)
		}
		item := new(T)
		if err := snap.DataTo(item); err != nil {
			return nil, errors.Internal("Failed to parse document data", err)
		}
		results = append(results, item)
	}
	return results, nil
}

// FindManyBy fetches every document in a collection whose field equals value.
func FindManyBy[T any](ctx context.Context, s *Store, collection, field string, value interface{}) ([]*T, error) {
	return FindAll[T](ctx, s.Query(collection).Where(field, "==", value))
}
