package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"bazroba/internal/domain/entity"
	"bazroba/internal/domain/repository"
	"bazroba/internal/infrastructure/docstore"
	"bazroba/pkg/errors"
)

const addressesCollection = "addresses"

type firestoreAddressRepository struct {
	store *docstore.Store
}

func NewFirestoreAddressRepository(store *docstore.Store) repository.AddressRepository {
	return &firestoreAddressRepository{store: store}
}

func (r *firestoreAddressRepository) Create(ctx context.Context, address *entity.Address) error {
	return r.store.Create(ctx, addressesCollection, address)
}

func (r *firestoreAddressRepository) GetByID(ctx context.Context, id string) (*entity.Address, error) {
	var address entity.Address
	found, err := r.store.FindByID(ctx, addressesCollection, id, &address)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NotFound("Address", nil)
	}
	return &address, nil
}

func (r *firestoreAddressRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Address, error) {
	q := r.store.Query(addressesCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)
	return docstore.FindAll[entity.Address](ctx, q)
}

func (r *firestoreAddressRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.store.Update(ctx, addressesCollection, id, fields)
}

func (r *firestoreAddressRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, addressesCollection, id)
}
