package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"bazroba/internal/domain/entity"
	"bazroba/internal/domain/repository"
	"bazroba/internal/infrastructure/docstore"
	"bazroba/pkg/errors"
)

const usersCollection = "users"

type firestoreUserRepository struct {
	store *docstore.Store
}

func NewFirestoreUserRepository(store *docstore.Store) repository.UserRepository {
	return &firestoreUserRepository{store: store}
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	return r.store.Create(ctx, usersCollection, user)
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	found, err := r.store.FindByID(ctx, usersCollection, id, &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NotFound("User", nil)
	}
	return &user, nil
}

func (r *firestoreUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOneBy(ctx, "email", email)
}

func (r *firestoreUserRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return r.findOneBy(ctx, "phone", phone)
}

func (r *firestoreUserRepository) FindByProviderID(ctx context.Context, provider, providerUID string) (*entity.User, error) {
	return r.findOneBy(ctx, provider+"Id", providerUID)
}

func (r *firestoreUserRepository) findOneBy(ctx context.Context, field string, value interface{}) (*entity.User, error) {
	var user entity.User
	found, err := r.store.FindOneBy(ctx, usersCollection, field, value, &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

func (r *firestoreUserRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.store.Update(ctx, usersCollection, id, fields)
}

func (r *firestoreUserRepository) ListByRole(ctx context.Context, role string) ([]*entity.User, error) {
	q := r.store.Query(usersCollection).Where("role", "==", role).OrderBy("createdAt", firestore.Desc)
	return docstore.FindAll[entity.User](ctx, q)
}
