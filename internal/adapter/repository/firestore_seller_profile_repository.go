package repository

import (
	"context"

	"google.golang.org/api/iterator"

	"bazroba/internal/domain/entity"
	"bazroba/internal/domain/repository"
	"bazroba/internal/infrastructure/docstore"
	"bazroba/pkg/errors"
)

const (
	sellerProfilesCollection  = "seller_profiles"
	sellerFollowersCollection = "seller_followers"
)

type firestoreSellerProfileRepository struct {
	store *docstore.Store
}

func NewFirestoreSellerProfileRepository(store *docstore.Store) repository.SellerProfileRepository {
	return &firestoreSellerProfileRepository{store: store}
}

func (r *firestoreSellerProfileRepository) Create(ctx context.Context, profile *entity.SellerProfile) error {
	return r.store.Create(ctx, sellerProfilesCollection, profile)
}

func (r *firestoreSellerProfileRepository) GetByID(ctx context.Context, id string) (*entity.SellerProfile, error) {
	var profile entity.SellerProfile
	found, err := r.store.FindByID(ctx, sellerProfilesCollection, id, &profile)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NotFound("Seller profile", nil)
	}
	return &profile, nil
}

func (r *firestoreSellerProfileRepository) FindByUserID(ctx context.Context, userID string) (*entity.SellerProfile, error) {
	var profile entity.SellerProfile
	found, err := r.store.FindOneBy(ctx, sellerProfilesCollection, "userId", userID, &profile)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &profile, nil
}

func (r *firestoreSellerProfileRepository) ListByRegion(ctx context.Context, region string) ([]*entity.SellerProfile, error) {
	return docstore.FindManyBy[entity.SellerProfile](ctx, r.store, sellerProfilesCollection, "region", region)
}

func (r *firestoreSellerProfileRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.store.Update(ctx, sellerProfilesCollection, id, fields)
}

type firestoreFollowRepository struct {
	store *docstore.Store
}

func NewFirestoreFollowRepository(store *docstore.Store) repository.FollowRepository {
	return &firestoreFollowRepository{store: store}
}

func (r *firestoreFollowRepository) Create(ctx context.Context, follow *entity.Follow) error {
	return r.store.Create(ctx, sellerFollowersCollection, follow)
}

func (r *firestoreFollowRepository) FindByUserAndSeller(ctx context.Context, userID, sellerID string) (*entity.Follow, error) {
	iter := r.store.Query(sellerFollowersCollection).
		Where("userId", "==", userID).
		Where("sellerId", "==", sellerID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Internal("Failed to query followers", err)
	}

	var follow entity.Follow
	if err := snap.DataTo(&follow); err != nil {
		return nil, errors.Internal("Failed to parse follower data", err)
	}
	return &follow, nil
}

func (r *firestoreFollowRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, sellerFollowersCollection, id)
}
