package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"bazroba/internal/domain/entity"
	"bazroba/internal/domain/repository"
	"bazroba/internal/infrastructure/docstore"
	"bazroba/pkg/errors"
)

const wishlistCollection = "wishlist"

type firestoreWishlistRepository struct {
	store *docstore.Store
}

func NewFirestoreWishlistRepository(store *docstore.Store) repository.WishlistRepository {
	return &firestoreWishlistRepository{store: store}
}

func (r *firestoreWishlistRepository) Create(ctx context.Context, item *entity.WishlistItem) error {
	return r.store.Create(ctx, wishlistCollection, item)
}

func (r *firestoreWishlistRepository) FindByUserAndProduct(ctx context.Context, userID, productID string) (*entity.WishlistItem, error) {
	iter := r.store.Query(wishlistCollection).
		Where("userId", "==", userID).
		Where("productId", "==", productID).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Internal("Failed to query wishlist", err)
	}

	var item entity.WishlistItem
	if err := snap.DataTo(&item); err != nil {
		return nil, errors.Internal("Failed to parse wishlist data", err)
	}
	return &item, nil
}

func (r *firestoreWishlistRepository) ListByUser(ctx context.Context, userID string) ([]*entity.WishlistItem, error) {
	q := r.store.Query(wishlistCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)
	return docstore.FindAll[entity.WishlistItem](ctx, q)
}

func (r *firestoreWishlistRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, wishlistCollection, id)
}
