package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"bazroba/internal/domain/entity"
	"bazroba/internal/domain/repository"
	"bazroba/internal/infrastructure/docstore"
	"bazroba/pkg/errors"
	"google.golang.org/api/iterator"
)

const reviewsCollection = "reviews"

type firestoreReviewRepository struct {
	store *docstore.Store
}

func NewFirestoreReviewRepository(store *docstore.Store) repository.ReviewRepository {
	return &firestoreReviewRepository{store: store}
}

func (r *firestoreReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return r.store.Create(ctx, reviewsCollection, review)
}

func (r *firestoreReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	var review entity.Review
	found, err := r.store.FindByID(ctx, reviewsCollection, id, &review)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NotFound("Review", nil)
	}
	return &review, nil
}

func (r *firestoreReviewRepository) FindByUserAndProduct(ctx context.Context, userID, productID string) (*entity.Review, error) {
	iter := r.store.Query(reviewsCollection).
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
		return nil, errors.Internal("Failed to query review", err)
	}

	var review entity.Review
	if err := snap.DataTo(&review); err != nil {
		return nil, errors.Internal("Failed to parse review data", err)
	}
	return &review, nil
}

func (r *firestoreReviewRepository) ListVisibleByProduct(ctx context.Context, productID string) ([]*entity.Review, error) {
	q := r.store.Query(reviewsCollection).
		Where("productId", "==", productID).
		Where("isVisible", "==", true).
		OrderBy("createdAt", firestore.Desc)
	return docstore.FindAll[entity.Review](ctx, q)
}

func (r *firestoreReviewRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.store.Update(ctx, reviewsCollection, id, fields)
}

func (r *firestoreReviewRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, reviewsCollection, id)
}
