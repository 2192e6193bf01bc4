package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"bazroba/internal/domain/entity"
	"bazroba/internal/domain/repository"
	"bazroba/internal/infrastructure/docstore"
	"bazroba/pkg/errors"
)

const productsCollection = "products"

type firestoreProductRepository struct {
	store *docstore.Store
}

func NewFirestoreProductRepository(store *docstore.Store) repository.ProductRepository {
	return &firestoreProductRepository{store: store}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.store.Create(ctx, productsCollection, product)
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	found, err := r.store.FindByID(ctx, productsCollection, id, &product)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NotFound("Product", nil)
	}
	return &product, nil
}

func (r *firestoreProductRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var product entity.Product
	found, err := r.store.FindOneBy(ctx, productsCollection, "slug", slug, &product)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &product, nil
}

func (r *firestoreProductRepository) ListActiveApproved(ctx context.Context) ([]*entity.Product, error) {
	q := r.store.Query(productsCollection).
		Where("isActive", "==", true).
		Where("moderationStatus", "==", entity.ModerationApproved).
		OrderBy("createdAt", firestore.Desc)
	return docstore.FindAll[entity.Product](ctx, q)
}

func (r *firestoreProductRepository) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Product, error) {
	q := r.store.Query(productsCollection).
		Where("sellerId", "==", sellerID).
		OrderBy("createdAt", firestore.Desc)
	return docstore.FindAll[entity.Product](ctx, q)
}

func (r *firestoreProductRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.store.Update(ctx, productsCollection, id, fields)
}

func (r *firestoreProductRepository) IncrementViews(ctx context.Context, id string) error {
	return r.store.Update(ctx, productsCollection, id, map[string]interface{}{
		"views": firestore.Increment(1),
	})
}
