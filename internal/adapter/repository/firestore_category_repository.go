package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"bazroba/internal/domain/entity"
	"bazroba/internal/domain/repository"
	"bazroba/internal/infrastructure/docstore"
	"bazroba/pkg/errors"
)

const categoriesCollection = "categories"

type firestoreCategoryRepository struct {
	store *docstore.Store
}

func NewFirestoreCategoryRepository(store *docstore.Store) repository.CategoryRepository {
	return &firestoreCategoryRepository{store: store}
}

func (r *firestoreCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return r.store.Create(ctx, categoriesCollection, category)
}

func (r *firestoreCategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	var category entity.Category
	found, err := r.store.FindByID(ctx, categoriesCollection, id, &category)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NotFound("Category", nil)
	}
	return &category, nil
}

func (r *firestoreCategoryRepository) FindBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	var category entity.Category
	found, err := r.store.FindOneBy(ctx, categoriesCollection, "slug", slug, &category)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &category, nil
}

func (r *firestoreCategoryRepository) ListActive(ctx context.Context) ([]*entity.Category, error) {
	q := r.store.Query(categoriesCollection).
		Where("isActive", "==", true).
		OrderBy("sortOrder", firestore.Asc)
	return docstore.FindAll[entity.Category](ctx, q)
}

func (r *firestoreCategoryRepository) ListRoots(ctx context.Context) ([]*entity.Category, error) {
	q := r.store.Query(categoriesCollection).
		Where("parentId", "==", "").
		Where("isActive", "==", true).
		OrderBy("sortOrder", firestore.Asc)
	return docstore.FindAll[entity.Category](ctx, q)
}

func (r *firestoreCategoryRepository) ListChildren(ctx context.Context, parentID string) ([]*entity.Category, error) {
	q := r.store.Query(categoriesCollection).
		Where("parentId", "==", parentID).
		Where("isActive", "==", true).
		OrderBy("sortOrder", firestore.Asc)
	return docstore.FindAll[entity.Category](ctx, q)
}

func (r *firestoreCategoryRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.store.Update(ctx, categoriesCollection, id, fields)
}
