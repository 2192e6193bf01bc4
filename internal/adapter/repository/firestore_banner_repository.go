package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"bazroba/internal/domain/entity"
	"bazroba/internal/domain/repository"
	"bazroba/internal/infrastructure/docstore"
	"bazroba/pkg/errors"
)

const bannersCollection = "banners"

type firestoreBannerRepository struct {
	store *docstore.Store
}

func NewFirestoreBannerRepository(store *docstore.Store) repository.BannerRepository {
	return &firestoreBannerRepository{store: store}
}

func (r *firestoreBannerRepository) Create(ctx context.Context, banner *entity.Banner) error {
	return r.store.Create(ctx, bannersCollection, banner)
}

func (r *firestoreBannerRepository) GetByID(ctx context.Context, id string) (*entity.Banner, error) {
	var banner entity.Banner
	found, err := r.store.FindByID(ctx, bannersCollection, id, &banner)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.NotFound("Banner", nil)
	}
	return &banner, nil
}

func (r *firestoreBannerRepository) ListActive(ctx context.Context) ([]*entity.Banner, error) {
	q := r.store.Query(bannersCollection).
		Where("isActive", "==", true).
		OrderBy("sortOrder", firestore.Asc)
	return docstore.FindAll[entity.Banner](ctx, q)
}

func (r *firestoreBannerRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.store.Update(ctx, bannersCollection, id, fields)
}
