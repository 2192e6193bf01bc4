package usecase

import (
	"context"

	"bazroba/internal/domain/entity"
	"bazroba/internal/domain/repository"
)

type BannerUseCase struct {
	bannerRepo repository.BannerRepository
}

func NewBannerUseCase(bannerRepo repository.BannerRepository) *BannerUseCase {
	return &BannerUseCase{bannerRepo: bannerRepo}
}

type BannerInput struct {
	Title     string
	Image     string
	Link      string
	SortOrder int
}

func (uc *BannerUseCase) Create(ctx context.Context, input BannerInput) (*entity.Banner, error) {
	banner := &entity.Banner{
		Title:     input.Title,
		Image:     input.Image,
		Link:      input.Link,
		SortOrder: input.SortOrder,
		IsActive:  true,
	}
	if err := uc.bannerRepo.Create(ctx, banner); err != nil {
		return nil, err
	}
	return banner, nil
}

func (uc *BannerUseCase) List(ctx context.Context) ([]*entity.Banner, error) {
	return uc.bannerRepo.ListActive(ctx)
}

func (uc *BannerUseCase) Update(ctx context.Context, id string, input BannerInput) (*entity.Banner, error) {
	if _, err := uc.bannerRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"link":      input.Link,
		"sortOrder": input.SortOrder,
	}
	if input.Title != "" {
		fields["title"] = input.Title
	}
	if input.Image != "" {
		fields["image"] = input.Image
	}

	if err := uc.bannerRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return uc.bannerRepo.GetByID(ctx, id)
}

func (uc *BannerUseCase) Remove(ctx context.Context, id string) error {
	if _, err := uc.bannerRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.bannerRepo.Update(ctx, id, map[string]interface{}{"isActive": false})
}
