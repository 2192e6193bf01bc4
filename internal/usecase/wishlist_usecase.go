package usecase

import (
	"context"

	"bazroba/internal/domain/entity"
	"bazroba/internal/domain/repository"
)

type WishlistUseCase struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewWishlistUseCase(
	wishlistRepo repository.WishlistRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) *WishlistUseCase {
	return &WishlistUseCase{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// WishlistEntry is a wishlist item with the product resolved. Product is nil
// when the product has since been removed.
type WishlistEntry struct {
	*entity.WishlistItem
	Product  *entity.Product  `json:"product,omitempty"`
	Category *entity.Category `json:"category,omitempty"`
}

// Add puts a product on the wishlist. Adding twice is a no-op.
func (uc *WishlistUseCase) Add(ctx context.Context, userID, productID string) error {
	if _, err := uc.productRepo.GetByID(ctx, productID); err != nil {
		return err
	}

	existing, err := uc.wishlistRepo.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	return uc.wishlistRepo.Create(ctx, &entity.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	})
}

// Remove takes a product off the wishlist. Removing an absent item is a
// no-op.
func (uc *WishlistUseCase) Remove(ctx context.Context, userID, productID string) error {
	existing, err := uc.wishlistRepo.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	return uc.wishlistRepo.Delete(ctx, existing.ID)
}

func (uc *WishlistUseCase) List(ctx context.Context, userID string) ([]*WishlistEntry, error) {
	items, err := uc.wishlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]*WishlistEntry, len(items))
	for i, item := range items {
		entry := &WishlistEntry{WishlistItem: item}
		if product, err := uc.productRepo.GetByID(ctx, item.ProductID); err == nil {
			entry.Product = product
			if category, err := uc.categoryRepo.GetByID(ctx, product.CategoryID); err == nil {
				entry.Category = category
			}
		}
		entries[i] = entry
	}
	return entries, nil
}

func (uc *WishlistUseCase) Contains(ctx context.Context, userID, productID string) (bool, error) {
	existing, err := uc.wishlistRepo.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return false, err
	}
	return existing != nil, nil
}
