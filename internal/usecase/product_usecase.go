package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bazroba/internal/domain/entity"
	"bazroba/internal/domain/repository"
	"bazroba/pkg/errors"
	"bazroba/pkg/logger"
	"bazroba/pkg/utils"
)

type ProductUseCase struct {
	productRepo       repository.ProductRepository
	categoryRepo      repository.CategoryRepository
	userRepo          repository.UserRepository
	sellerProfileRepo repository.SellerProfileRepository
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
	sellerProfileRepo repository.SellerProfileRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:       productRepo,
		categoryRepo:      categoryRepo,
		userRepo:          userRepo,
		sellerProfileRepo: sellerProfileRepo,
	}
}

type CreateProductInput struct {
	CategoryID    string
	Title         string
	Description   string
	Price         float64
	DiscountPrice *float64
	Stock         int
	Material      string
	Images        []string
	Variants      []entity.ProductVariant
}

// SellerSummary embeds the public profile of a seller together with their
// shop profile.
type SellerSummary struct {
	entity.PublicProfile
	SellerProfile *entity.SellerProfile `json:"seller_profile,omitempty"`
}

type ProductDetail struct {
	*entity.Product
	Category *entity.Category `json:"category,omitempty"`
	Seller   *SellerSummary   `json:"seller,omitempty"`
}

type ProductFilter struct {
	Page       int
	Limit      int
	CategoryID string
	SellerID   string
	MinPrice   *float64
	MaxPrice   *float64
	Region     string
	Material   string
	MinRating  *float64
	Search     string
	IsFeatured bool
}

// Create registers a product draft: slug derived from the title with a
// uniqueness suffix, moderation pending, all aggregate counters zeroed.
func (uc *ProductUseCase) Create(ctx context.Context, sellerID string, input CreateProductInput) (*ProductDetail, error) {
	if _, err := uc.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		return nil, errors.BadRequest("Invalid category", err)
	}

	images := make([]entity.ProductImage, len(input.Images))
	for i, url := range input.Images {
		images[i] = entity.ProductImage{URL: url, SortOrder: i}
	}

	product := &entity.Product{
		SellerID:         sellerID,
		CategoryID:       input.CategoryID,
		Title:            input.Title,
		Slug:             fmt.Sprintf("%s-%d", utils.Slugify(input.Title), time.Now().UnixMilli()),
		Description:      input.Description,
		Price:            input.Price,
		DiscountPrice:    input.DiscountPrice,
		Stock:            input.Stock,
		Material:         input.Material,
		Images:           images,
		Variants:         input.Variants,
		ModerationStatus: entity.ModerationPending,
		IsActive:         true,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return uc.aggregate(ctx, product), nil
}

// List applies every filter predicate in-process over the full active and
// approved set, then paginates by slicing. This is O(total active products)
// per call; acceptable at the current catalog scale, and the exact filter
// semantics and newest-first ordering depend on it.
func (uc *ProductUseCase) List(ctx context.Context, filter ProductFilter) ([]*ProductDetail, int64, error) {
	products, err := uc.productRepo.ListActiveApproved(ctx)
	if err != nil {
		return nil, 0, err
	}

	var regionSellers map[string]bool
	if filter.Region != "" {
		profiles, err := uc.sellerProfileRepo.ListByRegion(ctx, filter.Region)
		if err != nil {
			return nil, 0, err
		}
		regionSellers = make(map[string]bool, len(profiles))
		for _, profile := range profiles {
			regionSellers[profile.UserID] = true
		}
	}

	search := strings.ToLower(filter.Search)

	matched := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.SellerID != "" && p.SellerID != filter.SellerID {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		if filter.Material != "" && p.Material != filter.Material {
			continue
		}
		if filter.MinRating != nil && p.AverageRating < *filter.MinRating {
			continue
		}
		if filter.IsFeatured && !p.IsFeatured {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if regionSellers != nil && !regionSellers[p.SellerID] {
			continue
		}
		matched = append(matched, p)
	}

	total := int64(len(matched))

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	start := (page - 1) * limit
	if start >= len(matched) {
		return []*ProductDetail{}, total, nil
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}

	details := make([]*ProductDetail, 0, end-start)
	for _, p := range matched[start:end] {
		details = append(details, uc.aggregate(ctx, p))
	}
	return details, total, nil
}

// GetByID fetches a product and increments its view counter unconditionally,
// owner views included.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*ProductDetail, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.IncrementViews(ctx, id); err != nil {
		logger.Warn("Failed to increment views for product %s: %v", id, err)
	}
	product.Views++

	return uc.aggregate(ctx, product), nil
}

func (uc *ProductUseCase) GetBySlug(ctx context.Context, slug string) (*ProductDetail, error) {
	product, err := uc.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.NotFound("Product", nil)
	}
	return uc.GetByID(ctx, product.ID)
}

type UpdateProductInput struct {
	CategoryID    string
	Title         string
	Description   string
	Price         float64
	DiscountPrice *float64
	Stock         int
	Material      string
	Images        []string
	Variants      []entity.ProductVariant
}

func (uc *ProductUseCase) Update(ctx context.Context, id, sellerID string, input UpdateProductInput) (*ProductDetail, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.SellerID != sellerID {
		return nil, errors.BadRequest("You can only update your own products", nil)
	}

	fields := map[string]interface{}{
		"title":         input.Title,
		"description":   input.Description,
		"price":         input.Price,
		"discountPrice": input.DiscountPrice,
		"stock":         input.Stock,
		"material":      input.Material,
	}
	if input.CategoryID != "" {
		if _, err := uc.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
			return nil, errors.BadRequest("Invalid category", err)
		}
		fields["categoryId"] = input.CategoryID
	}
	if input.Images != nil {
		images := make([]entity.ProductImage, len(input.Images))
		for i, url := range input.Images {
			images[i] = entity.ProductImage{URL: url, SortOrder: i}
		}
		fields["images"] = images
	}
	if input.Variants != nil {
		fields["variants"] = input.Variants
	}

	if err := uc.productRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	updated, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.aggregate(ctx, updated), nil
}

// Delete is a soft delete; the document stays for historical orders.
func (uc *ProductUseCase) Delete(ctx context.Context, id, sellerID string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product.SellerID != sellerID {
		return errors.NotFound("Product", nil)
	}
	return uc.productRepo.Update(ctx, id, map[string]interface{}{"isActive": false})
}

// Moderate is the privileged moderation status transition. It has no side
// effects beyond the status fields.
func (uc *ProductUseCase) Moderate(ctx context.Context, id, status, comment, moderatorID string) (*entity.Product, error) {
	if status != entity.ModerationApproved && status != entity.ModerationRejected && status != entity.ModerationPending {
		return nil, errors.BadRequest("Invalid moderation status", nil)
	}

	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := uc.productRepo.Update(ctx, id, map[string]interface{}{
		"moderationStatus":  status,
		"moderationComment": comment,
		"moderatedBy":       moderatorID,
		"moderatedAt":       now,
	}); err != nil {
		return nil, err
	}

	product.ModerationStatus = status
	product.ModerationComment = comment
	product.ModeratedBy = moderatorID
	product.ModeratedAt = &now
	return product, nil
}

// SellerProducts lists a seller's own products regardless of moderation
// status, with categories resolved.
func (uc *ProductUseCase) SellerProducts(ctx context.Context, sellerID string) ([]*ProductDetail, error) {
	products, err := uc.productRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	details := make([]*ProductDetail, len(products))
	for i, p := range products {
		detail := &ProductDetail{Product: p}
		if category, err := uc.categoryRepo.GetByID(ctx, p.CategoryID); err == nil {
			detail.Category = category
		}
		details[i] = detail
	}
	return details, nil
}

func (uc *ProductUseCase) aggregate(ctx context.Context, product *entity.Product) *ProductDetail {
	detail := &ProductDetail{Product: product}

	if category, err := uc.categoryRepo.GetByID(ctx, product.CategoryID); err == nil {
		detail.Category = category
	}
	if seller, err := uc.userRepo.GetByID(ctx, product.SellerID); err == nil {
		summary := &SellerSummary{PublicProfile: seller.Public()}
		if profile, err := uc.sellerProfileRepo.FindByUserID(ctx, seller.ID); err == nil {
			summary.SellerProfile = profile
		}
		detail.Seller = summary
	}
	return detail
}
