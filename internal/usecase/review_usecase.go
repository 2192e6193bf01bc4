package usecase

import (
	"context"
	"math"

	"bazroba/internal/domain/entity"
	"bazroba/internal/domain/repository"
	"bazroba/pkg/errors"
	"bazroba/pkg/logger"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
	}
}

type CreateReviewInput struct {
	ProductID string
	Rating    int
	Comment   string
}

// ReviewDetail pairs a review with its author's public profile.
type ReviewDetail struct {
	*entity.Review
	Author *entity.PublicProfile `json:"author,omitempty"`
}

// Create posts a review. One review per user per product; the verified
// purchase flag is set when the reviewer has a delivered order containing
// the product.
func (uc *ReviewUseCase) Create(ctx context.Context, userID string, input CreateReviewInput) (*ReviewDetail, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.reviewRepo.FindByUserAndProduct(ctx, userID, input.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.BadRequest("You have already reviewed this product", nil)
	}

	review := &entity.Review{
		UserID:             userID,
		ProductID:          input.ProductID,
		Rating:             input.Rating,
		Comment:            input.Comment,
		IsVerifiedPurchase: uc.hasDeliveredPurchase(ctx, userID, input.ProductID),
		IsVisible:          true,
	}
	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	uc.recomputeRating(ctx, product.ID)

	return uc.withAuthor(ctx, review), nil
}

func (uc *ReviewUseCase) ListForProduct(ctx context.Context, productID string) ([]*ReviewDetail, error) {
	reviews, err := uc.reviewRepo.ListVisibleByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	details := make([]*ReviewDetail, len(reviews))
	for i, r := range reviews {
		details[i] = uc.withAuthor(ctx, r)
	}
	return details, nil
}

type UpdateReviewInput struct {
	Rating  int
	Comment string
}

func (uc *ReviewUseCase) Update(ctx context.Context, userID, reviewID string, input UpdateReviewInput) (*ReviewDetail, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	review, err := uc.ownedReview(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}

	if err := uc.reviewRepo.Update(ctx, review.ID, map[string]interface{}{
		"rating":  input.Rating,
		"comment": input.Comment,
	}); err != nil {
		return nil, err
	}

	uc.recomputeRating(ctx, review.ProductID)

	review.Rating = input.Rating
	review.Comment = input.Comment
	return uc.withAuthor(ctx, review), nil
}

func (uc *ReviewUseCase) Delete(ctx context.Context, userID, reviewID string) error {
	review, err := uc.ownedReview(ctx, userID, reviewID)
	if err != nil {
		return err
	}
	if err := uc.reviewRepo.Delete(ctx, review.ID); err != nil {
		return err
	}
	uc.recomputeRating(ctx, review.ProductID)
	return nil
}

// Hide is the moderation control: the review stays on record but drops out
// of listings and the product aggregates.
func (uc *ReviewUseCase) Hide(ctx context.Context, reviewID string, visible bool) error {
	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if err := uc.reviewRepo.Update(ctx, review.ID, map[string]interface{}{"isVisible": visible}); err != nil {
		return err
	}
	uc.recomputeRating(ctx, review.ProductID)
	return nil
}

func (uc *ReviewUseCase) ownedReview(ctx context.Context, userID, reviewID string) (*entity.Review, error) {
	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != userID {
		return nil, errors.NotFound("Review", nil)
	}
	return review, nil
}

func (uc *ReviewUseCase) hasDeliveredPurchase(ctx context.Context, userID, productID string) bool {
	orders, err := uc.orderRepo.ListByBuyer(ctx, userID)
	if err != nil {
		logger.Warn("Failed to check purchase history for user %s: %v", userID, err)
		return false
	}
	for _, order := range orders {
		if order.Status == entity.OrderStatusDelivered && order.ContainsProduct(productID) {
			return true
		}
	}
	return false
}

// recomputeRating refreshes a product's average rating and review count from
// the visible reviews. When no visible reviews remain the previous aggregates
// stay in place. Failures are logged: the review write already succeeded and
// stale aggregates self-correct on the next write.
func (uc *ReviewUseCase) recomputeRating(ctx context.Context, productID string) {
	reviews, err := uc.reviewRepo.ListVisibleByProduct(ctx, productID)
	if err != nil {
		logger.Warn("Failed to load reviews for product %s: %v", productID, err)
		return
	}
	if len(reviews) == 0 {
		return
	}

	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	average := math.Round(float64(sum)/float64(len(reviews))*100) / 100

	if err := uc.productRepo.Update(ctx, productID, map[string]interface{}{
		"averageRating": average,
		"totalReviews":  len(reviews),
	}); err != nil {
		logger.Warn("Failed to update rating for product %s: %v", productID, err)
	}
}

func (uc *ReviewUseCase) withAuthor(ctx context.Context, review *entity.Review) *ReviewDetail {
	detail := &ReviewDetail{Review: review}
	if user, err := uc.userRepo.GetByID(ctx, review.UserID); err == nil {
		public := user.Public()
		detail.Author = &public
	}
	return detail
}
