package usecase

import (
	"context"
	"time"

	"bazroba/internal/domain/entity"
	"bazroba/internal/domain/repository"
	"bazroba/pkg/errors"
)

type UserUseCase struct {
	userRepo          repository.UserRepository
	sellerProfileRepo repository.SellerProfileRepository
	followRepo        repository.FollowRepository
	addressRepo       repository.AddressRepository
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	sellerProfileRepo repository.SellerProfileRepository,
	followRepo repository.FollowRepository,
	addressRepo repository.AddressRepository,
) *UserUseCase {
	return &UserUseCase{
		userRepo:          userRepo,
		sellerProfileRepo: sellerProfileRepo,
		followRepo:        followRepo,
		addressRepo:       addressRepo,
	}
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Avatar    string
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	fields := map[string]interface{}{}
	if input.FirstName != "" {
		fields["firstName"] = input.FirstName
	}
	if input.LastName != "" {
		fields["lastName"] = input.LastName
	}
	if input.Avatar != "" {
		fields["avatar"] = input.Avatar
	}
	if len(fields) > 0 {
		if err := uc.userRepo.Update(ctx, userID, fields); err != nil {
			return nil, err
		}
	}
	return uc.userRepo.GetByID(ctx, userID)
}

// Deactivate soft-disables an account; tokens stop working at the next
// refresh and login is refused.
func (uc *UserUseCase) Deactivate(ctx context.Context, userID string) error {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return uc.userRepo.Update(ctx, userID, map[string]interface{}{
		"isActive":     false,
		"refreshToken": nil,
	})
}

type SellerProfileInput struct {
	ShopName    string
	Description string
	Logo        string
	Region      string
	Phone       string
}

// CreateSellerProfile opens a shop profile for a seller or admin account.
// One profile per user; the profile starts in pending moderation, and the
// account ends up with the seller role either way.
func (uc *UserUseCase) CreateSellerProfile(ctx context.Context, userID string, input SellerProfileInput) (*entity.SellerProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != entity.RoleSeller && user.Role != entity.RoleAdmin {
		return nil, errors.Forbidden("Only sellers can create a shop profile", nil)
	}

	existing, err := uc.sellerProfileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.Conflict("Seller profile already exists", nil)
	}

	profile := &entity.SellerProfile{
		UserID:           userID,
		ShopName:         input.ShopName,
		Description:      input.Description,
		Logo:             input.Logo,
		Region:           input.Region,
		Phone:            input.Phone,
		ModerationStatus: entity.ModerationPending,
	}
	if err := uc.sellerProfileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	// Opening a shop makes the user a seller regardless of how they signed up.
	if user.Role != entity.RoleSeller {
		if err := uc.userRepo.Update(ctx, userID, map[string]interface{}{
			"role": entity.RoleSeller,
		}); err != nil {
			return nil, err
		}
	}
	return profile, nil
}

func (uc *UserUseCase) GetSellerProfile(ctx context.Context, userID string) (*entity.SellerProfile, error) {
	profile, err := uc.sellerProfileRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.NotFound("Seller profile", nil)
	}
	return profile, nil
}

func (uc *UserUseCase) UpdateSellerProfile(ctx context.Context, userID string, input SellerProfileInput) (*entity.SellerProfile, error) {
	profile, err := uc.GetSellerProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.ShopName != "" {
		fields["shopName"] = input.ShopName
	}
	if input.Description != "" {
		fields["description"] = input.Description
	}
	if input.Logo != "" {
		fields["logo"] = input.Logo
	}
	if input.Region != "" {
		fields["region"] = input.Region
	}
	if input.Phone != "" {
		fields["phone"] = input.Phone
	}
	if len(fields) > 0 {
		if err := uc.sellerProfileRepo.Update(ctx, profile.ID, fields); err != nil {
			return nil, err
		}
	}
	return uc.GetSellerProfile(ctx, userID)
}

// ModerateSellerProfile is the privileged review of a shop profile.
func (uc *UserUseCase) ModerateSellerProfile(ctx context.Context, profileID, status, comment, moderatorID string) (*entity.SellerProfile, error) {
	if status != entity.ModerationApproved && status != entity.ModerationRejected && status != entity.ModerationPending {
		return nil, errors.BadRequest("Invalid moderation status", nil)
	}

	profile, err := uc.sellerProfileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := uc.sellerProfileRepo.Update(ctx, profileID, map[string]interface{}{
		"moderationStatus":  status,
		"moderationComment": comment,
		"moderatedBy":       moderatorID,
		"moderatedAt":       now,
	}); err != nil {
		return nil, err
	}

	profile.ModerationStatus = status
	profile.ModerationComment = comment
	profile.ModeratedBy = moderatorID
	profile.ModeratedAt = &now
	return profile, nil
}

// FollowSeller adds a follow edge and bumps the follower counter. Following
// twice is a no-op.
func (uc *UserUseCase) FollowSeller(ctx context.Context, userID, sellerID string) error {
	if userID == sellerID {
		return errors.BadRequest("You cannot follow yourself", nil)
	}

	profile, err := uc.GetSellerProfile(ctx, sellerID)
	if err != nil {
		return err
	}

	existing, err := uc.followRepo.FindByUserAndSeller(ctx, userID, sellerID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	if err := uc.followRepo.Create(ctx, &entity.Follow{UserID: userID, SellerID: sellerID}); err != nil {
		return err
	}
	return uc.sellerProfileRepo.Update(ctx, profile.ID, map[string]interface{}{
		"followerCount": profile.FollowerCount + 1,
	})
}

// UnfollowSeller removes the follow edge if present. Unfollowing a seller
// you never followed is a no-op.
func (uc *UserUseCase) UnfollowSeller(ctx context.Context, userID, sellerID string) error {
	existing, err := uc.followRepo.FindByUserAndSeller(ctx, userID, sellerID)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}

	if err := uc.followRepo.Delete(ctx, existing.ID); err != nil {
		return err
	}

	profile, err := uc.sellerProfileRepo.FindByUserID(ctx, sellerID)
	if err != nil || profile == nil {
		return err
	}
	count := profile.FollowerCount - 1
	if count < 0 {
		count = 0
	}
	return uc.sellerProfileRepo.Update(ctx, profile.ID, map[string]interface{}{
		"followerCount": count,
	})
}

func (uc *UserUseCase) IsFollowing(ctx context.Context, userID, sellerID string) (bool, error) {
	existing, err := uc.followRepo.FindByUserAndSeller(ctx, userID, sellerID)
	if err != nil {
		return false, err
	}
	return existing != nil, nil
}

type AddressInput struct {
	Label      string
	Street     string
	Building   string
	Apartment  string
	City       string
	Region     string
	PostalCode string
	Phone      string
	Notes      string
	Latitude   *float64
	Longitude  *float64
	IsDefault  bool
}

// CreateAddress adds a delivery address. The first address becomes the
// default automatically; marking a later one default clears the flag on the
// rest.
func (uc *UserUseCase) CreateAddress(ctx context.Context, userID string, input AddressInput) (*entity.Address, error) {
	existing, err := uc.addressRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	address := &entity.Address{
		UserID:     userID,
		Label:      input.Label,
		Street:     input.Street,
		Building:   input.Building,
		Apartment:  input.Apartment,
		City:       input.City,
		Region:     input.Region,
		PostalCode: input.PostalCode,
		Phone:      input.Phone,
		Notes:      input.Notes,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		IsDefault:  input.IsDefault || len(existing) == 0,
	}
	if err := uc.addressRepo.Create(ctx, address); err != nil {
		return nil, err
	}

	if address.IsDefault {
		if err := uc.clearOtherDefaults(ctx, existing, address.ID); err != nil {
			return nil, err
		}
	}
	return address, nil
}

func (uc *UserUseCase) ListAddresses(ctx context.Context, userID string) ([]*entity.Address, error) {
	return uc.addressRepo.ListByUser(ctx, userID)
}

func (uc *UserUseCase) UpdateAddress(ctx context.Context, userID, addressID string, input AddressInput) (*entity.Address, error) {
	address, err := uc.ownedAddress(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"label":      input.Label,
		"street":     input.Street,
		"building":   input.Building,
		"apartment":  input.Apartment,
		"city":       input.City,
		"region":     input.Region,
		"postalCode": input.PostalCode,
		"phone":      input.Phone,
		"notes":      input.Notes,
		"latitude":   input.Latitude,
		"longitude":  input.Longitude,
		"isDefault":  input.IsDefault,
	}
	if err := uc.addressRepo.Update(ctx, address.ID, fields); err != nil {
		return nil, err
	}

	if input.IsDefault {
		others, err := uc.addressRepo.ListByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		if err := uc.clearOtherDefaults(ctx, others, address.ID); err != nil {
			return nil, err
		}
	}
	return uc.addressRepo.GetByID(ctx, address.ID)
}

func (uc *UserUseCase) DeleteAddress(ctx context.Context, userID, addressID string) error {
	address, err := uc.ownedAddress(ctx, userID, addressID)
	if err != nil {
		return err
	}
	return uc.addressRepo.Delete(ctx, address.ID)
}

func (uc *UserUseCase) ownedAddress(ctx context.Context, userID, addressID string) (*entity.Address, error) {
	address, err := uc.addressRepo.GetByID(ctx, addressID)
	if err != nil {
		return nil, err
	}
	if address.UserID != userID {
		return nil, errors.NotFound("Address", nil)
	}
	return address, nil
}

func (uc *UserUseCase) clearOtherDefaults(ctx context.Context, addresses []*entity.Address, keepID string) error {
	for _, a := range addresses {
		if a.ID == keepID || !a.IsDefault {
			continue
		}
		if err := uc.addressRepo.Update(ctx, a.ID, map[string]interface{}{"isDefault": false}); err != nil {
			return err
		}
	}
	return nil
}
