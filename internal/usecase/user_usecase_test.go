package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazroba/internal/domain/entity"
	"bazroba/pkg/errors"
)

type userFixture struct {
	users     *fakeUserRepo
	profiles  *fakeSellerProfileRepo
	follows   *fakeFollowRepo
	addresses *fakeAddressRepo
	uc        *UserUseCase
	buyer     *entity.User
	seller    *entity.User
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()

	users := newFakeUserRepo()
	profiles := newFakeSellerProfileRepo()
	follows := newFakeFollowRepo()
	addresses := newFakeAddressRepo()

	f := &userFixture{
		users:     users,
		profiles:  profiles,
		follows:   follows,
		addresses: addresses,
		uc:        NewUserUseCase(users, profiles, follows, addresses),
		buyer:     &entity.User{Role: entity.RoleBuyer, FirstName: "Nino", IsActive: true},
		seller:    &entity.User{Role: entity.RoleSeller, FirstName: "Giorgi", IsActive: true},
	}
	require.NoError(t, users.Create(context.Background(), f.buyer))
	require.NoError(t, users.Create(context.Background(), f.seller))
	return f
}

func TestCreateSellerProfile(t *testing.T) {
	f := newUserFixture(t)

	profile, err := f.uc.CreateSellerProfile(context.Background(), f.seller.ID, SellerProfileInput{
		ShopName: "Giorgi's Ceramics",
		Region:   "Imereti",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ModerationPending, profile.ModerationStatus)

	_, err = f.uc.CreateSellerProfile(context.Background(), f.seller.ID, SellerProfileInput{
		ShopName: "Second shop",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeConflict))

	_, err = f.uc.CreateSellerProfile(context.Background(), f.buyer.ID, SellerProfileInput{
		ShopName: "Buyer shop",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeForbidden))

	assert.Equal(t, entity.RoleSeller, f.seller.Role)
}

func TestCreateSellerProfileElevatesAdmin(t *testing.T) {
	f := newUserFixture(t)
	admin := &entity.User{Role: entity.RoleAdmin, FirstName: "Tamar", IsActive: true}
	require.NoError(t, f.users.Create(context.Background(), admin))

	profile, err := f.uc.CreateSellerProfile(context.Background(), admin.ID, SellerProfileInput{
		ShopName: "Tamar's Rugs",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ModerationPending, profile.ModerationStatus)
	assert.Equal(t, entity.RoleSeller, admin.Role)
}

func TestModerateSellerProfile(t *testing.T) {
	f := newUserFixture(t)

	profile, err := f.uc.CreateSellerProfile(context.Background(), f.seller.ID, SellerProfileInput{
		ShopName: "Giorgi's Ceramics",
	})
	require.NoError(t, err)

	moderated, err := f.uc.ModerateSellerProfile(context.Background(), profile.ID,
		entity.ModerationApproved, "Looks good", "admin-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ModerationApproved, moderated.ModerationStatus)
	assert.Equal(t, "admin-1", moderated.ModeratedBy)
	assert.NotNil(t, moderated.ModeratedAt)

	_, err = f.uc.ModerateSellerProfile(context.Background(), profile.ID, "frozen", "", "admin-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeBadRequest))
}

func TestFollowSeller(t *testing.T) {
	f := newUserFixture(t)

	profile, err := f.uc.CreateSellerProfile(context.Background(), f.seller.ID, SellerProfileInput{
		ShopName: "Giorgi's Ceramics",
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.FollowSeller(context.Background(), f.buyer.ID, f.seller.ID))
	assert.Equal(t, 1, profile.FollowerCount)

	// Following twice does not double-count.
	require.NoError(t, f.uc.FollowSeller(context.Background(), f.buyer.ID, f.seller.ID))
	assert.Equal(t, 1, profile.FollowerCount)

	following, err := f.uc.IsFollowing(context.Background(), f.buyer.ID, f.seller.ID)
	require.NoError(t, err)
	assert.True(t, following)

	require.NoError(t, f.uc.UnfollowSeller(context.Background(), f.buyer.ID, f.seller.ID))
	assert.Equal(t, 0, profile.FollowerCount)

	// Unfollowing again stays at zero.
	require.NoError(t, f.uc.UnfollowSeller(context.Background(), f.buyer.ID, f.seller.ID))
	assert.Equal(t, 0, profile.FollowerCount)
}

func TestFollowSelfRejected(t *testing.T) {
	f := newUserFixture(t)

	err := f.uc.FollowSeller(context.Background(), f.seller.ID, f.seller.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeBadRequest))
}

func TestFirstAddressBecomesDefault(t *testing.T) {
	f := newUserFixture(t)

	first, err := f.uc.CreateAddress(context.Background(), f.buyer.ID, AddressInput{
		Label: "Home", Street: "Rustaveli 12", City: "Tbilisi",
	})
	require.NoError(t, err)
	assert.True(t, first.IsDefault)

	second, err := f.uc.CreateAddress(context.Background(), f.buyer.ID, AddressInput{
		Label: "Work", Street: "Chavchavadze 5", City: "Tbilisi",
	})
	require.NoError(t, err)
	assert.False(t, second.IsDefault)
}

func TestNewDefaultClearsOthers(t *testing.T) {
	f := newUserFixture(t)

	first, err := f.uc.CreateAddress(context.Background(), f.buyer.ID, AddressInput{
		Label: "Home", Street: "Rustaveli 12", City: "Tbilisi",
	})
	require.NoError(t, err)

	second, err := f.uc.CreateAddress(context.Background(), f.buyer.ID, AddressInput{
		Label: "Work", Street: "Chavchavadze 5", City: "Tbilisi", IsDefault: true,
	})
	require.NoError(t, err)
	assert.True(t, second.IsDefault)
	assert.False(t, first.IsDefault)

	// Promoting via update moves the flag back.
	updated, err := f.uc.UpdateAddress(context.Background(), f.buyer.ID, first.ID, AddressInput{
		Label: "Home", Street: "Rustaveli 12", City: "Tbilisi", IsDefault: true,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsDefault)
	assert.False(t, second.IsDefault)
}

func TestAddressOwnershipHidesOthers(t *testing.T) {
	f := newUserFixture(t)

	address, err := f.uc.CreateAddress(context.Background(), f.buyer.ID, AddressInput{
		Label: "Home", Street: "Rustaveli 12", City: "Tbilisi",
	})
	require.NoError(t, err)

	_, err = f.uc.UpdateAddress(context.Background(), f.seller.ID, address.ID, AddressInput{Label: "Mine now"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeNotFound))

	err = f.uc.DeleteAddress(context.Background(), f.seller.ID, address.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeNotFound))

	require.NoError(t, f.uc.DeleteAddress(context.Background(), f.buyer.ID, address.ID))
	remaining, err := f.uc.ListAddresses(context.Background(), f.buyer.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestDeactivateClearsRefreshToken(t *testing.T) {
	f := newUserFixture(t)
	f.buyer.RefreshToken = "some-refresh-token"

	require.NoError(t, f.uc.Deactivate(context.Background(), f.buyer.ID))
	assert.False(t, f.buyer.IsActive)
	assert.Empty(t, f.buyer.RefreshToken)
}
