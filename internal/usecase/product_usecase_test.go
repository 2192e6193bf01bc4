package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazroba/internal/domain/entity"
	"bazroba/pkg/errors"
)

type productFixture struct {
	products   *fakeProductRepo
	categories *fakeCategoryRepo
	users      *fakeUserRepo
	profiles   *fakeSellerProfileRepo
	uc         *ProductUseCase
	seller     *entity.User
	category   *entity.Category
}

func newProductFixture(t *testing.T) *productFixture {
	t.Helper()

	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	users := newFakeUserRepo()
	profiles := newFakeSellerProfileRepo()

	f := &productFixture{
		products:   products,
		categories: categories,
		users:      users,
		profiles:   profiles,
		uc:         NewProductUseCase(products, categories, users, profiles),
		seller:     &entity.User{Role: entity.RoleSeller, FirstName: "Giorgi", IsActive: true},
		category:   &entity.Category{Name: "Ceramics", Slug: "ceramics", IsActive: true},
	}
	require.NoError(t, users.Create(context.Background(), f.seller))
	require.NoError(t, categories.Create(context.Background(), f.category))
	return f
}

func (f *productFixture) addApproved(t *testing.T, title string, price float64) *entity.Product {
	t.Helper()
	p := &entity.Product{
		SellerID:         f.seller.ID,
		CategoryID:       f.category.ID,
		Title:            title,
		Price:            price,
		Stock:            3,
		ModerationStatus: entity.ModerationApproved,
		IsActive:         true,
	}
	require.NoError(t, f.products.Create(context.Background(), p))
	return p
}

func TestCreateProductStartsPending(t *testing.T) {
	f := newProductFixture(t)

	detail, err := f.uc.Create(context.Background(), f.seller.ID, CreateProductInput{
		CategoryID:  f.category.ID,
		Title:       "Hand-painted Bowl",
		Description: "Glazed stoneware",
		Price:       45,
		Stock:       3,
		Images:      []string{"https://cdn.example.com/bowl.jpg"},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ModerationPending, detail.ModerationStatus)
	assert.True(t, detail.IsActive)
	assert.True(t, strings.HasPrefix(detail.Slug, "hand-painted-bowl-"))
	require.Len(t, detail.Images, 1)
	assert.Equal(t, 0, detail.Images[0].SortOrder)
	require.NotNil(t, detail.Category)
	assert.Equal(t, "Ceramics", detail.Category.Name)
	require.NotNil(t, detail.Seller)
	assert.Equal(t, "Giorgi", detail.Seller.FirstName)
}

func TestCreateProductRejectsUnknownCategory(t *testing.T) {
	f := newProductFixture(t)

	_, err := f.uc.Create(context.Background(), f.seller.ID, CreateProductInput{
		CategoryID: "missing",
		Title:      "Bowl",
		Price:      45,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeBadRequest))
}

func TestListFiltersByPrice(t *testing.T) {
	f := newProductFixture(t)
	f.addApproved(t, "Cheap mug", 10)
	f.addApproved(t, "Mid vase", 50)
	f.addApproved(t, "Grand amphora", 200)

	min, max := 20.0, 100.0
	details, total, err := f.uc.List(context.Background(), ProductFilter{MinPrice: &min, MaxPrice: &max})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, details, 1)
	assert.Equal(t, "Mid vase", details[0].Title)
}

func TestListSearchesTitleAndDescription(t *testing.T) {
	f := newProductFixture(t)
	p := f.addApproved(t, "Tea set", 60)
	p.Description = "Hand-thrown porcelain"
	f.addApproved(t, "Wool rug", 120)

	details, total, err := f.uc.List(context.Background(), ProductFilter{Search: "PORCELAIN"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, details, 1)
	assert.Equal(t, "Tea set", details[0].Title)
}

func TestListSkipsUnapprovedAndInactive(t *testing.T) {
	f := newProductFixture(t)
	f.addApproved(t, "Visible", 10)

	pending := f.addApproved(t, "Pending", 10)
	pending.ModerationStatus = entity.ModerationPending

	hidden := f.addApproved(t, "Hidden", 10)
	hidden.IsActive = false

	_, total, err := f.uc.List(context.Background(), ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestListPaginates(t *testing.T) {
	f := newProductFixture(t)
	for i := 0; i < 5; i++ {
		f.addApproved(t, "Bowl", 10)
	}

	page1, total, err := f.uc.List(context.Background(), ProductFilter{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page1, 2)

	page3, total, err := f.uc.List(context.Background(), ProductFilter{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page3, 1)

	beyond, total, err := f.uc.List(context.Background(), ProductFilter{Page: 4, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, beyond)
}

func TestListFiltersByRegion(t *testing.T) {
	f := newProductFixture(t)
	f.addApproved(t, "Local bowl", 10)

	otherSeller := &entity.User{Role: entity.RoleSeller, FirstName: "Mariam", IsActive: true}
	require.NoError(t, f.users.Create(context.Background(), otherSeller))
	other := f.addApproved(t, "Remote bowl", 10)
	other.SellerID = otherSeller.ID

	require.NoError(t, f.profiles.Create(context.Background(), &entity.SellerProfile{
		UserID: f.seller.ID, ShopName: "Giorgi's", Region: "Imereti",
	}))
	require.NoError(t, f.profiles.Create(context.Background(), &entity.SellerProfile{
		UserID: otherSeller.ID, ShopName: "Mariam's", Region: "Kakheti",
	}))

	details, total, err := f.uc.List(context.Background(), ProductFilter{Region: "Imereti"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, details, 1)
	assert.Equal(t, "Local bowl", details[0].Title)
}

func TestGetByIDCountsView(t *testing.T) {
	f := newProductFixture(t)
	p := f.addApproved(t, "Bowl", 10)

	detail, err := f.uc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.Views)

	detail, err = f.uc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, detail.Views)
}

func TestUpdateProductRequiresOwnership(t *testing.T) {
	f := newProductFixture(t)
	p := f.addApproved(t, "Bowl", 10)

	_, err := f.uc.Update(context.Background(), p.ID, "someone-else", UpdateProductInput{
		Title: "Stolen bowl", Price: 1,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeBadRequest))

	updated, err := f.uc.Update(context.Background(), p.ID, f.seller.ID, UpdateProductInput{
		Title: "Better bowl", Price: 15, Stock: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "Better bowl", updated.Title)
	assert.Equal(t, 15.0, updated.Price)
}

func TestDeleteProductSoftDeletes(t *testing.T) {
	f := newProductFixture(t)
	p := f.addApproved(t, "Bowl", 10)

	err := f.uc.Delete(context.Background(), p.ID, "someone-else")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeNotFound))

	require.NoError(t, f.uc.Delete(context.Background(), p.ID, f.seller.ID))
	assert.False(t, p.IsActive)

	// The document itself survives for order history.
	_, err = f.products.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
}

func TestModerateProduct(t *testing.T) {
	f := newProductFixture(t)
	p := f.addApproved(t, "Bowl", 10)

	moderated, err := f.uc.Moderate(context.Background(), p.ID, entity.ModerationRejected,
		"Stock photos are not allowed", "admin-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ModerationRejected, moderated.ModerationStatus)
	assert.Equal(t, "admin-1", moderated.ModeratedBy)
	require.NotNil(t, moderated.ModeratedAt)

	_, err = f.uc.Moderate(context.Background(), p.ID, "parked", "", "admin-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeBadRequest))
}
