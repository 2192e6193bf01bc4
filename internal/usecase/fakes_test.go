package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"bazroba/internal/domain/entity"
	"bazroba/pkg/errors"
)

// In-memory repository fakes. Updates apply the same field names the
// Firestore adapters write, so the usecases see consistent behavior.

type fakeUserRepo struct {
	users map[string]*entity.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.seq++
	user.SetDocID(fmt.Sprintf("user-%d", r.seq))
	user.Stamp(time.Now())
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email != "" && u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Phone != "" && u.Phone == phone {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByProviderID(_ context.Context, provider, providerUID string) (*entity.User, error) {
	for _, u := range r.users {
		if provider == "google" && u.GoogleID == providerUID {
			return u, nil
		}
		if provider == "facebook" && u.FacebookID == providerUID {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, id string, fields map[string]interface{}) error {
	user, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	for key, value := range fields {
		switch key {
		case "firstName":
			user.FirstName = value.(string)
		case "lastName":
			user.LastName = value.(string)
		case "avatar":
			user.Avatar = value.(string)
		case "password":
			user.PasswordHash = value.(string)
		case "refreshToken":
			if value == nil {
				user.RefreshToken = ""
			} else {
				user.RefreshToken = value.(string)
			}
		case "passwordResetToken":
			if value == nil {
				user.PasswordResetToken = ""
			} else {
				user.PasswordResetToken = value.(string)
			}
		case "passwordResetExpires":
			if value == nil {
				user.PasswordResetExpires = nil
			} else {
				t := value.(time.Time)
				user.PasswordResetExpires = &t
			}
		case "lastLoginAt":
			t := value.(time.Time)
			user.LastLoginAt = &t
		case "isPhoneVerified":
			user.IsPhoneVerified = value.(bool)
		case "isActive":
			user.IsActive = value.(bool)
		case "role":
			user.Role = value.(string)
		case "googleId":
			user.GoogleID = value.(string)
		case "facebookId":
			user.FacebookID = value.(string)
		}
	}
	user.UpdatedAt = time.Now()
	return nil
}

func (r *fakeUserRepo) ListByRole(_ context.Context, role string) ([]*entity.User, error) {
	var users []*entity.User
	for _, u := range r.users {
		if u.Role == role {
			users = append(users, u)
		}
	}
	return users, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
	seq      int
	failOn   map[string]error // per-id Update failures for fault injection
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products: make(map[string]*entity.Product),
		failOn:   make(map[string]error),
	}
}

func (r *fakeProductRepo) add(p *entity.Product) *entity.Product {
	r.seq++
	if p.ID == "" {
		p.SetDocID(fmt.Sprintf("prod-%d", r.seq))
	}
	p.Stamp(time.Now())
	r.products[p.ID] = p
	return p
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.add(product)
	return nil
}

// GetByID hands out a copy, matching a datastore read: callers that mutate
// the result without calling Update must not affect the stored document.
func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	copied := *product
	return &copied, nil
}

func (r *fakeProductRepo) FindBySlug(_ context.Context, slug string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) ListActiveApproved(_ context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	for _, p := range r.products {
		if p.IsActive && p.ModerationStatus == entity.ModerationApproved {
			products = append(products, p)
		}
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (r *fakeProductRepo) ListBySeller(_ context.Context, sellerID string) ([]*entity.Product, error) {
	var products []*entity.Product
	for _, p := range r.products {
		if p.SellerID == sellerID {
			products = append(products, p)
		}
	}
	return products, nil
}

func (r *fakeProductRepo) Update(_ context.Context, id string, fields map[string]interface{}) error {
	if err, ok := r.failOn[id]; ok {
		return err
	}
	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	for key, value := range fields {
		switch key {
		case "stock":
			product.Stock = value.(int)
		case "totalSales":
			product.TotalSales = value.(int)
		case "isActive":
			product.IsActive = value.(bool)
		case "averageRating":
			product.AverageRating = value.(float64)
		case "totalReviews":
			product.TotalReviews = value.(int)
		case "title":
			product.Title = value.(string)
		case "description":
			product.Description = value.(string)
		case "price":
			product.Price = value.(float64)
		case "moderationStatus":
			product.ModerationStatus = value.(string)
		case "moderationComment":
			product.ModerationComment = value.(string)
		}
	}
	product.UpdatedAt = time.Now()
	return nil
}

func (r *fakeProductRepo) IncrementViews(_ context.Context, id string) error {
	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	product.Views++
	return nil
}

type fakeOrderRepo struct {
	orders map[string]*entity.Order
	seq    int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.seq++
	order.SetDocID(fmt.Sprintf("order-%d", r.seq))
	order.Stamp(time.Now())
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	return order, nil
}

func (r *fakeOrderRepo) FindByOrderNumber(_ context.Context, orderNumber string) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.OrderNumber == orderNumber {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) ListByBuyer(_ context.Context, buyerID string) ([]*entity.Order, error) {
	var orders []*entity.Order
	for _, o := range r.orders {
		if o.BuyerID == buyerID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (r *fakeOrderRepo) ListAll(_ context.Context) ([]*entity.Order, error) {
	var orders []*entity.Order
	for _, o := range r.orders {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *fakeOrderRepo) Update(_ context.Context, id string, fields map[string]interface{}) error {
	order, ok := r.orders[id]
	if !ok {
		return errors.NotFound("Order", nil)
	}
	for key, value := range fields {
		switch key {
		case "status":
			order.Status = value.(string)
		case "shippedAt":
			t := value.(time.Time)
			order.ShippedAt = &t
		case "deliveredAt":
			t := value.(time.Time)
			order.DeliveredAt = &t
		case "cancelledAt":
			t := value.(time.Time)
			order.CancelledAt = &t
		case "cancellationReason":
			order.CancellationReason = value.(string)
		}
	}
	order.UpdatedAt = time.Now()
	return nil
}

type fakeNotificationRepo struct {
	notifications map[string]*entity.Notification
	seq           int
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[string]*entity.Notification)}
}

func (r *fakeNotificationRepo) Create(_ context.Context, notification *entity.Notification) error {
	r.seq++
	notification.SetDocID(fmt.Sprintf("notif-%d", r.seq))
	notification.Stamp(time.Now())
	r.notifications[notification.ID] = notification
	return nil
}

func (r *fakeNotificationRepo) GetByID(_ context.Context, id string) (*entity.Notification, error) {
	notification, ok := r.notifications[id]
	if !ok {
		return nil, errors.NotFound("Notification", nil)
	}
	return notification, nil
}

func (r *fakeNotificationRepo) ListByUser(_ context.Context, userID string, limit int) ([]*entity.Notification, error) {
	var notifications []*entity.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			notifications = append(notifications, n)
		}
	}
	if limit > 0 && len(notifications) > limit {
		notifications = notifications[:limit]
	}
	return notifications, nil
}

func (r *fakeNotificationRepo) ListUnreadByUser(_ context.Context, userID string) ([]*entity.Notification, error) {
	var notifications []*entity.Notification
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			notifications = append(notifications, n)
		}
	}
	return notifications, nil
}

func (r *fakeNotificationRepo) Update(_ context.Context, id string, fields map[string]interface{}) error {
	notification, ok := r.notifications[id]
	if !ok {
		return errors.NotFound("Notification", nil)
	}
	for key, value := range fields {
		switch key {
		case "isRead":
			notification.IsRead = value.(bool)
		case "readAt":
			t := value.(time.Time)
			notification.ReadAt = &t
		}
	}
	return nil
}

func (r *fakeNotificationRepo) forUser(userID string) []*entity.Notification {
	var notifications []*entity.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			notifications = append(notifications, n)
		}
	}
	return notifications
}

type fakeReviewRepo struct {
	reviews map[string]*entity.Review
	seq     int
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*entity.Review)}
}

func (r *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.seq++
	review.SetDocID(fmt.Sprintf("review-%d", r.seq))
	review.Stamp(time.Now())
	r.reviews[review.ID] = review
	return nil
}

func (r *fakeReviewRepo) GetByID(_ context.Context, id string) (*entity.Review, error) {
	review, ok := r.reviews[id]
	if !ok {
		return nil, errors.NotFound("Review", nil)
	}
	return review, nil
}

func (r *fakeReviewRepo) FindByUserAndProduct(_ context.Context, userID, productID string) (*entity.Review, error) {
	for _, review := range r.reviews {
		if review.UserID == userID && review.ProductID == productID {
			return review, nil
		}
	}
	return nil, nil
}

func (r *fakeReviewRepo) ListVisibleByProduct(_ context.Context, productID string) ([]*entity.Review, error) {
	var reviews []*entity.Review
	for _, review := range r.reviews {
		if review.ProductID == productID && review.IsVisible {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (r *fakeReviewRepo) Update(_ context.Context, id string, fields map[string]interface{}) error {
	review, ok := r.reviews[id]
	if !ok {
		return errors.NotFound("Review", nil)
	}
	for key, value := range fields {
		switch key {
		case "rating":
			review.Rating = value.(int)
		case "comment":
			review.Comment = value.(string)
		case "isVisible":
			review.IsVisible = value.(bool)
		}
	}
	return nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, id string) error {
	delete(r.reviews, id)
	return nil
}

type fakeSellerProfileRepo struct {
	profiles map[string]*entity.SellerProfile
	seq      int
}

func newFakeSellerProfileRepo() *fakeSellerProfileRepo {
	return &fakeSellerProfileRepo{profiles: make(map[string]*entity.SellerProfile)}
}

func (r *fakeSellerProfileRepo) Create(_ context.Context, profile *entity.SellerProfile) error {
	r.seq++
	profile.SetDocID(fmt.Sprintf("sp-%d", r.seq))
	profile.Stamp(time.Now())
	r.profiles[profile.ID] = profile
	return nil
}

func (r *fakeSellerProfileRepo) GetByID(_ context.Context, id string) (*entity.SellerProfile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, errors.NotFound("Seller profile", nil)
	}
	return profile, nil
}

func (r *fakeSellerProfileRepo) FindByUserID(_ context.Context, userID string) (*entity.SellerProfile, error) {
	for _, profile := range r.profiles {
		if profile.UserID == userID {
			return profile, nil
		}
	}
	return nil, nil
}

func (r *fakeSellerProfileRepo) ListByRegion(_ context.Context, region string) ([]*entity.SellerProfile, error) {
	var profiles []*entity.SellerProfile
	for _, profile := range r.profiles {
		if profile.Region == region {
			profiles = append(profiles, profile)
		}
	}
	return profiles, nil
}

func (r *fakeSellerProfileRepo) Update(_ context.Context, id string, fields map[string]interface{}) error {
	profile, ok := r.profiles[id]
	if !ok {
		return errors.NotFound("Seller profile", nil)
	}
	for key, value := range fields {
		switch key {
		case "shopName":
			profile.ShopName = value.(string)
		case "description":
			profile.Description = value.(string)
		case "region":
			profile.Region = value.(string)
		case "followerCount":
			profile.FollowerCount = value.(int)
		case "moderationStatus":
			profile.ModerationStatus = value.(string)
		case "moderationComment":
			profile.ModerationComment = value.(string)
		}
	}
	return nil
}

type fakeFollowRepo struct {
	follows map[string]*entity.Follow
	seq     int
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{follows: make(map[string]*entity.Follow)}
}

func (r *fakeFollowRepo) Create(_ context.Context, follow *entity.Follow) error {
	r.seq++
	follow.SetDocID(fmt.Sprintf("follow-%d", r.seq))
	follow.Stamp(time.Now())
	r.follows[follow.ID] = follow
	return nil
}

func (r *fakeFollowRepo) FindByUserAndSeller(_ context.Context, userID, sellerID string) (*entity.Follow, error) {
	for _, follow := range r.follows {
		if follow.UserID == userID && follow.SellerID == sellerID {
			return follow, nil
		}
	}
	return nil, nil
}

func (r *fakeFollowRepo) Delete(_ context.Context, id string) error {
	delete(r.follows, id)
	return nil
}

type fakeAddressRepo struct {
	addresses map[string]*entity.Address
	seq       int
}

func newFakeAddressRepo() *fakeAddressRepo {
	return &fakeAddressRepo{addresses: make(map[string]*entity.Address)}
}

func (r *fakeAddressRepo) Create(_ context.Context, address *entity.Address) error {
	r.seq++
	address.SetDocID(fmt.Sprintf("addr-%d", r.seq))
	address.Stamp(time.Now())
	r.addresses[address.ID] = address
	return nil
}

func (r *fakeAddressRepo) GetByID(_ context.Context, id string) (*entity.Address, error) {
	address, ok := r.addresses[id]
	if !ok {
		return nil, errors.NotFound("Address", nil)
	}
	return address, nil
}

func (r *fakeAddressRepo) ListByUser(_ context.Context, userID string) ([]*entity.Address, error) {
	var addresses []*entity.Address
	for _, address := range r.addresses {
		if address.UserID == userID {
			addresses = append(addresses, address)
		}
	}
	sort.Slice(addresses, func(i, j int) bool { return addresses[i].ID < addresses[j].ID })
	return addresses, nil
}

func (r *fakeAddressRepo) Update(_ context.Context, id string, fields map[string]interface{}) error {
	address, ok := r.addresses[id]
	if !ok {
		return errors.NotFound("Address", nil)
	}
	for key, value := range fields {
		switch key {
		case "label":
			address.Label = value.(string)
		case "street":
			address.Street = value.(string)
		case "city":
			address.City = value.(string)
		case "region":
			address.Region = value.(string)
		case "isDefault":
			address.IsDefault = value.(bool)
		}
	}
	return nil
}

func (r *fakeAddressRepo) Delete(_ context.Context, id string) error {
	delete(r.addresses, id)
	return nil
}

type fakeChatRepo struct {
	messages map[string]*entity.ChatMessage
	seq      int
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{messages: make(map[string]*entity.ChatMessage)}
}

func (r *fakeChatRepo) Create(_ context.Context, message *entity.ChatMessage) error {
	r.seq++
	message.SetDocID(fmt.Sprintf("msg-%d", r.seq))
	message.Stamp(time.Now())
	r.messages[message.ID] = message
	return nil
}

func (r *fakeChatRepo) GetByID(_ context.Context, id string) (*entity.ChatMessage, error) {
	message, ok := r.messages[id]
	if !ok {
		return nil, errors.NotFound("Message", nil)
	}
	return message, nil
}

func (r *fakeChatRepo) ListByOrder(_ context.Context, orderID string) ([]*entity.ChatMessage, error) {
	var messages []*entity.ChatMessage
	for _, m := range r.messages {
		if m.OrderID == orderID {
			messages = append(messages, m)
		}
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].ID < messages[j].ID })
	return messages, nil
}

func (r *fakeChatRepo) ListConversation(_ context.Context, userA, userB string) ([]*entity.ChatMessage, error) {
	var messages []*entity.ChatMessage
	for _, m := range r.messages {
		if m.OrderID != "" {
			continue
		}
		if (m.SenderID == userA && m.ReceiverID == userB) || (m.SenderID == userB && m.ReceiverID == userA) {
			messages = append(messages, m)
		}
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].ID < messages[j].ID })
	return messages, nil
}

func (r *fakeChatRepo) Update(_ context.Context, id string, fields map[string]interface{}) error {
	message, ok := r.messages[id]
	if !ok {
		return errors.NotFound("Message", nil)
	}
	for key, value := range fields {
		switch key {
		case "isRead":
			message.IsRead = value.(bool)
		case "readAt":
			t := value.(time.Time)
			message.ReadAt = &t
		}
	}
	return nil
}

type fakeWishlistRepo struct {
	items map[string]*entity.WishlistItem
	seq   int
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{items: make(map[string]*entity.WishlistItem)}
}

func (r *fakeWishlistRepo) Create(_ context.Context, item *entity.WishlistItem) error {
	r.seq++
	item.SetDocID(fmt.Sprintf("wish-%d", r.seq))
	item.Stamp(time.Now())
	r.items[item.ID] = item
	return nil
}

func (r *fakeWishlistRepo) FindByUserAndProduct(_ context.Context, userID, productID string) (*entity.WishlistItem, error) {
	for _, item := range r.items {
		if item.UserID == userID && item.ProductID == productID {
			return item, nil
		}
	}
	return nil, nil
}

func (r *fakeWishlistRepo) ListByUser(_ context.Context, userID string) ([]*entity.WishlistItem, error) {
	var items []*entity.WishlistItem
	for _, item := range r.items {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *fakeWishlistRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
	seq        int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.seq++
	category.SetDocID(fmt.Sprintf("cat-%d", r.seq))
	category.Stamp(time.Now())
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, errors.NotFound("Category", nil)
	}
	return category, nil
}

func (r *fakeCategoryRepo) FindBySlug(_ context.Context, slug string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Slug == slug && c.IsActive {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) ListActive(_ context.Context) ([]*entity.Category, error) {
	var categories []*entity.Category
	for _, c := range r.categories {
		if c.IsActive {
			categories = append(categories, c)
		}
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (r *fakeCategoryRepo) ListRoots(_ context.Context) ([]*entity.Category, error) {
	var categories []*entity.Category
	for _, c := range r.categories {
		if c.IsActive && c.ParentID == "" {
			categories = append(categories, c)
		}
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (r *fakeCategoryRepo) ListChildren(_ context.Context, parentID string) ([]*entity.Category, error) {
	var categories []*entity.Category
	for _, c := range r.categories {
		if c.IsActive && c.ParentID == parentID {
			categories = append(categories, c)
		}
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, id string, fields map[string]interface{}) error {
	category, ok := r.categories[id]
	if !ok {
		return errors.NotFound("Category", nil)
	}
	for key, value := range fields {
		switch key {
		case "name":
			category.Name = value.(string)
		case "slug":
			category.Slug = value.(string)
		case "description":
			category.Description = value.(string)
		case "image":
			category.Image = value.(string)
		case "sortOrder":
			category.SortOrder = value.(int)
		case "isActive":
			category.IsActive = value.(bool)
		}
	}
	return nil
}

type fakeBannerRepo struct {
	banners map[string]*entity.Banner
	seq     int
}

func newFakeBannerRepo() *fakeBannerRepo {
	return &fakeBannerRepo{banners: make(map[string]*entity.Banner)}
}

func (r *fakeBannerRepo) Create(_ context.Context, banner *entity.Banner) error {
	r.seq++
	banner.SetDocID(fmt.Sprintf("banner-%d", r.seq))
	banner.Stamp(time.Now())
	r.banners[banner.ID] = banner
	return nil
}

func (r *fakeBannerRepo) GetByID(_ context.Context, id string) (*entity.Banner, error) {
	banner, ok := r.banners[id]
	if !ok {
		return nil, errors.NotFound("Banner", nil)
	}
	return banner, nil
}

func (r *fakeBannerRepo) ListActive(_ context.Context) ([]*entity.Banner, error) {
	var banners []*entity.Banner
	for _, b := range r.banners {
		if b.IsActive {
			banners = append(banners, b)
		}
	}
	sort.Slice(banners, func(i, j int) bool { return banners[i].SortOrder < banners[j].SortOrder })
	return banners, nil
}

func (r *fakeBannerRepo) Update(_ context.Context, id string, fields map[string]interface{}) error {
	banner, ok := r.banners[id]
	if !ok {
		return errors.NotFound("Banner", nil)
	}
	for key, value := range fields {
		switch key {
		case "title":
			banner.Title = value.(string)
		case "image":
			banner.Image = value.(string)
		case "link":
			banner.Link = value.(string)
		case "sortOrder":
			banner.SortOrder = value.(int)
		case "isActive":
			banner.IsActive = value.(bool)
		}
	}
	return nil
}
