package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"bazroba/internal/domain/entity"
	"bazroba/internal/domain/repository"
	"bazroba/pkg/errors"
	"bazroba/pkg/logger"
)

type OrderUseCase struct {
	orderRepo      repository.OrderRepository
	productRepo    repository.ProductRepository
	userRepo       repository.UserRepository
	notifications  *NotificationUseCase
	commissionRate float64
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	notifications *NotificationUseCase,
	commissionRate float64,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		userRepo:       userRepo,
		notifications:  notifications,
		commissionRate: commissionRate,
	}
}

type OrderItemInput struct {
	ProductID    string
	Quantity     int
	VariantSize  string
	VariantColor string
}

type CreateOrderInput struct {
	Items           []OrderItemInput
	PaymentMethod   string
	DeliveryMethod  string
	DeliveryAddress string
	DeliveryRegion  string
	DeliveryCity    string
	DeliveryPhone   string
	DeliveryNotes   string
}

// OrderDetail is an order aggregated with its buyer and the live product
// behind each line item.
type OrderDetail struct {
	*entity.Order
	Buyer *entity.PublicProfile `json:"buyer,omitempty"`
	Items []OrderDetailItem     `json:"items"`
}

type OrderDetailItem struct {
	entity.OrderItem
	Product *entity.Product `json:"product,omitempty"`
}

// Create places an order. Every line item is validated against the catalog
// before any stock is touched, so a rejected order never leaves partial stock
// mutations behind. The per-product stock writes themselves are still sequential
// and non-transactional; concurrent orders on the same product can race.
func (uc *OrderUseCase) Create(ctx context.Context, buyerID string, input CreateOrderInput) (*OrderDetail, error) {
	if len(input.Items) == 0 {
		return nil, errors.BadRequest("Order must contain at least one item", nil)
	}

	// Validation pass: load and check every product before mutating anything.
	// Quantities are accumulated per product so that several lines for the
	// same product are checked against stock as a whole.
	products := make(map[string]*entity.Product)
	requested := make(map[string]int)
	for _, item := range input.Items {
		product, ok := products[item.ProductID]
		if !ok {
			loaded, err := uc.productRepo.GetByID(ctx, item.ProductID)
			if err != nil || !loaded.IsActive {
				return nil, errors.BadRequest(fmt.Sprintf("Product %s not found or inactive", item.ProductID), nil)
			}
			products[item.ProductID] = loaded
			product = loaded
		}
		requested[item.ProductID] += item.Quantity
		if requested[item.ProductID] > product.Stock {
			return nil, errors.BadRequest(fmt.Sprintf("Insufficient stock for product %s", product.Title), nil)
		}
	}

	// Build the immutable line-item snapshot.
	var subtotal float64
	orderItems := make([]entity.OrderItem, len(input.Items))
	for i, item := range input.Items {
		product := products[item.ProductID]
		price := product.UnitPrice()
		itemTotal := price * float64(item.Quantity)
		subtotal += itemTotal

		orderItems[i] = entity.OrderItem{
			ProductID:    product.ID,
			ProductTitle: product.Title,
			ProductImage: product.MainImage(),
			Price:        price,
			Quantity:     item.Quantity,
			Total:        itemTotal,
			VariantSize:  item.VariantSize,
			VariantColor: item.VariantColor,
		}
	}

	// One stock write per distinct product, covering all its lines.
	for productID, quantity := range requested {
		product := products[productID]
		if err := uc.productRepo.Update(ctx, productID, map[string]interface{}{
			"stock":      product.Stock - quantity,
			"totalSales": product.TotalSales + quantity,
		}); err != nil {
			return nil, err
		}
	}

	orderNumber, err := uc.generateOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		OrderNumber:     orderNumber,
		BuyerID:         buyerID,
		Items:           orderItems,
		Subtotal:        subtotal,
		DeliveryFee:     entity.DeliveryFeeFor(input.DeliveryMethod),
		Commission:      subtotal * uc.commissionRate,
		PaymentMethod:   input.PaymentMethod,
		DeliveryMethod:  input.DeliveryMethod,
		DeliveryAddress: input.DeliveryAddress,
		DeliveryRegion:  input.DeliveryRegion,
		DeliveryCity:    input.DeliveryCity,
		DeliveryPhone:   input.DeliveryPhone,
		DeliveryNotes:   input.DeliveryNotes,
		Status:          entity.OrderStatusPending,
		IsPaid:          !entity.CashOnDelivery(input.PaymentMethod),
	}
	order.Total = order.Subtotal + order.DeliveryFee

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	uc.notify(ctx, buyerID, "Order Placed",
		fmt.Sprintf("Your order #%s has been placed successfully", orderNumber), order.ID)

	return uc.GetByID(ctx, order.ID)
}

func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*OrderDetail, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.aggregate(ctx, order, true), nil
}

// List returns orders, filtered by buyer or seller. The buyer filter runs in
// the store; the seller filter intersects all orders with the seller's
// product ids in-process.
func (uc *OrderUseCase) List(ctx context.Context, buyerID, sellerID string) ([]*OrderDetail, error) {
	var orders []*entity.Order
	var err error

	if buyerID != "" {
		orders, err = uc.orderRepo.ListByBuyer(ctx, buyerID)
	} else {
		orders, err = uc.orderRepo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	if sellerID != "" {
		sellerProducts, err := uc.productRepo.ListBySeller(ctx, sellerID)
		if err != nil {
			return nil, err
		}
		productIDs := make(map[string]bool, len(sellerProducts))
		for _, p := range sellerProducts {
			productIDs[p.ID] = true
		}

		filtered := orders[:0]
		for _, order := range orders {
			for _, item := range order.Items {
				if productIDs[item.ProductID] {
					filtered = append(filtered, order)
					break
				}
			}
		}
		orders = filtered
	}

	details := make([]*OrderDetail, len(orders))
	for i, order := range orders {
		details[i] = uc.aggregate(ctx, order, false)
	}
	return details, nil
}

type UpdateOrderStatusInput struct {
	Status string
	Reason string
}

// UpdateStatus moves an order through the state machine. Transitions are
// forward-only, with cancellation allowed from any non-terminal state;
// cancellation restores stock and sales counters line by line.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id string, input UpdateOrderStatusInput) (*OrderDetail, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.CanTransitionTo(input.Status) {
		return nil, errors.BadRequest(
			fmt.Sprintf("Cannot transition order from %s to %s", order.Status, input.Status), nil)
	}

	now := time.Now()
	fields := map[string]interface{}{"status": input.Status}

	switch input.Status {
	case entity.OrderStatusShipped:
		fields["shippedAt"] = now
	case entity.OrderStatusDelivered:
		fields["deliveredAt"] = now
	case entity.OrderStatusCancelled:
		fields["cancelledAt"] = now
		fields["cancellationReason"] = input.Reason
		uc.restoreStock(ctx, order)
	}

	if err := uc.orderRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	uc.notify(ctx, order.BuyerID, "Order Status Updated",
		fmt.Sprintf("Your order #%s status has been updated to %s", order.OrderNumber, input.Status), order.ID)

	return uc.GetByID(ctx, id)
}

// restoreStock reverses the stock and sales deltas applied at creation time,
// one product at a time. Products deleted in the meantime are skipped.
func (uc *OrderUseCase) restoreStock(ctx context.Context, order *entity.Order) {
	for _, item := range order.Items {
		product, err := uc.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			logger.Warn("Skipping stock restore for missing product %s: %v", item.ProductID, err)
			continue
		}
		if err := uc.productRepo.Update(ctx, product.ID, map[string]interface{}{
			"stock":      product.Stock + item.Quantity,
			"totalSales": product.TotalSales - item.Quantity,
		}); err != nil {
			logger.Warn("Failed to restore stock for product %s: %v", product.ID, err)
		}
	}
}

func (uc *OrderUseCase) aggregate(ctx context.Context, order *entity.Order, withProducts bool) *OrderDetail {
	detail := &OrderDetail{Order: order}

	if buyer, err := uc.userRepo.GetByID(ctx, order.BuyerID); err == nil {
		profile := buyer.Public()
		detail.Buyer = &profile
	}

	detail.Items = make([]OrderDetailItem, len(order.Items))
	for i, item := range order.Items {
		detail.Items[i] = OrderDetailItem{OrderItem: item}
		if withProducts {
			if product, err := uc.productRepo.GetByID(ctx, item.ProductID); err == nil {
				detail.Items[i].Product = product
			}
		}
	}
	return detail
}

// notify is best-effort: a failed notification write never fails the order
// operation that triggered it.
func (uc *OrderUseCase) notify(ctx context.Context, userID, title, message, orderID string) {
	_, err := uc.notifications.Create(ctx, CreateNotificationInput{
		UserID:  userID,
		Type:    "order",
		Title:   title,
		Message: message,
		Link:    "/orders/" + orderID,
	})
	if err != nil {
		logger.Warn("Failed to create order notification for user %s: %v", userID, err)
	}
}

// generateOrderNumber builds a human-readable id from a timestamp and a
// random suffix, re-rolling on the unlikely collision.
func (uc *OrderUseCase) generateOrderNumber(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 3; attempt++ {
		candidate := fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), randomSuffix(8))
		existing, err := uc.orderRepo.FindByOrderNumber(ctx, candidate)
		if err != nil {
			return "", err
		}
		if existing == nil {
			return candidate, nil
		}
	}
	return "", errors.Internal("Failed to generate unique order number", nil)
}

const suffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomSuffix(length int) string {
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(suffixAlphabet))))
		if err != nil {
			n = big.NewInt(0)
		}
		b[i] = suffixAlphabet[n.Int64()]
	}
	return string(b)
}
