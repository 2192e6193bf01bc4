package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazroba/internal/domain/entity"
)

func TestDashboardExcludesCancelledRevenue(t *testing.T) {
	orders := newFakeOrderRepo()
	products := newFakeProductRepo()
	users := newFakeUserRepo()

	uc := NewAnalyticsUseCase(orders, products, users)
	uc.now = func() time.Time { return time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC) }

	add := func(status string, total float64, createdAt time.Time) {
		order := &entity.Order{Status: status, Total: total}
		require.NoError(t, orders.Create(context.Background(), order))
		order.CreatedAt = createdAt
	}

	add(entity.OrderStatusPending, 100, time.Date(2026, time.June, 2, 0, 0, 0, 0, time.UTC))
	add(entity.OrderStatusDelivered, 50, time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC))
	add(entity.OrderStatusCancelled, 999, time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC))
	add(entity.OrderStatusDelivered, 30, time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC))

	require.NoError(t, users.Create(context.Background(), &entity.User{Role: entity.RoleBuyer, IsActive: true}))
	require.NoError(t, users.Create(context.Background(), &entity.User{Role: entity.RoleSeller, IsActive: true}))
	require.NoError(t, products.Create(context.Background(), &entity.Product{
		Title: "Bowl", ModerationStatus: entity.ModerationApproved, IsActive: true,
	}))

	stats, err := uc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalOrders)
	assert.Equal(t, 2, stats.MonthOrders)
	assert.Equal(t, 3, stats.YearOrders)
	assert.Equal(t, 1, stats.PendingOrders)

	// The cancelled order counts toward order totals but never revenue.
	assert.Equal(t, 180.0, stats.TotalRevenue)
	assert.Equal(t, 100.0, stats.MonthRevenue)
	assert.Equal(t, 150.0, stats.YearRevenue)

	assert.Equal(t, 1, stats.TotalProducts)
	assert.Equal(t, 1, stats.TotalBuyers)
	assert.Equal(t, 1, stats.TotalSellers)
}

func TestSellerDashboardProRatesCommission(t *testing.T) {
	orders := newFakeOrderRepo()
	products := newFakeProductRepo()
	users := newFakeUserRepo()

	uc := NewAnalyticsUseCase(orders, products, users)

	mine := &entity.Product{SellerID: "seller-1", Title: "Bowl", TotalSales: 7, Views: 40,
		ModerationStatus: entity.ModerationApproved, IsActive: true}
	require.NoError(t, products.Create(context.Background(), mine))
	other := &entity.Product{SellerID: "seller-2", Title: "Rug",
		ModerationStatus: entity.ModerationApproved, IsActive: true}
	require.NoError(t, products.Create(context.Background(), other))

	// A mixed order: 60 of 100 subtotal belongs to seller-1, so 6 of the 10
	// commission does too.
	require.NoError(t, orders.Create(context.Background(), &entity.Order{
		Status:     entity.OrderStatusDelivered,
		Subtotal:   100,
		Commission: 10,
		Items: []entity.OrderItem{
			{ProductID: mine.ID, Price: 30, Quantity: 2},
			{ProductID: other.ID, Price: 40, Quantity: 1},
		},
	}))

	// An order with none of the seller's products is invisible to them.
	require.NoError(t, orders.Create(context.Background(), &entity.Order{
		Status:   entity.OrderStatusPending,
		Subtotal: 40,
		Items:    []entity.OrderItem{{ProductID: other.ID, Price: 40, Quantity: 1}},
	}))

	// Cancelled orders appear in the order count but not in revenue.
	require.NoError(t, orders.Create(context.Background(), &entity.Order{
		Status:     entity.OrderStatusCancelled,
		Subtotal:   30,
		Commission: 3,
		Items:      []entity.OrderItem{{ProductID: mine.ID, Price: 30, Quantity: 1}},
	}))

	stats, err := uc.SellerDashboard(context.Background(), "seller-1")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, 1, stats.DeliveredOrders)
	assert.Equal(t, 0, stats.PendingOrders)
	assert.Equal(t, 60.0, stats.TotalRevenue)
	assert.InDelta(t, 6.0, stats.TotalCommission, 1e-9)
	assert.Equal(t, 1, stats.TotalProducts)
	assert.Equal(t, 7, stats.TotalSales)
	assert.Equal(t, 40, stats.TotalViews)
}
