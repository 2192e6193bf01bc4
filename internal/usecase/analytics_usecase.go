package usecase

import (
	"context"
	"time"

	"bazroba/internal/domain/entity"
	"bazroba/internal/domain/repository"
)

// AnalyticsUseCase aggregates dashboard numbers by scanning the relevant
// collections in memory. Fine at the current data volume; revisit if the
// order collection grows past what one scan per dashboard load can carry.
type AnalyticsUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

func NewAnalyticsUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

type DashboardStats struct {
	TotalOrders   int     `json:"total_orders"`
	MonthOrders   int     `json:"month_orders"`
	YearOrders    int     `json:"year_orders"`
	PendingOrders int     `json:"pending_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	MonthRevenue  float64 `json:"month_revenue"`
	YearRevenue   float64 `json:"year_revenue"`
	TotalProducts int     `json:"total_products"`
	TotalBuyers   int     `json:"total_buyers"`
	TotalSellers  int     `json:"total_sellers"`
}

// Dashboard computes the admin overview. Cancelled orders are excluded from
// revenue but counted in order totals.
func (uc *AnalyticsUseCase) Dashboard(ctx context.Context) (*DashboardStats, error) {
	orders, err := uc.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())

	stats := &DashboardStats{}
	for _, order := range orders {
		stats.TotalOrders++
		if order.Status == entity.OrderStatusPending {
			stats.PendingOrders++
		}

		inMonth := !order.CreatedAt.Before(monthStart)
		inYear := !order.CreatedAt.Before(yearStart)
		if inMonth {
			stats.MonthOrders++
		}
		if inYear {
			stats.YearOrders++
		}

		if order.Status == entity.OrderStatusCancelled {
			continue
		}
		stats.TotalRevenue += order.Total
		if inMonth {
			stats.MonthRevenue += order.Total
		}
		if inYear {
			stats.YearRevenue += order.Total
		}
	}

	products, err := uc.productRepo.ListActiveApproved(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalProducts = len(products)

	buyers, err := uc.userRepo.ListByRole(ctx, entity.RoleBuyer)
	if err != nil {
		return nil, err
	}
	stats.TotalBuyers = len(buyers)

	sellers, err := uc.userRepo.ListByRole(ctx, entity.RoleSeller)
	if err != nil {
		return nil, err
	}
	stats.TotalSellers = len(sellers)

	return stats, nil
}

type SellerStats struct {
	TotalOrders     int     `json:"total_orders"`
	PendingOrders   int     `json:"pending_orders"`
	DeliveredOrders int     `json:"delivered_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
	TotalCommission float64 `json:"total_commission"`
	TotalProducts   int     `json:"total_products"`
	TotalSales      int     `json:"total_sales"`
	TotalViews      int     `json:"total_views"`
}

// SellerDashboard computes per-seller numbers. Order revenue counts only the
// seller's own line items; commission is pro-rated the same way.
func (uc *AnalyticsUseCase) SellerDashboard(ctx context.Context, sellerID string) (*SellerStats, error) {
	products, err := uc.productRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	productIDs := make(map[string]bool, len(products))
	stats := &SellerStats{TotalProducts: len(products)}
	for _, p := range products {
		productIDs[p.ID] = true
		stats.TotalSales += p.TotalSales
		stats.TotalViews += p.Views
	}

	orders, err := uc.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, order := range orders {
		var lineRevenue float64
		for _, item := range order.Items {
			if productIDs[item.ProductID] {
				lineRevenue += item.Price * float64(item.Quantity)
			}
		}
		if lineRevenue == 0 {
			continue
		}

		stats.TotalOrders++
		switch order.Status {
		case entity.OrderStatusPending:
			stats.PendingOrders++
		case entity.OrderStatusDelivered:
			stats.DeliveredOrders++
		case entity.OrderStatusCancelled:
			continue
		}

		stats.TotalRevenue += lineRevenue
		if order.Subtotal > 0 {
			stats.TotalCommission += order.Commission * (lineRevenue / order.Subtotal)
		}
	}

	return stats, nil
}
