package stats

import (
	"context"

	"kantinkampus/domain"
)

// OrdersRepository contract interface (aggregate queries)
type OrdersRepository interface {
	TotalRevenue(ctx context.Context, sellerID uint) (int64, error)
	TodayRevenue(ctx context.Context, sellerID uint) (int64, error)
	CountByStatus(ctx context.Context, sellerID uint) (map[string]int64, error)
}

type SellerStats struct {
	TotalRevenue  int64            `json:"total_revenue"`
	TodayRevenue  int64            `json:"today_revenue"`
	TotalOrders   int64            `json:"total_orders"`
	CountByStatus map[string]int64 `json:"count_by_status"`
}

type statsService struct {
	ordersRepo OrdersRepository
}

func NewStatsService(ordersRepo OrdersRepository) *statsService {
	return &statsService{
		ordersRepo: ordersRepo,
	}
}

// GetSellerStats recomputes the dashboard aggregates on every call;
// revenue figures count completed orders only.
func (s *statsService) GetSellerStats(ctx context.Context, sellerID uint) (SellerStats, error) {
	totalRevenue, err := s.ordersRepo.TotalRevenue(ctx, sellerID)
	if err != nil {
		return SellerStats{}, err
	}

	todayRevenue, err := s.ordersRepo.TodayRevenue(ctx, sellerID)
	if err != nil {
		return SellerStats{}, err
	}

	counts, err := s.ordersRepo.CountByStatus(ctx, sellerID)
	if err != nil {
		return SellerStats{}, err
	}

	var total int64
	for _, count := range counts {
		total += count
	}

	// Every status appears in the result, zero or not.
	for _, status := range []string{
		domain.OrderPendingPayment,
		domain.OrderPendingVerification,
		domain.OrderVerified,
		domain.OrderCooking,
		domain.OrderReady,
		domain.OrderCompleted,
		domain.OrderCancelled,
	} {
		if _, ok := counts[status]; !ok {
			counts[status] = 0
		}
	}

	return SellerStats{
		TotalRevenue:  totalRevenue,
		TodayRevenue:  todayRevenue,
		TotalOrders:   total,
		CountByStatus: counts,
	}, nil
}
