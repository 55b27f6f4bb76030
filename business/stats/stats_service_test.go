package stats

import (
	"context"
	"testing"

	"kantinkampus/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrdersRepo struct {
	totalRevenue int64
	todayRevenue int64
	counts       map[string]int64
}

func (r *stubOrdersRepo) TotalRevenue(_ context.Context, _ uint) (int64, error) {
	return r.totalRevenue, nil
}

func (r *stubOrdersRepo) TodayRevenue(_ context.Context, _ uint) (int64, error) {
	return r.todayRevenue, nil
}

func (r *stubOrdersRepo) CountByStatus(_ context.Context, _ uint) (map[string]int64, error) {
	counts := make(map[string]int64, len(r.counts))
	for k, v := range r.counts {
		counts[k] = v
	}
	return counts, nil
}

func TestGetSellerStats(t *testing.T) {
	ctx := context.Background()
	svc := NewStatsService(&stubOrdersRepo{
		totalRevenue: 480000,
		todayRevenue: 63000,
		counts: map[string]int64{
			domain.OrderCompleted: 12,
			domain.OrderCooking:   2,
			domain.OrderCancelled: 1,
		},
	})

	stats, err := svc.GetSellerStats(ctx, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(480000), stats.TotalRevenue)
	assert.Equal(t, int64(63000), stats.TodayRevenue)
	assert.Equal(t, int64(15), stats.TotalOrders)

	assert.Equal(t, int64(12), stats.CountByStatus[domain.OrderCompleted])
	assert.Equal(t, int64(2), stats.CountByStatus[domain.OrderCooking])

	// untouched statuses still show up as explicit zeroes
	assert.Contains(t, stats.CountByStatus, domain.OrderPendingPayment)
	assert.Equal(t, int64(0), stats.CountByStatus[domain.OrderReady])
	assert.Len(t, stats.CountByStatus, 7)
}

func TestGetSellerStats_NoOrders(t *testing.T) {
	ctx := context.Background()
	svc := NewStatsService(&stubOrdersRepo{counts: map[string]int64{}})

	stats, err := svc.GetSellerStats(ctx, 10)
	require.NoError(t, err)
	assert.Zero(t, stats.TotalRevenue)
	assert.Zero(t, stats.TotalOrders)
	assert.Len(t, stats.CountByStatus, 7)
}
