package postgres

import (
	"context"
	"errors"
	"time"

	"kantinkampus/domain"

	"gorm.io/gorm"
)

type OrdersRepository struct {
	DB *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		DB: db,
	}
}

// CreateFromCart persists a checkout as one atomic unit: every per-stand
// order with its line items, then the buyer's cart lines are deleted.
// A failure anywhere rolls the whole batch back.
func (r *OrdersRepository) CreateFromCart(ctx context.Context, buyerID uint, orders []domain.Order) ([]domain.Order, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range orders {
			items := orders[i].Items
			orders[i].Items = nil

			if err := tx.Create(&orders[i]).Error; err != nil {
				return err
			}

			for j := range items {
				items[j].OrderID = orders[i].ID
			}
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
			orders[i].Items = items
		}

		return tx.Where("buyer_id = ?", buyerID).Delete(&domain.CartLine{}).Error
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

type orderRow struct {
	domain.Order
	StandName string
	BuyerName string
}

func (r *OrdersRepository) joinedQuery(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Model(&domain.Order{}).
		Select("orders.*, s.name as stand_name, u.full_name as buyer_name").
		Joins("inner join stands s on s.id = orders.stand_id").
		Joins("inner join users u on u.id = orders.buyer_id")
}

func (r *OrdersRepository) FindByID(ctx context.Context, id uint) (domain.Order, error) {
	var row orderRow

	err := r.joinedQuery(ctx).Where("orders.id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Order{}, domain.ErrNotFound
		}
		return domain.Order{}, err
	}

	order := row.Order
	order.StandName = row.StandName
	order.BuyerName = row.BuyerName
	return order, nil
}

func (r *OrdersRepository) FindByBuyer(ctx context.Context, buyerID uint, status string) ([]domain.Order, error) {
	query := r.joinedQuery(ctx).Where("orders.buyer_id = ?", buyerID)
	if status != "" {
		query = query.Where("orders.status = ?", status)
	}

	return scanOrders(query)
}

func (r *OrdersRepository) FindBySeller(ctx context.Context, sellerID uint, status string) ([]domain.Order, error) {
	query := r.joinedQuery(ctx).Where("s.seller_id = ?", sellerID)
	if status != "" {
		query = query.Where("orders.status = ?", status)
	}

	return scanOrders(query)
}

func scanOrders(query *gorm.DB) ([]domain.Order, error) {
	var rows []orderRow

	if err := query.Order("orders.created_at desc").Scan(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		order := row.Order
		order.StandName = row.StandName
		order.BuyerName = row.BuyerName
		orders = append(orders, order)
	}

	return orders, nil
}

func (r *OrdersRepository) FindItems(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
	type itemRow struct {
		domain.OrderItem
		MenuName string
	}
	var rows []itemRow

	err := r.DB.WithContext(ctx).Model(&domain.OrderItem{}).
		Select("order_items.*, m.name as menu_name").
		Joins("inner join menus m on m.id = order_items.menu_id").
		Where("order_items.order_id = ?", orderID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(rows))
	for _, row := range rows {
		item := row.OrderItem
		item.MenuName = row.MenuName
		items = append(items, item)
	}

	return items, nil
}

// UpdateLifecycle overwrites the lifecycle fields of one order.
func (r *OrdersRepository) UpdateLifecycle(ctx context.Context, order *domain.Order) error {
	result := r.DB.WithContext(ctx).Model(&domain.Order{}).Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"status":         order.Status,
			"payment_status": order.PaymentStatus,
			"payment_proof":  order.PaymentProof,
			"seller_notes":   order.SellerNotes,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// ==================== seller statistics ====================

func (r *OrdersRepository) TotalRevenue(ctx context.Context, sellerID uint) (int64, error) {
	var total int64

	err := r.DB.WithContext(ctx).Model(&domain.Order{}).
		Joins("inner join stands s on s.id = orders.stand_id").
		Where("s.seller_id = ? and orders.status = ?", sellerID, domain.OrderCompleted).
		Select("coalesce(sum(orders.total), 0)").
		Scan(&total).Error

	return total, err
}

func (r *OrdersRepository) TodayRevenue(ctx context.Context, sellerID uint) (int64, error) {
	var total int64

	err := r.DB.WithContext(ctx).Model(&domain.Order{}).
		Joins("inner join stands s on s.id = orders.stand_id").
		Where("s.seller_id = ? and orders.status = ?", sellerID, domain.OrderCompleted).
		Where("orders.created_at::date = current_date").
		Select("coalesce(sum(orders.total), 0)").
		Scan(&total).Error

	return total, err
}

func (r *OrdersRepository) CountByStatus(ctx context.Context, sellerID uint) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}
	var rows []statusCount

	err := r.DB.WithContext(ctx).Model(&domain.Order{}).
		Joins("inner join stands s on s.id = orders.stand_id").
		Where("s.seller_id = ?", sellerID).
		Select("orders.status, count(*) as count").
		Group("orders.status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}

	return counts, nil
}
