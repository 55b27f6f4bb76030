package postgres

import (
	"context"
	"errors"

	"kantinkampus/domain"

	"gorm.io/gorm"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{
		DB: db,
	}
}

func (r *CartRepository) FindLine(ctx context.Context, buyerID, menuID uint) (domain.CartLine, error) {
	var line domain.CartLine

	err := r.DB.WithContext(ctx).
		Where("buyer_id = ? and menu_id = ?", buyerID, menuID).
		First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CartLine{}, domain.ErrNotFound
		}
		return domain.CartLine{}, err
	}

	return line, nil
}

func (r *CartRepository) FindLineByID(ctx context.Context, id uint) (domain.CartLine, error) {
	var line domain.CartLine

	err := r.DB.WithContext(ctx).First(&line, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CartLine{}, domain.ErrNotFound
		}
		return domain.CartLine{}, err
	}

	return line, nil
}

func (r *CartRepository) Create(ctx context.Context, line *domain.CartLine) error {
	return r.DB.WithContext(ctx).Create(line).Error
}

func (r *CartRepository) UpdateQty(ctx context.Context, id uint, qty int, notes string) error {
	updates := map[string]interface{}{"qty": qty}
	if notes != "" {
		updates["notes"] = notes
	}

	result := r.DB.WithContext(ctx).Model(&domain.CartLine{}).Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *CartRepository) DeleteLine(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&domain.CartLine{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *CartRepository) Clear(ctx context.Context, buyerID uint) error {
	return r.DB.WithContext(ctx).
		Where("buyer_id = ?", buyerID).
		Delete(&domain.CartLine{}).Error
}

// FindItems loads the buyer's cart joined with menu and stand data,
// ordered for display (stand name, then menu name).
func (r *CartRepository) FindItems(ctx context.Context, buyerID uint) ([]domain.CartItem, error) {
	var items []domain.CartItem

	err := r.DB.WithContext(ctx).Model(&domain.CartLine{}).
		Select(`cart_lines.id, cart_lines.buyer_id, cart_lines.menu_id, cart_lines.qty, cart_lines.notes,
			m.name as menu_name, m.price, m.status, s.id as stand_id, s.name as stand_name`).
		Joins("inner join menus m on m.id = cart_lines.menu_id").
		Joins("inner join stands s on s.id = m.stand_id").
		Where("cart_lines.buyer_id = ?", buyerID).
		Order("s.name, m.name").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *CartRepository) Count(ctx context.Context, buyerID uint) (int64, error) {
	var count int64

	err := r.DB.WithContext(ctx).Model(&domain.CartLine{}).
		Where("buyer_id = ?", buyerID).
		Select("coalesce(sum(qty), 0)").
		Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
