package postgres

import (
	"context"
	"errors"

	"kantinkampus/domain"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{
		DB: db,
	}
}

type menuRow struct {
	domain.Menu
	AvgRating   float64
	ReviewCount int64
}

func (r *MenuRepository) Create(ctx context.Context, menu *domain.Menu) error {
	if err := r.DB.WithContext(ctx).Create(menu).Error; err != nil {
		return err
	}

	return nil
}

func (r *MenuRepository) FindByID(ctx context.Context, id uint) (domain.Menu, error) {
	var menu domain.Menu

	err := r.DB.WithContext(ctx).First(&menu, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Menu{}, domain.ErrNotFound
		}
		return domain.Menu{}, err
	}

	return menu, nil
}

func (r *MenuRepository) ratedQuery(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Model(&domain.Menu{}).
		Select("menus.*, coalesce(avg(r.rating), 0) as avg_rating, count(distinct r.id) as review_count").
		Joins("left join reviews r on r.menu_id = menus.id").
		Group("menus.id")
}

func (r *MenuRepository) FindByStand(ctx context.Context, standID uint) ([]domain.Menu, error) {
	var rows []menuRow

	err := r.ratedQuery(ctx).
		Where("menus.stand_id = ?", standID).
		Order("menus.created_at desc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return ratedMenus(rows), nil
}

func (r *MenuRepository) FindAvailable(ctx context.Context) ([]domain.Menu, error) {
	var rows []menuRow

	err := r.ratedQuery(ctx).
		Where("menus.status = ?", domain.MenuAvailable).
		Order("menus.created_at desc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return ratedMenus(rows), nil
}

func (r *MenuRepository) Search(ctx context.Context, query string) ([]domain.Menu, error) {
	var rows []menuRow

	pattern := "%" + query + "%"
	err := r.ratedQuery(ctx).
		Where("menus.name ilike ? or menus.description ilike ? or menus.category ilike ?",
			pattern, pattern, pattern).
		Order("menus.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return ratedMenus(rows), nil
}

func (r *MenuRepository) Update(ctx context.Context, menu *domain.Menu) error {
	result := r.DB.WithContext(ctx).Model(&domain.Menu{}).Where("id = ?", menu.ID).
		Select("name", "price", "image", "description", "category", "status").
		Updates(menu)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *MenuRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := r.DB.WithContext(ctx).Model(&domain.Menu{}).Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *MenuRepository) Delete(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&domain.Menu{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// ReferencedByOrders reports whether any order line item snapshots this menu.
func (r *MenuRepository) ReferencedByOrders(ctx context.Context, id uint) (bool, error) {
	var count int64

	err := r.DB.WithContext(ctx).Model(&domain.OrderItem{}).
		Where("menu_id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *MenuRepository) FindFavorites(ctx context.Context, buyerID uint) ([]domain.Menu, error) {
	var rows []menuRow

	err := r.DB.WithContext(ctx).Model(&domain.Menu{}).
		Select("menus.*, coalesce(avg(r.rating), 0) as avg_rating, count(distinct r.id) as review_count").
		Joins("inner join favorites f on f.menu_id = menus.id").
		Joins("left join reviews r on r.menu_id = menus.id").
		Where("f.buyer_id = ?", buyerID).
		Group("menus.id, f.created_at").
		Order("f.created_at desc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return ratedMenus(rows), nil
}

func ratedMenus(rows []menuRow) []domain.Menu {
	menus := make([]domain.Menu, 0, len(rows))
	for _, row := range rows {
		menu := row.Menu
		menu.AvgRating = row.AvgRating
		menu.ReviewCount = row.ReviewCount
		menus = append(menus, menu)
	}

	return menus
}
