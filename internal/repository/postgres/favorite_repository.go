package postgres

import (
	"context"

	"kantinkampus/domain"

	"gorm.io/gorm"
)

type FavoriteRepository struct {
	DB *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{
		DB: db,
	}
}

func (r *FavoriteRepository) Exists(ctx context.Context, buyerID, menuID uint) (bool, error) {
	var count int64

	err := r.DB.WithContext(ctx).Model(&domain.Favorite{}).
		Where("buyer_id = ? and menu_id = ?", buyerID, menuID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *FavoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	return r.DB.WithContext(ctx).Create(favorite).Error
}

func (r *FavoriteRepository) Delete(ctx context.Context, buyerID, menuID uint) error {
	result := r.DB.WithContext(ctx).
		Where("buyer_id = ? and menu_id = ?", buyerID, menuID).
		Delete(&domain.Favorite{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
