package postgres

import (
	"context"
	"errors"

	"kantinkampus/domain"

	"gorm.io/gorm"
)

type StandRepository struct {
	DB *gorm.DB
}

func NewStandRepository(db *gorm.DB) *StandRepository {
	return &StandRepository{
		DB: db,
	}
}

func (r *StandRepository) Create(ctx context.Context, stand *domain.Stand) error {
	if err := r.DB.WithContext(ctx).Create(stand).Error; err != nil {
		return err
	}

	return nil
}

func (r *StandRepository) FindByID(ctx context.Context, id uint) (domain.Stand, error) {
	var stand domain.Stand

	err := r.DB.WithContext(ctx).First(&stand, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Stand{}, domain.ErrNotFound
		}
		return domain.Stand{}, err
	}

	return stand, nil
}

func (r *StandRepository) FindBySeller(ctx context.Context, sellerID uint) (domain.Stand, error) {
	var stand domain.Stand

	err := r.DB.WithContext(ctx).Where("seller_id = ?", sellerID).First(&stand).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Stand{}, domain.ErrNotFound
		}
		return domain.Stand{}, err
	}

	return stand, nil
}

type standRow struct {
	domain.Stand
	SellerName  string
	SellerPhone string
}

func (r *StandRepository) FindAll(ctx context.Context) ([]domain.Stand, error) {
	var rows []standRow

	err := r.DB.WithContext(ctx).Model(&domain.Stand{}).
		Select("stands.*, u.full_name as seller_name, u.phone as seller_phone").
		Joins("inner join users u on u.id = stands.seller_id").
		Order("stands.created_at desc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stands := make([]domain.Stand, 0, len(rows))
	for _, row := range rows {
		stand := row.Stand
		stand.SellerName = row.SellerName
		stand.SellerPhone = row.SellerPhone
		stands = append(stands, stand)
	}

	return stands, nil
}

func (r *StandRepository) Update(ctx context.Context, stand *domain.Stand) error {
	result := r.DB.WithContext(ctx).Model(&domain.Stand{}).Where("id = ?", stand.ID).
		Select("name", "description", "image", "updated_at").
		Updates(stand)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
