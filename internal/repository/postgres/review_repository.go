package postgres

import (
	"context"

	"kantinkampus/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{
		DB: db,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	return r.DB.WithContext(ctx).Create(review).Error
}

func (r *ReviewRepository) FindByMenu(ctx context.Context, menuID uint) ([]domain.Review, error) {
	type reviewRow struct {
		domain.Review
		BuyerName string
	}
	var rows []reviewRow

	err := r.DB.WithContext(ctx).Model(&domain.Review{}).
		Select("reviews.*, u.full_name as buyer_name").
		Joins("inner join users u on u.id = reviews.buyer_id").
		Where("reviews.menu_id = ?", menuID).
		Order("reviews.created_at desc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	reviews := make([]domain.Review, 0, len(rows))
	for _, row := range rows {
		review := row.Review
		review.BuyerName = row.BuyerName
		reviews = append(reviews, review)
	}

	return reviews, nil
}
