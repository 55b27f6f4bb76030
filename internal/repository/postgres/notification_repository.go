package postgres

import (
	"context"

	"kantinkampus/domain"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	DB *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		DB: db,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	return r.DB.WithContext(ctx).Create(notification).Error
}

func (r *NotificationRepository) FindUnread(ctx context.Context, userID uint) ([]domain.Notification, error) {
	var notifications []domain.Notification

	err := r.DB.WithContext(ctx).
		Where("user_id = ? and is_read = false", userID).
		Order("created_at desc").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID uint) error {
	result := r.DB.WithContext(ctx).Model(&domain.Notification{}).
		Where("id = ? and user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	var count int64

	err := r.DB.WithContext(ctx).Model(&domain.Notification{}).
		Where("user_id = ? and is_read = false", userID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
