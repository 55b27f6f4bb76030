package notification

import (
	"context"

	"kantinkampus/domain"
	"kantinkampus/pkg/logger"
)

// NotificationRepository contract interface
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	FindUnread(ctx context.Context, userID uint) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, userID uint) error
	CountUnread(ctx context.Context, userID uint) (int64, error)
}

// UserRepository contract interface (email fan-out lookup)
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

// EmailRepository contract interface; nil disables the email channel.
type EmailRepository interface {
	SendEmail(toName, toEmail, subject, message string) error
}

type notificationService struct {
	notifRepo NotificationRepository
	userRepo  UserRepository
	emailRepo EmailRepository
}

func NewNotificationService(notifRepo NotificationRepository, userRepo UserRepository, emailRepo EmailRepository) *notificationService {
	return &notificationService{
		notifRepo: notifRepo,
		userRepo:  userRepo,
		emailRepo: emailRepo,
	}
}

// Notify records a notification row and, when an email channel is
// configured, mails a copy. Failures are logged only; notifications carry
// no delivery guarantee and must never fail the calling transition.
func (s *notificationService) Notify(ctx context.Context, userID uint, notifType, title, message string, orderID uint) {
	notification := domain.Notification{
		UserID:  userID,
		Type:    notifType,
		Title:   title,
		Message: message,
	}
	if orderID > 0 {
		notification.OrderID = &orderID
	}

	if err := s.notifRepo.Create(ctx, &notification); err != nil {
		logger.Error("Failed to create notification", err)
		return
	}

	if s.emailRepo == nil {
		return
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		logger.Error("Failed to resolve notification recipient", err)
		return
	}

	if err := s.emailRepo.SendEmail(user.FullName, user.Email, title, message); err != nil {
		logger.Warn("Failed to send notification email", err)
	}
}

func (s *notificationService) GetUnread(ctx context.Context, userID uint) ([]domain.Notification, error) {
	return s.notifRepo.FindUnread(ctx, userID)
}

func (s *notificationService) MarkRead(ctx context.Context, id, userID uint) error {
	return s.notifRepo.MarkRead(ctx, id, userID)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}
