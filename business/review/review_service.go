package review

import (
	"context"
	"fmt"

	"kantinkampus/domain"
	"kantinkampus/pkg/logger"
)

// ReviewRepository contract interface
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	FindByMenu(ctx context.Context, menuID uint) ([]domain.Review, error)
}

// MenuRepository contract interface
type MenuRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Menu, error)
}

type reviewService struct {
	reviewRepo ReviewRepository
	menuRepo   MenuRepository
}

func NewReviewService(reviewRepo ReviewRepository, menuRepo MenuRepository) *reviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		menuRepo:   menuRepo,
	}
}

// AddReview appends a review; there is no edit or delete path.
func (s *reviewService) AddReview(ctx context.Context, buyerID, menuID uint, orderID *uint, rating int, comment string) (domain.Review, error) {
	if rating < 1 || rating > 5 {
		return domain.Review{}, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}

	if _, err := s.menuRepo.FindByID(ctx, menuID); err != nil {
		return domain.Review{}, err
	}

	review := domain.Review{
		BuyerID: buyerID,
		MenuID:  menuID,
		OrderID: orderID,
		Rating:  rating,
		Comment: comment,
	}

	if err := s.reviewRepo.Create(ctx, &review); err != nil {
		logger.Error("Failed to add review", err)
		return domain.Review{}, err
	}

	return review, nil
}

func (s *reviewService) GetMenuReviews(ctx context.Context, menuID uint) ([]domain.Review, error) {
	return s.reviewRepo.FindByMenu(ctx, menuID)
}
