package favorite

import (
	"context"

	"kantinkampus/domain"
	"kantinkampus/pkg/logger"
)

// FavoriteRepository contract interface
type FavoriteRepository interface {
	Exists(ctx context.Context, buyerID, menuID uint) (bool, error)
	Create(ctx context.Context, favorite *domain.Favorite) error
	Delete(ctx context.Context, buyerID, menuID uint) error
}

// MenuRepository contract interface
type MenuRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Menu, error)
	FindFavorites(ctx context.Context, buyerID uint) ([]domain.Menu, error)
}

type favoriteService struct {
	favoriteRepo FavoriteRepository
	menuRepo     MenuRepository
}

func NewFavoriteService(favoriteRepo FavoriteRepository, menuRepo MenuRepository) *favoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		menuRepo:     menuRepo,
	}
}

// Toggle flips the favorite state and reports the new state.
func (s *favoriteService) Toggle(ctx context.Context, buyerID, menuID uint) (bool, error) {
	if _, err := s.menuRepo.FindByID(ctx, menuID); err != nil {
		return false, err
	}

	exists, err := s.favoriteRepo.Exists(ctx, buyerID, menuID)
	if err != nil {
		return false, err
	}

	if exists {
		if err := s.favoriteRepo.Delete(ctx, buyerID, menuID); err != nil {
			logger.Error("Failed to remove favorite", err)
			return false, err
		}
		return false, nil
	}

	favorite := domain.Favorite{
		BuyerID: buyerID,
		MenuID:  menuID,
	}
	if err := s.favoriteRepo.Create(ctx, &favorite); err != nil {
		logger.Error("Failed to add favorite", err)
		return false, err
	}

	return true, nil
}

func (s *favoriteService) GetFavoriteMenus(ctx context.Context, buyerID uint) ([]domain.Menu, error) {
	return s.menuRepo.FindFavorites(ctx, buyerID)
}
