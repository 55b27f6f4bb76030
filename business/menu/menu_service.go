package menu

import (
	"context"
	"fmt"

	"kantinkampus/domain"
	"kantinkampus/pkg/logger"
)

// MenuRepository contract interface
type MenuRepository interface {
	Create(ctx context.Context, menu *domain.Menu) error
	FindByID(ctx context.Context, id uint) (domain.Menu, error)
	FindByStand(ctx context.Context, standID uint) ([]domain.Menu, error)
	FindAvailable(ctx context.Context) ([]domain.Menu, error)
	Search(ctx context.Context, query string) ([]domain.Menu, error)
	Update(ctx context.Context, menu *domain.Menu) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	Delete(ctx context.Context, id uint) error
	ReferencedByOrders(ctx context.Context, id uint) (bool, error)
}

// StandRepository contract interface (ownership checks)
type StandRepository interface {
	FindBySeller(ctx context.Context, sellerID uint) (domain.Stand, error)
}

type menuService struct {
	menuRepo  MenuRepository
	standRepo StandRepository
}

func NewMenuService(menuRepo MenuRepository, standRepo StandRepository) *menuService {
	return &menuService{
		menuRepo:  menuRepo,
		standRepo: standRepo,
	}
}

type MenuInput struct {
	Name        string
	Price       int64
	Image       string
	Description string
	Category    string
	Status      string
}

func (s *menuService) AddMenu(ctx context.Context, sellerID uint, input MenuInput) (domain.Menu, error) {
	if input.Name == "" {
		return domain.Menu{}, fmt.Errorf("%w: menu name is required", domain.ErrValidation)
	}
	if input.Price <= 0 {
		return domain.Menu{}, fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	}

	stand, err := s.standRepo.FindBySeller(ctx, sellerID)
	if err != nil {
		return domain.Menu{}, err
	}

	menu := domain.Menu{
		StandID:     stand.ID,
		Name:        input.Name,
		Price:       input.Price,
		Image:       input.Image,
		Description: input.Description,
		Category:    input.Category,
		Status:      domain.MenuAvailable,
	}

	if err := s.menuRepo.Create(ctx, &menu); err != nil {
		logger.Error("Failed to add menu", err)
		return domain.Menu{}, err
	}

	return menu, nil
}

func (s *menuService) GetMenu(ctx context.Context, id uint) (domain.Menu, error) {
	return s.menuRepo.FindByID(ctx, id)
}

func (s *menuService) GetMenusByStand(ctx context.Context, standID uint) ([]domain.Menu, error) {
	return s.menuRepo.FindByStand(ctx, standID)
}

func (s *menuService) GetAvailableMenus(ctx context.Context) ([]domain.Menu, error) {
	return s.menuRepo.FindAvailable(ctx)
}

func (s *menuService) SearchMenus(ctx context.Context, query string) ([]domain.Menu, error) {
	return s.menuRepo.Search(ctx, query)
}

func (s *menuService) UpdateMenu(ctx context.Context, sellerID, menuID uint, input MenuInput) (domain.Menu, error) {
	menu, err := s.ownedMenu(ctx, sellerID, menuID)
	if err != nil {
		return domain.Menu{}, err
	}

	if input.Name != "" {
		menu.Name = input.Name
	}
	if input.Price > 0 {
		menu.Price = input.Price
	}
	if input.Image != "" {
		menu.Image = input.Image
	}
	if input.Description != "" {
		menu.Description = input.Description
	}
	if input.Category != "" {
		menu.Category = input.Category
	}
	if input.Status != "" {
		if input.Status != domain.MenuAvailable && input.Status != domain.MenuUnavailable {
			return domain.Menu{}, fmt.Errorf("%w: status must be available or unavailable", domain.ErrValidation)
		}
		menu.Status = input.Status
	}

	if err := s.menuRepo.Update(ctx, &menu); err != nil {
		logger.Error("Failed to update menu", err)
		return domain.Menu{}, err
	}

	return menu, nil
}

// DeleteMenu hard-deletes only when no order snapshots reference the menu;
// otherwise it is soft-disabled so order history keeps resolving.
func (s *menuService) DeleteMenu(ctx context.Context, sellerID, menuID uint) error {
	if _, err := s.ownedMenu(ctx, sellerID, menuID); err != nil {
		return err
	}

	referenced, err := s.menuRepo.ReferencedByOrders(ctx, menuID)
	if err != nil {
		return err
	}

	if referenced {
		return s.menuRepo.UpdateStatus(ctx, menuID, domain.MenuUnavailable)
	}

	return s.menuRepo.Delete(ctx, menuID)
}

func (s *menuService) ownedMenu(ctx context.Context, sellerID, menuID uint) (domain.Menu, error) {
	menu, err := s.menuRepo.FindByID(ctx, menuID)
	if err != nil {
		return domain.Menu{}, err
	}

	stand, err := s.standRepo.FindBySeller(ctx, sellerID)
	if err != nil {
		return domain.Menu{}, err
	}

	if menu.StandID != stand.ID {
		return domain.Menu{}, fmt.Errorf("%w: menu belongs to another stand", domain.ErrForbidden)
	}

	return menu, nil
}
