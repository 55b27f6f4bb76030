package cart

import (
	"context"
	"errors"
	"fmt"

	"kantinkampus/domain"
	"kantinkampus/pkg/logger"
)

// CartRepository contract interface
type CartRepository interface {
	FindLine(ctx context.Context, buyerID, menuID uint) (domain.CartLine, error)
	FindLineByID(ctx context.Context, id uint) (domain.CartLine, error)
	Create(ctx context.Context, line *domain.CartLine) error
	UpdateQty(ctx context.Context, id uint, qty int, notes string) error
	DeleteLine(ctx context.Context, id uint) error
	Clear(ctx context.Context, buyerID uint) error
	FindItems(ctx context.Context, buyerID uint) ([]domain.CartItem, error)
	Count(ctx context.Context, buyerID uint) (int64, error)
}

// MenuRepository contract interface
type MenuRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Menu, error)
}

type cartService struct {
	cartRepo CartRepository
	menuRepo MenuRepository
}

func NewCartService(cartRepo CartRepository, menuRepo MenuRepository) *cartService {
	return &cartService{
		cartRepo: cartRepo,
		menuRepo: menuRepo,
	}
}

// AddToCart merges into an existing buyer+menu line instead of duplicating
// it; the cart stays unique per (buyer, menu).
func (s *cartService) AddToCart(ctx context.Context, buyerID, menuID uint, qty int, notes string) (domain.CartLine, error) {
	if qty <= 0 {
		return domain.CartLine{}, fmt.Errorf("%w: qty must be positive", domain.ErrValidation)
	}

	menu, err := s.menuRepo.FindByID(ctx, menuID)
	if err != nil {
		return domain.CartLine{}, err
	}

	if menu.Status != domain.MenuAvailable {
		return domain.CartLine{}, domain.ErrMenuUnavailable
	}

	existing, err := s.cartRepo.FindLine(ctx, buyerID, menuID)
	if err == nil {
		existing.Qty += qty
		if notes != "" {
			existing.Notes = notes
		}
		if err := s.cartRepo.UpdateQty(ctx, existing.ID, existing.Qty, notes); err != nil {
			logger.Error("Failed to merge cart line", err)
			return domain.CartLine{}, err
		}
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.CartLine{}, err
	}

	line := domain.CartLine{
		BuyerID: buyerID,
		MenuID:  menuID,
		Qty:     qty,
		Notes:   notes,
	}

	if err := s.cartRepo.Create(ctx, &line); err != nil {
		logger.Error("Failed to add cart line", err)
		return domain.CartLine{}, err
	}

	return line, nil
}

// GetCart returns the buyer's cart partitioned by stand in display order.
func (s *cartService) GetCart(ctx context.Context, buyerID uint) ([]domain.CartGroup, error) {
	items, err := s.cartRepo.FindItems(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	return domain.GroupCartByStand(items), nil
}

// UpdateQty sets a line's quantity; zero or below removes the line.
func (s *cartService) UpdateQty(ctx context.Context, buyerID, lineID uint, qty int) error {
	line, err := s.ownedLine(ctx, buyerID, lineID)
	if err != nil {
		return err
	}

	if qty <= 0 {
		return s.cartRepo.DeleteLine(ctx, line.ID)
	}

	return s.cartRepo.UpdateQty(ctx, line.ID, qty, "")
}

func (s *cartService) RemoveLine(ctx context.Context, buyerID, lineID uint) error {
	line, err := s.ownedLine(ctx, buyerID, lineID)
	if err != nil {
		return err
	}

	return s.cartRepo.DeleteLine(ctx, line.ID)
}

func (s *cartService) ClearCart(ctx context.Context, buyerID uint) error {
	return s.cartRepo.Clear(ctx, buyerID)
}

func (s *cartService) CartCount(ctx context.Context, buyerID uint) (int64, error) {
	return s.cartRepo.Count(ctx, buyerID)
}

func (s *cartService) ownedLine(ctx context.Context, buyerID, lineID uint) (domain.CartLine, error) {
	line, err := s.cartRepo.FindLineByID(ctx, lineID)
	if err != nil {
		return domain.CartLine{}, err
	}

	if line.BuyerID != buyerID {
		return domain.CartLine{}, fmt.Errorf("%w: cart line belongs to another buyer", domain.ErrForbidden)
	}

	return line, nil
}
