package stand

import (
	"context"
	"errors"
	"fmt"

	"kantinkampus/domain"
	"kantinkampus/pkg/logger"
)

// StandRepository contract interface
type StandRepository interface {
	Create(ctx context.Context, stand *domain.Stand) error
	FindByID(ctx context.Context, id uint) (domain.Stand, error)
	FindBySeller(ctx context.Context, sellerID uint) (domain.Stand, error)
	FindAll(ctx context.Context) ([]domain.Stand, error)
	Update(ctx context.Context, stand *domain.Stand) error
}

type standService struct {
	standRepo StandRepository
}

func NewStandService(standRepo StandRepository) *standService {
	return &standService{
		standRepo: standRepo,
	}
}

// CreateStand enforces the one-stand-per-seller policy before inserting.
func (s *standService) CreateStand(ctx context.Context, sellerID uint, name, description, image string) (domain.Stand, error) {
	if name == "" {
		return domain.Stand{}, fmt.Errorf("%w: stand name is required", domain.ErrValidation)
	}

	_, err := s.standRepo.FindBySeller(ctx, sellerID)
	if err == nil {
		logger.Warn("Seller attempted to create a second stand", "seller_id", sellerID)
		return domain.Stand{}, domain.ErrDuplicateStand
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Stand{}, err
	}

	stand := domain.Stand{
		SellerID:    sellerID,
		Name:        name,
		Description: description,
		Image:       image,
	}

	if err := s.standRepo.Create(ctx, &stand); err != nil {
		logger.Error("Failed to create stand", err)
		return domain.Stand{}, err
	}

	return stand, nil
}

func (s *standService) GetStand(ctx context.Context, id uint) (domain.Stand, error) {
	return s.standRepo.FindByID(ctx, id)
}

func (s *standService) GetStandBySeller(ctx context.Context, sellerID uint) (domain.Stand, error) {
	return s.standRepo.FindBySeller(ctx, sellerID)
}

func (s *standService) GetAllStands(ctx context.Context) ([]domain.Stand, error) {
	return s.standRepo.FindAll(ctx)
}

// UpdateStand updates the seller's own stand. Image is kept when empty.
func (s *standService) UpdateStand(ctx context.Context, sellerID uint, name, description, image string) (domain.Stand, error) {
	stand, err := s.standRepo.FindBySeller(ctx, sellerID)
	if err != nil {
		return domain.Stand{}, err
	}

	if name != "" {
		stand.Name = name
	}
	if description != "" {
		stand.Description = description
	}
	if image != "" {
		stand.Image = image
	}

	if err := s.standRepo.Update(ctx, &stand); err != nil {
		logger.Error("Failed to update stand", err)
		return domain.Stand{}, err
	}

	return stand, nil
}
