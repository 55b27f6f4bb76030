package user

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"kantinkampus/domain"
	redisRepo "kantinkampus/internal/repository/redis"
	"kantinkampus/pkg/logger"
	"kantinkampus/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User) error
}

// TokenRepository contract interface (Redis session store)
type TokenRepository interface {
	StoreToken(ctx context.Context, userID, token string, data redisRepo.TokenData, ttl time.Duration) error
	ValidateToken(ctx context.Context, token string) (string, error)
	DeleteToken(ctx context.Context, userID, token string) error
}

type userService struct {
	userRepo  UserRepository
	tokenRepo TokenRepository
	validate  *validator.Validate
}

func NewUserService(userRepo UserRepository, tokenRepo TokenRepository, validate *validator.Validate) *userService {
	return &userService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		validate:  validate,
	}
}

var validBuyerTypes = map[string]bool{
	domain.BuyerTypeStudent: true,
	domain.BuyerTypeFaculty: true,
	domain.BuyerTypeStaff:   true,
}

func (s *userService) Register(ctx context.Context, user *domain.User) (domain.User, error) {
	if err := s.validate.Var(user.Email, "required,email"); err != nil {
		return domain.User{}, fmt.Errorf("%w: invalid email format", domain.ErrValidation)
	}

	if err := s.validate.Var(user.Password, "required,min=6"); err != nil {
		return domain.User{}, fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
	}

	if user.Role != domain.RoleSeller && user.Role != domain.RoleBuyer {
		return domain.User{}, fmt.Errorf("%w: role must be seller or buyer", domain.ErrValidation)
	}

	switch user.Role {
	case domain.RoleBuyer:
		if user.BuyerType == nil || !validBuyerTypes[*user.BuyerType] {
			return domain.User{}, fmt.Errorf("%w: buyer_type must be student, faculty or staff", domain.ErrValidation)
		}
	case domain.RoleSeller:
		// Sellers carry a business license number and no buyer type.
		user.BuyerType = nil
	}

	existing, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err == nil && existing.ID > 0 {
		logger.Warn("Registration with existing email", "email", user.Email)
		return domain.User{}, domain.ErrDuplicateEmail
	}

	passwordHash, err := utils.HashPassword(user.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := domain.User{
		Email:     user.Email,
		Password:  passwordHash,
		FullName:  user.FullName,
		Role:      user.Role,
		Phone:     user.Phone,
		IDNumber:  user.IDNumber,
		BuyerType: user.BuyerType,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user", err)
		return domain.User{}, err
	}

	newUser.Password = ""
	return newUser, nil
}

func (s *userService) Login(ctx context.Context, email, password, ipAddress, userAgent string) (string, domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		logger.Warn("Login with unknown email", "email", email)
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	if !utils.CheckPassword(password, user.Password) {
		logger.Warn("Login with wrong password", "email", email)
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	userIDStr := strconv.FormatUint(uint64(user.ID), 10)
	token, err := utils.GenerateJWT(userIDStr, user.Role)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, fmt.Errorf("failed to generate token: %w", err)
	}

	now := time.Now()
	ttl := utils.TokenTTL()
	err = s.tokenRepo.StoreToken(ctx, userIDStr, token, redisRepo.TokenData{
		UserID:    userIDStr,
		Role:      user.Role,
		Token:     token,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}, ttl)
	if err != nil {
		logger.Error("Failed to store session token", err)
		return "", domain.User{}, err
	}

	user.Password = ""
	return token, user, nil
}

func (s *userService) Logout(ctx context.Context, userID uint, token string) error {
	userIDStr := strconv.FormatUint(uint64(userID), 10)

	if err := s.tokenRepo.DeleteToken(ctx, userIDStr, token); err != nil {
		logger.Error("Failed to delete session token", err)
		return err
	}

	return nil
}

func (s *userService) ValidateTokenFromRedis(ctx context.Context, token string) (string, error) {
	return s.tokenRepo.ValidateToken(ctx, token)
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	user.Password = ""
	return user, nil
}

// UpdateProfile changes the only mutable user fields: name and phone.
func (s *userService) UpdateProfile(ctx context.Context, id uint, fullName, phone string) (domain.User, error) {
	existing, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if fullName != "" {
		existing.FullName = fullName
	}
	if phone != "" {
		existing.Phone = phone
	}

	if err := s.userRepo.UpdateProfile(ctx, &existing); err != nil {
		logger.Error("Failed to update user profile", err)
		return domain.User{}, err
	}

	existing.Password = ""
	return existing, nil
}
