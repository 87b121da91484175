package service

import (
	"context"
	"errors"
	"fmt"

	"badminton-directory-backend/internal/database/models"
	apperrors "badminton-directory-backend/internal/errors"
	"badminton-directory-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for user profiles
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
}

// Ensure UserService implements UserServiceInterface
var _ UserServiceInterface = (*UserService)(nil)

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
	}
}

// RegisterProfileRequest represents the public profile of the calling user
type RegisterProfileRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=50"`
	DisplayName string `json:"display_name,omitempty" validate:"max=100"`
	AvatarURL   string `json:"avatar_url,omitempty" validate:"omitempty,url,max=500"`
}

// RegisterProfile creates the profile of the token subject userID
func (s *UserService) RegisterProfile(ctx context.Context, userID uuid.UUID, req *RegisterProfileRequest) (*UserProfileResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, userID); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if _, err := s.repo.GetByUsername(ctx, req.Username); err == nil {
		return nil, apperrors.ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	}

	user := &models.User{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
	}
	user.ID = userID
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return toUserProfileResponse(user), nil
}

// GetProfile retrieves a user profile by ID
func (s *UserService) GetProfile(ctx context.Context, id uuid.UUID) (*UserProfileResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return toUserProfileResponse(user), nil
}
