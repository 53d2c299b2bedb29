package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/morada/morada/internal/app/models"
	"github.com/morada/morada/internal/app/models/dto"
	"github.com/morada/morada/internal/app/repositories"
	"github.com/morada/morada/internal/pkg/apperrors"
	"github.com/morada/morada/internal/pkg/auth"
	"github.com/morada/morada/internal/pkg/helpers"
	"github.com/morada/morada/internal/pkg/validation"
)

// AuthService handles registration, login and token lifecycle operations.
type AuthService struct {
	userRepo   repositories.IUserRepository
	tokenRepo  *repositories.TokenRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	tokenRepo *repositories.TokenRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (s *AuthService) validateRegistration(req *dto.RegisterRequest) error {
	nameRule := func(value string) bool {
		return validation.NewStringValidation(value).
			WithMinLength(validation.NameMinLength).
			WithMaxLength(validation.NameMaxLength).
			Validate()
	}
	if !nameRule(req.FirstName) || !nameRule(req.LastName) {
		return apperrors.NewValidationError(fmt.Sprintf("names must be between %d and %d characters",
			validation.NameMinLength, validation.NameMaxLength))
	}
	if !validation.CompiledPatterns.Email.MatchString(req.Email) {
		return apperrors.NewValidationError("invalid email format")
	}
	if !validation.ValidatePassword(req.Password) {
		return apperrors.NewValidationError(fmt.Sprintf("password must be at least %d characters", validation.PasswordMinLength))
	}
	if !validation.CompiledPatterns.NationalID.MatchString(req.NationalID) {
		return apperrors.NewValidationError("invalid national id format")
	}
	if !validation.CompiledPatterns.Phone.MatchString(req.Phone) {
		return apperrors.NewValidationError("invalid phone format")
	}
	if _, ok := parseRole(req.Role); !ok {
		return apperrors.NewValidationError("role must be RESIDENT or ADMINISTRATOR")
	}
	return nil
}

func parseRole(s string) (models.RoleType, bool) {
	switch s {
	case string(models.RoleResident):
		return models.RoleResident, true
	case string(models.RoleAdministrator):
		return models.RoleAdministrator, true
	}
	return "", false
}

// Register creates a new account with a hashed password.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	birthDate, err := helpers.ParseDateUTC(req.BirthDate)
	if err != nil {
		return nil, apperrors.NewValidationError("birthDate must be formatted as YYYY-MM-DD")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role, _ := parseRole(req.Role)
	user := &models.User{
		Email:      req.Email,
		Password:   hashed,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		NationalID: req.NationalID,
		BirthDate:  birthDate,
		Phone:      req.Phone,
		Role:       role,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		s.logger.Error().Err(err).Str("email", req.Email).Msg("Failed to create user")
		return nil, err
	}

	s.logger.Info().Int64("userID", id).Str("role", req.Role).Msg("User registered")

	return &dto.RegisterResponse{
		UserID: id,
		Email:  req.Email,
		Role:   req.Role,
	}, nil
}

// Login verifies credentials and issues a token pair. A wrong password
// returns ErrInvalidCredentials and no tokens.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to update last login")
	}

	s.logger.Info().Int64("userID", user.ID).Msg("User logged in")
	return tokens, nil
}

// RefreshToken rotates a valid refresh token into a new token pair.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	stored, err := s.tokenRepo.Find(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if stored.Revoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.FindByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	// Rotation: the used token is revoked before a new one is issued
	if err := s.tokenRepo.Revoke(ctx, refreshToken); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes a refresh token.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	err := s.tokenRepo.Revoke(ctx, refreshToken)
	if err != nil && !errors.Is(err, apperrors.ErrTokenNotFound) {
		return err
	}
	return nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to generate token pair")
		return nil, err
	}

	if err := s.tokenRepo.Store(ctx, user.ID, refreshToken, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	userResp := mapUserResponse(user)
	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
		TokenType:        "Bearer",
		User:             &userResp,
	}, nil
}

// GetProfile retrieves the authenticated user's profile.
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := mapUserResponse(user)
	return &resp, nil
}

// UpdateProfile updates the mutable fields of the authenticated user.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	firstName := user.FirstName
	if req.FirstName != "" {
		firstName = req.FirstName
	}
	lastName := user.LastName
	if req.LastName != "" {
		lastName = req.LastName
	}
	phone := user.Phone
	if req.Phone != "" {
		if !validation.CompiledPatterns.Phone.MatchString(req.Phone) {
			return nil, apperrors.NewValidationError("invalid phone format")
		}
		phone = req.Phone
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, firstName, lastName, phone); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}

func mapUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		NationalID: user.NationalID,
		BirthDate:  user.BirthDate,
		Phone:      user.Phone,
		Role:       string(user.Role),
		CreatedAt:  user.CreatedAt,
	}
}

func mapUserBasic(user *models.User) *dto.UserBasicResponse {
	if user == nil {
		return nil
	}
	return &dto.UserBasicResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}
