package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/uynm/backend/internal/app/models"
	"github.com/uynm/backend/internal/app/models/dto"
	"github.com/uynm/backend/internal/pkg/apperrors"
	"github.com/uynm/backend/internal/pkg/auth"
	"github.com/uynm/backend/internal/pkg/dberrors"
	"github.com/uynm/backend/internal/pkg/email"
	"github.com/uynm/backend/internal/pkg/logger"
	"github.com/uynm/backend/internal/pkg/validation"
)

const passwordResetTokenTTL = 1 * time.Hour

// UserStore is the account persistence surface the auth service needs
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id int64) error
	UpdatePassword(ctx context.Context, id int64, hashedPassword string) error
}

// TokenStore is the token persistence surface the auth service needs
type TokenStore interface {
	CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error
	GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, token string) error
	RevokeUserRefreshTokens(ctx context.Context, userID int64) error
	CreatePasswordResetToken(ctx context.Context, token *models.PasswordResetToken) error
	GetPasswordResetToken(ctx context.Context, token string) (*models.PasswordResetToken, error)
	MarkPasswordResetTokenUsed(ctx context.Context, id int64) error
}

// AuthService handles account registration and session management
type AuthService struct {
	userRepo        UserStore
	tokenRepo       TokenStore
	jwtService      *auth.JWTService
	emailSender     email.Sender
	frontendBaseURL string
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo UserStore, tokenRepo TokenStore, jwtService *auth.JWTService, emailSender email.Sender, frontendBaseURL string) *AuthService {
	return &AuthService{
		userRepo:        userRepo,
		tokenRepo:       tokenRepo,
		jwtService:      jwtService,
		emailSender:     emailSender,
		frontendBaseURL: frontendBaseURL,
	}
}

// Register creates a new account with the USER role
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    validation.NormalizeEmail(req.Email),
		Password: hashed,
		FullName: strings.TrimSpace(req.FullName),
		RoleType: models.RoleUser,
		IsActive: true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues a token pair. The refresh token is
// stored so it can be revoked on logout.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, validation.NormalizeEmail(req.Email))
	if err != nil {
		if err == apperrors.ErrUserNotFound {
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

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err := s.tokenRepo.CreateRefreshToken(ctx, &models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: s.jwtService.GetRefreshTokenExpiry(),
	}); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to update last login time")
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:           accessToken,
			TokenType:             "Bearer",
			ExpiresIn:             expiresIn,
			RefreshToken:          refreshToken,
			RefreshTokenExpiresIn: refreshExpiresIn,
		},
		User: dto.UserResponse{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
			Role:     string(user.RoleType),
		},
	}, nil
}

// Logout revokes the given refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.RevokeRefreshToken(ctx, refreshToken)
}

// RefreshTokens exchanges a valid refresh token for a fresh token pair. The
// old token is revoked so each refresh token works exactly once.
func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	stored, err := s.tokenRepo.GetRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if stored.Revoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetByID(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.tokenRepo.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	accessToken, newRefreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err := s.tokenRepo.CreateRefreshToken(ctx, &models.RefreshToken{
		UserID:    user.ID,
		Token:     newRefreshToken,
		ExpiresAt: s.jwtService.GetRefreshTokenExpiry(),
	}); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:           accessToken,
			TokenType:             "Bearer",
			ExpiresIn:             expiresIn,
			RefreshToken:          newRefreshToken,
			RefreshTokenExpiresIn: refreshExpiresIn,
		},
		User: dto.UserResponse{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
			Role:     string(user.RoleType),
		},
	}, nil
}

// RequestPasswordReset issues a reset token and mails the reset link. To
// avoid disclosing which addresses have accounts, an unknown email succeeds
// without sending anything.
func (s *AuthService) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.GetByEmail(ctx, validation.NormalizeEmail(emailAddr))
	if err != nil {
		if err == apperrors.ErrUserNotFound {
			return nil
		}
		return err
	}

	token := &models.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.New().String(),
		ExpiresAt: time.Now().Add(passwordResetTokenTTL),
	}
	if err := s.tokenRepo.CreatePasswordResetToken(ctx, token); err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.frontendBaseURL, token.Token)
	body := fmt.Sprintf(`<p>Hello %s,</p>
<p>We received a request to reset your password. Click the link below to choose a new one. The link expires in one hour.</p>
<p><a href="%s">Reset your password</a></p>
<p>If you did not request this, you can safely ignore this email.</p>`, user.FullName, resetLink)

	if _, err := s.emailSender.Send(user.Email, "Reset your password", body); err != nil {
		logger.Warn().Err(err).Str("email", user.Email).Msg("Failed to send password reset email")
	}

	return nil
}

// ConfirmPasswordReset consumes a reset token and sets the new password. All
// refresh tokens for the account are revoked so stolen sessions die with the
// old password.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	stored, err := s.tokenRepo.GetPasswordResetToken(ctx, token)
	if err != nil {
		return err
	}

	if stored.Used {
		return apperrors.ErrTokenInvalid
	}
	if time.Now().After(stored.ExpiresAt) {
		return apperrors.ErrTokenExpired
	}

	hashed, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, stored.UserID, hashed); err != nil {
		return err
	}
	if err := s.tokenRepo.MarkPasswordResetTokenUsed(ctx, stored.ID); err != nil {
		return err
	}
	if err := s.tokenRepo.RevokeUserRefreshTokens(ctx, stored.UserID); err != nil {
		return err
	}

	return nil
}
