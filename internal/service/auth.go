package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ShivenPandit/Super-Mall-Web-App/internal/auth"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/domain"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/event"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/repository"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/session"
	"github.com/ShivenPandit/Super-Mall-Web-App/internal/validation"
	apperrors "github.com/ShivenPandit/Super-Mall-Web-App/pkg/errors"
)

// AuthService handles admin authentication: login, logout, session lookup,
// token refresh, and password changes.
type AuthService struct {
	repo     repository.AdminRepository
	jwt      *auth.JWTManager
	sessions *session.Store
	producer *event.Producer
	logger   *slog.Logger
}

// NewAuthService creates a new auth service.
func NewAuthService(repo repository.AdminRepository, jwt *auth.JWTManager, sessions *session.Store, producer *event.Producer, logger *slog.Logger) *AuthService {
	return &AuthService{
		repo:     repo,
		jwt:      jwt,
		sessions: sessions,
		producer: producer,
		logger:   logger,
	}
}

// LoginResult holds the tokens and account returned by a successful login.
type LoginResult struct {
	Admin        *domain.Admin `json:"admin"`
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
}

// Login verifies credentials and opens a session. Unknown emails and wrong
// passwords produce the same error so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	result := validation.ValidateLogin(validation.LoginInput{Email: email, Password: password})
	if !result.IsValid {
		return nil, apperrors.ValidationFailed(result.Errors)
	}

	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Unauthorized("invalid email or password")
		}
		return nil, fmt.Errorf("get admin by email: %w", err)
	}

	if !auth.CheckPassword(admin.PasswordHash, password) {
		return nil, apperrors.Unauthorized("invalid email or password")
	}

	accessToken, err := s.jwt.GenerateAccessToken(admin.ID, admin.Email)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := s.jwt.GenerateRefreshToken(admin.ID)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.sessions.Set(ctx, session.Marker{
		AdminID:   admin.ID,
		Email:     admin.Email,
		LoginTime: time.Now().UTC(),
	}); err != nil {
		s.logger.WarnContext(ctx, "failed to store session marker",
			slog.String("module", "auth"),
			slog.String("admin_id", admin.ID),
			slog.String("error", err.Error()),
		)
	}

	if err := s.producer.PublishAdminLoggedIn(ctx, admin.ID, admin.Email); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish admin.logged_in event",
			slog.String("module", "auth"),
			slog.String("admin_id", admin.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "admin logged in",
		slog.String("module", "auth"),
		slog.String("admin_id", admin.ID),
		slog.String("email", admin.Email),
	)

	return &LoginResult{
		Admin:        admin,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Logout removes the admin's session marker. Logging out twice is fine.
func (s *AuthService) Logout(ctx context.Context, adminID string) error {
	if err := s.sessions.Delete(ctx, adminID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	s.logger.InfoContext(ctx, "admin logged out",
		slog.String("module", "auth"),
		slog.String("admin_id", adminID),
	)

	return nil
}

// Session returns the active session marker for an admin.
func (s *AuthService) Session(ctx context.Context, adminID string) (*session.Marker, error) {
	marker, err := s.sessions.Get(ctx, adminID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Unauthorized("no active session")
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return marker, nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// session marker must still exist, so logout invalidates refresh tokens.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", apperrors.Unauthorized("invalid refresh token")
	}

	if _, err := s.sessions.Get(ctx, claims.AdminID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", apperrors.Unauthorized("session expired")
		}
		return "", fmt.Errorf("get session for refresh: %w", err)
	}

	admin, err := s.repo.GetByID(ctx, claims.AdminID)
	if err != nil {
		return "", fmt.Errorf("get admin for refresh: %w", err)
	}

	accessToken, err := s.jwt.GenerateAccessToken(admin.ID, admin.Email)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}

	return accessToken, nil
}

// ChangePassword verifies the current password and replaces it. The new
// password must pass the strength rules.
func (s *AuthService) ChangePassword(ctx context.Context, adminID, currentPassword, newPassword string) error {
	result := validation.ValidatePasswordStrength(newPassword)
	if !result.IsValid {
		return apperrors.ValidationFailed(result.Errors)
	}

	admin, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		return fmt.Errorf("get admin for password change: %w", err)
	}

	if !auth.CheckPassword(admin.PasswordHash, currentPassword) {
		return apperrors.Unauthorized("current password is incorrect")
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash new password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, adminID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	s.logger.InfoContext(ctx, "admin password changed",
		slog.String("module", "auth"),
		slog.String("admin_id", adminID),
	)

	return nil
}
