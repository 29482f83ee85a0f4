package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/apperrors"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	portsrepo "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/repositories"
	portssvc "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/services"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/middleware"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/platform/config"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// tokenService implements the TokenSvcFacade for JWT and refresh tokens.
type tokenService struct {
	cfg         *config.Config
	userService portssvc.UserSvcFacade
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:         cfg,
		userService: userService,
	}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

// GenerateRefreshToken creates a new opaque refresh token for the given user.
// The raw token goes to the client; only its hash is ever stored.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	rawRefreshToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiryTime := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	return rawRefreshToken, expiryTime, nil
}

// ValidateRefreshToken validates a presented refresh token against the stored
// hash and returns the account when valid.
func (s *tokenService) ValidateRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error) {
	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to retrieve user for refresh token validation: %w", err)
	}

	if user.RefreshTokenHash == "" || user.RefreshTokenExpiryTime == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if time.Now().After(*user.RefreshTokenExpiryTime) {
		return nil, apperrors.ErrRefreshTokenExpired
	}
	if !utils.CompareRefreshTokenHash(refreshToken, user.RefreshTokenHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}

// accessGateService answers the pre-authentication allowlist question.
type accessGateService struct {
	allowlistRepo portsrepo.AllowlistRepository
	userService   portssvc.UserSvcFacade
}

// NewAccessGateService creates a new accessGateService.
func NewAccessGateService(allowlistRepo portsrepo.AllowlistRepository, userService portssvc.UserSvcFacade) portssvc.AccessGateSvc {
	return &accessGateService{
		allowlistRepo: allowlistRepo,
		userService:   userService,
	}
}

// CheckEmailAllowed answers whether an address may attempt to log in at all.
// It is independent of whether an account exists yet.
func (s *accessGateService) CheckEmailAllowed(ctx context.Context, email string) (bool, error) {
	allowed, err := s.allowlistRepo.IsEmailAllowed(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to check allowlist: %w", err)
	}
	return allowed, nil
}

// AllowEmail adds an address to the allowlist. Admin only.
func (s *accessGateService) AllowEmail(ctx context.Context, requestingUserID, email string) error {
	if _, err := s.userService.AuthorizeAction(ctx, requestingUserID, domain.ActionManageUsers); err != nil {
		return err
	}
	return s.allowlistRepo.AddAllowedEmail(ctx, domain.AllowedEmail{
		Email:     email,
		AddedBy:   requestingUserID,
		CreatedAt: time.Now(),
	})
}

// googleOAuthService drives the Google sign-in code flow.
type googleOAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService creates a new googleOAuthService.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// GenerateStateString creates the CSRF state for the OAuth round trip.
func (s *googleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	return utils.GenerateSecureRandomString(16)
}

// GetLoginURL returns the Google consent URL for the given state.
func (s *googleOAuthService) GetLoginURL(ctx context.Context, state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// ExchangeCode exchanges the returned code, validates the ID token and yields
// the verified Google identity.
func (s *googleOAuthService) ExchangeCode(ctx context.Context, code string) (string, string, string, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return "", "", "", fmt.Errorf("id_token missing from token response: %w", apperrors.ErrUnauthorized)
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to validate ID token: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return "", "", "", fmt.Errorf("email claim missing from ID token: %w", apperrors.ErrUnauthorized)
	}

	return payload.Subject, email, name, nil
}

// loginHistoryService records and lists successful authentications.
type loginHistoryService struct {
	historyRepo portsrepo.LoginHistoryRepository
	userService portssvc.UserSvcFacade
}

// NewLoginHistoryService creates a new loginHistoryService.
func NewLoginHistoryService(historyRepo portsrepo.LoginHistoryRepository, userService portssvc.UserSvcFacade) portssvc.LoginHistorySvc {
	return &loginHistoryService{
		historyRepo: historyRepo,
		userService: userService,
	}
}

// RecordLogin appends a login event. Failure to record never blocks the
// login itself; it is logged and swallowed.
func (s *loginHistoryService) RecordLogin(ctx context.Context, user *domain.User, ipAddress, userAgent string) error {
	event := domain.LoginEvent{
		ID:        uuid.NewString(),
		UserID:    user.UserID,
		Email:     user.Email,
		Name:      user.Name,
		LoginAt:   time.Now(),
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
	if err := s.historyRepo.SaveLoginEvent(ctx, event); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to record login event",
			slog.String("user_id", user.UserID),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return nil
}

// ListLoginHistory lists recent logins, newest first. Admin only.
func (s *loginHistoryService) ListLoginHistory(ctx context.Context, requestingUserID string, limit int) ([]domain.LoginEvent, error) {
	if _, err := s.userService.AuthorizeAction(ctx, requestingUserID, domain.ActionManageUsers); err != nil {
		return nil, err
	}
	return s.historyRepo.FindLoginEvents(ctx, limit)
}
