package services

import (
	"context"
	"time"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
)

// AccessGateSvc is the pre-authentication allow-list check. It answers for a
// raw email string, independent of whether an account exists yet; a negative
// answer is "access denied", distinct from a later "bad credentials".
type AccessGateSvc interface {
	CheckEmailAllowed(ctx context.Context, email string) (bool, error)

	// AllowEmail adds an address to the allowlist. Admin only.
	AllowEmail(ctx context.Context, requestingUserID, email string) error
}

// TokenSvcFacade issues and validates session tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates an opaque refresh token and its expiry.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateRefreshToken checks a presented refresh token against the
	// stored hash and returns the account when valid.
	ValidateRefreshToken(ctx context.Context, userID, refreshToken string) (*domain.User, error)
}

// GoogleOAuthSvcFacade drives the Google sign-in code flow.
type GoogleOAuthSvcFacade interface {
	// GenerateStateString creates the CSRF state for the OAuth round trip.
	GenerateStateString(ctx context.Context) (string, error)

	// GetLoginURL returns the Google consent URL for the given state.
	GetLoginURL(ctx context.Context, state string) string

	// ExchangeCode validates the returned code and yields the verified
	// Google identity (subject id, email, display name).
	ExchangeCode(ctx context.Context, code string) (providerUserID, email, name string, err error)
}

// LoginHistorySvc records and lists successful authentications.
type LoginHistorySvc interface {
	RecordLogin(ctx context.Context, user *domain.User, ipAddress, userAgent string) error

	// ListLoginHistory lists recent logins, newest first. Admin only.
	ListLoginHistory(ctx context.Context, requestingUserID string, limit int) ([]domain.LoginEvent, error)
}
