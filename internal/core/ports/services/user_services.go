package services

import (
	"context"
	"time"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/dto"
)

// UserReaderSvc defines read operations on the account directory.
type UserReaderSvc interface {
	// GetUserByID retrieves a directory entry by account id.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a directory entry by email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves a paginated list of directory entries.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// RoleResolverSvc resolves an authenticated identity to exactly one role.
// Resolution failure surfaces as an error; it never defaults to a role.
type RoleResolverSvc interface {
	// ResolveRole returns apperrors.ErrProfileMissing when the identity has
	// no directory entry and apperrors.ErrRoleMissing when the entry has a
	// null role. Both are distinct from "not authenticated".
	ResolveRole(ctx context.Context, userID string) (domain.Role, error)

	// AuthorizeAction resolves the caller's role and checks it against the
	// static per-action minimum-role table. Deny is apperrors.ErrForbidden.
	AuthorizeAction(ctx context.Context, userID string, action domain.Action) (domain.Role, error)
}

// UserWriterSvc defines write operations on the account directory.
type UserWriterSvc interface {
	// ProvisionUser creates a directory entry. The first entry in an empty
	// directory is provisioned as admin; later entries start as viewer.
	ProvisionUser(ctx context.Context, email, name, passwordHash string, provider domain.AuthProvider, providerUserID string) (*domain.User, error)

	// UpdateUser applies an admin edit (name and/or role) to an account.
	UpdateUser(ctx context.Context, requestingUserID, targetUserID string, req dto.UpdateUserRequest) (*domain.User, error)

	// UpdateRefreshToken stores the hashed refresh token for a user.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiry time.Time) error

	// ClearRefreshToken clears the refresh token for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserLifecycleSvc defines account termination.
type UserLifecycleSvc interface {
	// DeleteUser soft-deletes the target account. Admin only.
	DeleteUser(ctx context.Context, requestingUserID, targetUserID string) error
}

// UserAuthSvc authenticates local-password accounts.
type UserAuthSvc interface {
	// AuthenticateUser verifies email+password and returns the account.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
}

// UserSvcFacade combines all directory service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	RoleResolverSvc
	UserWriterSvc
	UserLifecycleSvc
	UserAuthSvc
}
