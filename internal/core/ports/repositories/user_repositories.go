package repositories

import (
	"context"
	"time"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
)

// UserReader defines read operations for the account directory.
type UserReader interface {
	// FindUserByID retrieves a directory entry by account id.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a directory entry by email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUsers retrieves a paginated list of directory entries.
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)

	// CountUsers returns the number of non-deleted directory entries.
	CountUsers(ctx context.Context) (int, error)
}

// UserWriter defines write operations for the account directory.
type UserWriter interface {
	// SaveUser persists a new directory entry.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates name and role of an existing entry.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateRefreshToken stores the hashed refresh token for a user.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiry time.Time) error

	// ClearRefreshToken removes the stored refresh token for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserLifecycleManager defines operations for terminating accounts.
type UserLifecycleManager interface {
	// MarkUserDeleted soft-deletes a directory entry. Ledger rows that
	// reference the user are kept.
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error
}

// AllowlistRepository answers and manages the pre-authentication email gate.
type AllowlistRepository interface {
	// IsEmailAllowed reports whether the address may attempt to log in.
	IsEmailAllowed(ctx context.Context, email string) (bool, error)

	// AddAllowedEmail adds an address to the allowlist.
	AddAllowedEmail(ctx context.Context, entry domain.AllowedEmail) error
}

// LoginHistoryRepository records and lists successful authentications.
type LoginHistoryRepository interface {
	// SaveLoginEvent appends one login history row.
	SaveLoginEvent(ctx context.Context, event domain.LoginEvent) error

	// FindLoginEvents lists the most recent login events, newest first.
	FindLoginEvents(ctx context.Context, limit int) ([]domain.LoginEvent, error)
}

// UserRepositoryFacade combines all directory repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserLifecycleManager
	AllowlistRepository
	LoginHistoryRepository
}
