package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/apperrors"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	portsrepo "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/repositories"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/models"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const userColumns = `user_id, email, name, role, auth_provider, provider_user_id, password_hash,
		created_at, created_by, last_updated_at, last_updated_by,
		refresh_token_hash, refresh_token_expiry_time, deleted_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Email,
		&m.Name,
		&m.Role,
		&m.AuthProvider,
		&m.ProviderUserID,
		&m.PasswordHash,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiryTime,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
        INSERT INTO users (user_id, email, name, role, auth_provider, provider_user_id, password_hash,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.UserID,
		m.Email,
		m.Name,
		m.Role,
		m.AuthProvider,
		m.ProviderUserID,
		m.PasswordHash,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email %s already registered: %w", user.Email, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 AND deleted_at IS NULL;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	u := mapping.ToDomainUser(*m)
	return &u, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1) AND deleted_at IS NULL;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	u := mapping.ToDomainUser(*m)
	return &u, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + userColumns + `
        FROM users
        WHERE deleted_at IS NULL
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	ms := []models.User{}
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}

	return mapping.ToDomainUserSlice(ms), nil
}

func (r *PgxUserRepository) CountUsers(ctx context.Context) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE deleted_at IS NULL;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
        UPDATE users
        SET name = $1, role = $2, last_updated_at = $3, last_updated_by = $4
        WHERE user_id = $5 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Role,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update user query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiry time.Time) error {
	query := `
        UPDATE users
        SET refresh_token_hash = $1, refresh_token_expiry_time = $2
        WHERE user_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, refreshTokenHash, expiry, userID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	query := `
        UPDATE users
        SET refresh_token_hash = '', refresh_token_expiry_time = NULL
        WHERE user_id = $1 AND deleted_at IS NULL;
    `
	if _, err := r.Pool.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	query := `
        UPDATE users
        SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
        WHERE user_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, deletedBy, userID)
	if err != nil {
		return fmt.Errorf("failed to mark user as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) IsEmailAllowed(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM allowed_emails WHERE lower(email) = lower($1));`
	if err := r.Pool.QueryRow(ctx, query, strings.TrimSpace(email)).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check allowlist: %w", err)
	}
	return exists, nil
}

func (r *PgxUserRepository) AddAllowedEmail(ctx context.Context, entry domain.AllowedEmail) error {
	query := `
        INSERT INTO allowed_emails (email, added_by, created_at)
        VALUES (lower($1), $2, $3)
        ON CONFLICT (email) DO NOTHING;
    `
	if _, err := r.Pool.Exec(ctx, query, entry.Email, entry.AddedBy, entry.CreatedAt); err != nil {
		return fmt.Errorf("failed to add allowed email: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) SaveLoginEvent(ctx context.Context, event domain.LoginEvent) error {
	query := `
        INSERT INTO login_history (login_id, user_id, email, name, login_at, ip_address, user_agent)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.Pool.Exec(ctx, query,
		event.ID,
		event.UserID,
		event.Email,
		event.Name,
		event.LoginAt,
		event.IPAddress,
		event.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("failed to save login event: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindLoginEvents(ctx context.Context, limit int) ([]domain.LoginEvent, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	query := `
        SELECT login_id, user_id, email, name, login_at, ip_address, user_agent
        FROM login_history
        ORDER BY login_at DESC
        LIMIT $1;
    `
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query login history: %w", err)
	}
	defer rows.Close()

	events := []domain.LoginEvent{}
	for rows.Next() {
		var m models.LoginEvent
		err := rows.Scan(&m.ID, &m.UserID, &m.Email, &m.Name, &m.LoginAt, &m.IPAddress, &m.UserAgent)
		if err != nil {
			return nil, fmt.Errorf("failed to scan login history row: %w", err)
		}
		events = append(events, mapping.ToDomainLoginEvent(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating login history rows: %w", rows.Err())
	}
	return events, nil
}
