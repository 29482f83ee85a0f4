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
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/dto"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/middleware"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/utils"
	"github.com/google/uuid"
)

// UserService handles the account directory and role resolution.
type UserService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &UserService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return user, nil
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ResolveRole maps an authenticated identity to exactly one role, fresh from
// the directory on every call. Failures surface as errors so the caller sees
// access denied; there is no fallback role under any failure mode.
func (s *UserService) ResolveRole(ctx context.Context, userID string) (domain.Role, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Role resolution failed: no directory entry", slog.String("user_id", userID))
			return "", fmt.Errorf("user %s: %w", userID, apperrors.ErrProfileMissing)
		}
		return "", fmt.Errorf("failed to resolve role for user %s: %w", userID, err)
	}

	if user.Role == nil || !user.Role.IsValid() {
		logger.Warn("Role resolution failed: entry has no valid role", slog.String("user_id", userID))
		return "", fmt.Errorf("user %s: %w", userID, apperrors.ErrRoleMissing)
	}

	return *user.Role, nil
}

// AuthorizeAction resolves the caller's role and checks the static per-action
// minimum-role table. The resolved role is returned so callers can make
// further decisions without a second lookup.
func (s *UserService) AuthorizeAction(ctx context.Context, userID string, action domain.Action) (domain.Role, error) {
	role, err := s.ResolveRole(ctx, userID)
	if err != nil {
		return "", err
	}
	if !role.Authorizes(action) {
		middleware.GetLoggerFromCtx(ctx).Warn("Action denied",
			slog.String("user_id", userID),
			slog.String("role", string(role)),
			slog.String("action", string(action)),
		)
		return "", fmt.Errorf("role %s may not %s: %w", role, action, apperrors.ErrForbidden)
	}
	return role, nil
}

// ProvisionUser creates a directory entry. The first account in an empty
// directory becomes admin so the system is administrable from the start;
// every later account starts as viewer until an admin raises it.
func (s *UserService) ProvisionUser(ctx context.Context, email, name, passwordHash string, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	count, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users during provisioning: %w", err)
	}

	role := domain.RoleViewer
	if count == 0 {
		role = domain.RoleAdmin
		logger.Info("Provisioning first account as admin", slog.String("email", email))
	}

	now := time.Now()
	newUserID := uuid.NewString()

	user := domain.User{
		UserID:         newUserID,
		Email:          email,
		Name:           name,
		Role:           &role,
		AuthProvider:   provider,
		ProviderUserID: providerUserID,
		PasswordHash:   passwordHash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to provision user: %w", err)
	}

	return &user, nil
}

// UpdateUser applies an admin edit (name and/or role) to an account.
func (s *UserService) UpdateUser(ctx context.Context, requestingUserID, targetUserID string, req dto.UpdateUserRequest) (*domain.User, error) {
	if _, err := s.AuthorizeAction(ctx, requestingUserID, domain.ActionManageUsers); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, targetUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find user %s for update: %w", targetUserID, err)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("unknown role %q: %w", *req.Role, apperrors.ErrValidation)
		}
		user.Role = &role
	}

	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", targetUserID, err)
	}

	return user, nil
}

func (s *UserService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiry time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, expiry)
}

func (s *UserService) ClearRefreshToken(ctx context.Context, userID string) error {
	return s.userRepo.ClearRefreshToken(ctx, userID)
}

// DeleteUser soft-deletes the target account. Admin only; admins cannot
// delete themselves, so the directory always keeps at least one admin.
func (s *UserService) DeleteUser(ctx context.Context, requestingUserID, targetUserID string) error {
	if _, err := s.AuthorizeAction(ctx, requestingUserID, domain.ActionManageUsers); err != nil {
		return err
	}
	if requestingUserID == targetUserID {
		return fmt.Errorf("cannot delete own account: %w", apperrors.ErrValidation)
	}
	return s.userRepo.MarkUserDeleted(ctx, targetUserID, time.Now(), requestingUserID)
}

// AuthenticateUser verifies email+password for local accounts. Bad email and
// bad password both surface as ErrUnauthorized so responses do not reveal
// which accounts exist.
func (s *UserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if user.AuthProvider != domain.ProviderLocal || user.PasswordHash == "" {
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return user, nil
}
