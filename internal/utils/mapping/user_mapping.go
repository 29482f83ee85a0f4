package mapping

import (
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/models"
)

// ToModelUser converts a domain user to its database model.
func ToModelUser(d domain.User) models.User {
	var role *string
	if d.Role != nil {
		r := string(*d.Role)
		role = &r
	}
	return models.User{
		UserID:                 d.UserID,
		Email:                  d.Email,
		Name:                   d.Name,
		Role:                   role,
		AuthProvider:           string(d.AuthProvider),
		ProviderUserID:         d.ProviderUserID,
		PasswordHash:           d.PasswordHash,
		AuditFields:            ToModelAuditFields(d.AuditFields),
		RefreshTokenHash:       d.RefreshTokenHash,
		RefreshTokenExpiryTime: d.RefreshTokenExpiryTime,
		DeletedAt:              d.DeletedAt,
	}
}

// ToDomainUser converts a database model user to its domain form.
func ToDomainUser(m models.User) domain.User {
	var role *domain.Role
	if m.Role != nil {
		r := domain.Role(*m.Role)
		role = &r
	}
	return domain.User{
		UserID:                 m.UserID,
		Email:                  m.Email,
		Name:                   m.Name,
		Role:                   role,
		AuthProvider:           domain.AuthProvider(m.AuthProvider),
		ProviderUserID:         m.ProviderUserID,
		PasswordHash:           m.PasswordHash,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
		RefreshTokenHash:       m.RefreshTokenHash,
		RefreshTokenExpiryTime: m.RefreshTokenExpiryTime,
		DeletedAt:              m.DeletedAt,
	}
}

// ToDomainUserSlice converts a slice of model users.
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}

// ToDomainLoginEvent converts a login history row to its domain form.
func ToDomainLoginEvent(m models.LoginEvent) domain.LoginEvent {
	return domain.LoginEvent{
		ID:        m.ID,
		UserID:    m.UserID,
		Email:     m.Email,
		Name:      m.Name,
		LoginAt:   m.LoginAt,
		IPAddress: m.IPAddress,
		UserAgent: m.UserAgent,
	}
}
