package models

import "time"

// User is the database representation of a directory entry.
type User struct {
	UserID         string  `db:"user_id"`
	Email          string  `db:"email"`
	Name           string  `db:"name"`
	Role           *string `db:"role"`
	AuthProvider   string  `db:"auth_provider"`
	ProviderUserID string  `db:"provider_user_id"`
	PasswordHash   string  `db:"password_hash"`
	AuditFields
	RefreshTokenHash       string     `db:"refresh_token_hash"`
	RefreshTokenExpiryTime *time.Time `db:"refresh_token_expiry_time"`
	DeletedAt              *time.Time `db:"deleted_at"`
}

// AllowedEmail is the database representation of an allowlist entry.
type AllowedEmail struct {
	Email     string    `db:"email"`
	AddedBy   string    `db:"added_by"`
	CreatedAt time.Time `db:"created_at"`
}

// LoginEvent is the database representation of one login history row.
type LoginEvent struct {
	ID        string    `db:"login_id"`
	UserID    string    `db:"user_id"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	LoginAt   time.Time `db:"login_at"`
	IPAddress string    `db:"ip_address"`
	UserAgent string    `db:"user_agent"`
}
