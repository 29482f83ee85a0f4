package dto

import (
	"time"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
)

// UserResponse is the outward shape of a directory entry.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      *string   `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain user to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	var role *string
	if u.Role != nil {
		r := string(*u.Role)
		role = &r
	}
	return UserResponse{
		UserID:    u.UserID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      role,
		CreatedAt: u.CreatedAt,
	}
}

// UpdateUserRequest defines the fields an admin may change on an account.
// Pointers distinguish omitted fields from zero values.
type UpdateUserRequest struct {
	Name *string `json:"name"`
	Role *string `json:"role" binding:"omitempty,oneof=admin staff viewer"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain users to the list DTO.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: out}
}

// LoginEventResponse is one login history row.
type LoginEventResponse struct {
	UserID    string    `json:"userID"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	LoginAt   time.Time `json:"loginAt"`
	IPAddress string    `json:"ipAddress"`
	UserAgent string    `json:"userAgent"`
}

// ToLoginEventResponse converts a domain login event to its response DTO.
func ToLoginEventResponse(e domain.LoginEvent) LoginEventResponse {
	return LoginEventResponse{
		UserID:    e.UserID,
		Email:     e.Email,
		Name:      e.Name,
		LoginAt:   e.LoginAt,
		IPAddress: e.IPAddress,
		UserAgent: e.UserAgent,
	}
}
