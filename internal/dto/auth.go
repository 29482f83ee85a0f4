package dto

// CheckAccessRequest asks whether an email may attempt to log in at all.
type CheckAccessRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// CheckAccessResponse answers the pre-authentication allowlist check.
type CheckAccessResponse struct {
	Allowed bool `json:"allowed"`
}

// RegisterRequest creates a local-password account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest authenticates a local-password account.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the session tokens for a successful login.
type LoginResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	User         UserResponse `json:"user"`
}

// RefreshRequest exchanges a refresh token for a new access token.
type RefreshRequest struct {
	UserID       string `json:"userID" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RefreshTokenResponse carries the renewed access token.
type RefreshTokenResponse struct {
	Token string `json:"token"`
}

// GoogleCallbackRequest carries the OAuth authorization code back to the server.
type GoogleCallbackRequest struct {
	Code  string `form:"code" binding:"required"`
	State string `form:"state" binding:"required"`
}
