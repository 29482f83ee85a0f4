package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/apperrors"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	portssvc "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/services"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/dto"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/middleware"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/platform/config"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	services *portssvc.ServiceContainer
	cfg      *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(services *portssvc.ServiceContainer, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		services: services,
		cfg:      cfg,
	}
}

// registerAuthRoutes sets up the public authentication routes. Login and
// registration share an IP rate limit.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services, cfg)

	// 5 attempts per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	limitMiddleware := middleware.RateLimit(limiter.New(store, rate))

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/check-access", h.CheckAccess)
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/register", limitMiddleware, h.Register)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
		auth.GET("/google/login", h.GoogleLogin)
		auth.GET("/google/callback", h.GoogleCallback)
	}
}

// CheckAccess godoc
// @Summary Check login eligibility
// @Description Answers whether an email address is on the login allowlist, before any credentials are exchanged.
// @Tags auth
// @Accept json
// @Produce json
// @Param check body dto.CheckAccessRequest true "Email to check"
// @Success 200 {object} dto.CheckAccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/check-access [post]
func (h *AuthHandler) CheckAccess(c *gin.Context) {
	var req dto.CheckAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	allowed, err := h.services.AccessGate.CheckEmailAllowed(c.Request.Context(), req.Email)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Allowlist check failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to check access"})
		return
	}

	c.JSON(http.StatusOK, dto.CheckAccessResponse{Allowed: allowed})
}

// Register godoc
// @Summary Register a new account
// @Description Creates a local-password account for an allowlisted email. The first account becomes admin; later accounts start as viewer.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Email not on the allowlist"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	allowed, err := h.services.AccessGate.CheckEmailAllowed(c.Request.Context(), req.Email)
	if err != nil {
		logger.Error("Allowlist check failed during registration", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register"})
		return
	}
	if !allowed {
		respondError(c, apperrors.ErrAccessDenied)
		return
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register"})
		return
	}

	user, err := h.services.User.ProvisionUser(c.Request.Context(), req.Email, req.Name, passwordHash, domain.ProviderLocal, "")
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			respondError(c, err)
			return
		}
		logger.Error("Failed to provision user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// Login godoc
// @Summary Log in with email and password
// @Description Authenticates a local-password account and returns an access token and refresh token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Email not on the allowlist"
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	allowed, err := h.services.AccessGate.CheckEmailAllowed(c.Request.Context(), req.Email)
	if err != nil {
		logger.Error("Allowlist check failed during login", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log in"})
		return
	}
	if !allowed {
		respondError(c, apperrors.ErrAccessDenied)
		return
	}

	user, err := h.services.User.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
		return
	}

	h.issueTokens(c, user)
}

// issueTokens generates the access and refresh token pair, persists the
// refresh token hash and writes the login response.
func (h *AuthHandler) issueTokens(c *gin.Context, user *domain.User) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ctx := c.Request.Context()

	accessToken, _, err := h.services.Token.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	refreshToken, refreshExpiry, err := h.services.Token.GenerateRefreshToken(ctx, user)
	if err != nil {
		logger.Error("Failed to generate refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}
	if err := h.services.User.UpdateRefreshToken(ctx, user.UserID, utils.HashRefreshToken(refreshToken), refreshExpiry); err != nil {
		logger.Error("Failed to store refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	_ = h.services.LoginHistory.RecordLogin(ctx, user, c.ClientIP(), c.Request.UserAgent())

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		User:         dto.ToUserResponse(user),
	})
}

// Refresh godoc
// @Summary Refresh an access token
// @Description Exchanges a valid refresh token for a new access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.services.Token.ValidateRefreshToken(c.Request.Context(), req.UserID, req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	accessToken, _, err := h.services.Token.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.RefreshTokenResponse{Token: accessToken})
}

// Logout godoc
// @Summary Log out
// @Description Invalidates the account's refresh token.
// @Tags auth
// @Accept json
// @Produce json
// @Param logout body dto.RefreshRequest true "User and refresh token"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	if _, err := h.services.Token.ValidateRefreshToken(c.Request.Context(), req.UserID, req.RefreshToken); err != nil {
		respondError(c, err)
		return
	}
	if err := h.services.User.ClearRefreshToken(c.Request.Context(), req.UserID); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to clear refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log out"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GoogleLogin godoc
// @Summary Start Google sign-in
// @Description Redirects the client to the Google consent screen.
// @Tags auth
// @Produce json
// @Success 307
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	state, err := h.services.GoogleOAuth.GenerateStateString(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google sign-in"})
		return
	}

	c.SetCookie("oauth_state", state, int(10*time.Minute/time.Second), "/", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.services.GoogleOAuth.GetLoginURL(c.Request.Context(), state))
}

// GoogleCallback godoc
// @Summary Complete Google sign-in
// @Description Validates the OAuth callback, provisions the account on first sign-in and returns session tokens.
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "CSRF state"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Email not on the allowlist"
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GoogleCallbackRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid callback parameters"})
		return
	}

	storedState, err := c.Cookie("oauth_state")
	if err != nil || storedState == "" || storedState != req.State {
		logger.Warn("OAuth state mismatch")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}

	providerUserID, email, name, err := h.services.GoogleOAuth.ExchangeCode(c.Request.Context(), req.Code)
	if err != nil {
		logger.Warn("Google code exchange failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google sign-in failed"})
		return
	}

	allowed, err := h.services.AccessGate.CheckEmailAllowed(c.Request.Context(), email)
	if err != nil {
		logger.Error("Allowlist check failed during Google sign-in", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log in"})
		return
	}
	if !allowed {
		respondError(c, apperrors.ErrAccessDenied)
		return
	}

	user, err := h.services.User.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to look up Google account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log in"})
			return
		}
		user, err = h.services.User.ProvisionUser(c.Request.Context(), email, name, "", domain.ProviderGoogle, providerUserID)
		if err != nil {
			logger.Error("Failed to provision Google account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log in"})
			return
		}
	}

	h.issueTokens(c, user)
}
