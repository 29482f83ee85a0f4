package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/domain"
	portssvc "github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/core/ports/services"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/dto"
	"github.com/Royfinnest254/FRIRNDS-BAR-MANAGEMENT/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to the account directory.
type userHandler struct {
	userService  portssvc.UserSvcFacade
	accessGate   portssvc.AccessGateSvc
	loginHistory portssvc.LoginHistorySvc
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade, ag portssvc.AccessGateSvc, lh portssvc.LoginHistorySvc) *userHandler {
	return &userHandler{
		userService:  us,
		accessGate:   ag,
		loginHistory: lh,
	}
}

// registerUserRoutes registers all directory routes.
func registerUserRoutes(rg *gin.RouterGroup, us portssvc.UserSvcFacade, ag portssvc.AccessGateSvc, lh portssvc.LoginHistorySvc) {
	h := newUserHandler(us, ag, lh)

	rg.GET("/me", h.me)

	users := rg.Group("/users")
	{
		users.GET("", h.listUsers)
		users.PUT("/:id", h.updateUser)
		users.DELETE("/:id", h.deleteUser)
	}

	admin := rg.Group("/admin")
	{
		admin.GET("/login-history", h.listLoginHistory)
		admin.POST("/allowed-emails", h.allowEmail)
	}
}

// me godoc
// @Summary Get own account
// @Description Returns the authenticated account including its resolved role.
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *userHandler) me(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// listUsers godoc
// @Summary List accounts
// @Description Lists directory entries. Admin only.
// @Tags users
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListUsersResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	// Listing the directory is an admin concern.
	if _, err := h.userService.AuthorizeAction(c.Request.Context(), userID, domain.ActionManageUsers); err != nil {
		respondError(c, err)
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list users", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list users"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

// updateUser godoc
// @Summary Update an account
// @Description Changes an account's name and/or role. Admin only.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *userHandler) updateUser(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// deleteUser godoc
// @Summary Delete an account
// @Description Soft-deletes an account. Admin only; self-deletion is rejected.
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// listLoginHistory godoc
// @Summary List login history
// @Description Lists recent successful logins, newest first. Admin only.
// @Tags admin
// @Produce json
// @Param limit query int false "Max events" default(100)
// @Success 200 {array} dto.LoginEventResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/login-history [get]
func (h *userHandler) listLoginHistory(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	limit := 100
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "100")); err == nil && v > 0 {
		limit = v
	}

	events, err := h.loginHistory.ListLoginHistory(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.LoginEventResponse, len(events))
	for i, e := range events {
		out[i] = dto.ToLoginEventResponse(e)
	}
	c.JSON(http.StatusOK, out)
}

// allowEmail godoc
// @Summary Add an allowlist entry
// @Description Adds an email to the pre-authentication allowlist. Admin only.
// @Tags admin
// @Accept json
// @Produce json
// @Param entry body dto.CheckAccessRequest true "Email to allow"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/allowed-emails [post]
func (h *userHandler) allowEmail(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CheckAccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.accessGate.AllowEmail(c.Request.Context(), userID, req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
