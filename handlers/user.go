// handlers/user.go
package handlers

import (
	"net/http"

	"dochouse/models"
	"dochouse/services/account"
	"dochouse/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves the user-account endpoints.
type UserHandler struct {
	Accounts account.AccountService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(accounts account.AccountService) *UserHandler {
	return &UserHandler{Accounts: accounts}
}

// ListUsersHandler handles GET /users (admin only).
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.Accounts.ListUsers()
	if err != nil {
		utils.GetLogger().Error("Failed to list users", zap.Error(err))
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUserHandler handles POST /users. Registering an email that
// already exists yields a conflict, never a second record.
func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		utils.JSONError(c, utils.ErrBadRequest, err.Error())
		return
	}
	if user.Email == "" {
		utils.JSONError(c, utils.ErrBadRequest, "email is required")
		return
	}

	id, err := h.Accounts.CreateUser(&user)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id.Hex()})
}

// UpdateUserRoleHandler handles PATCH /users/:id (admin only).
func (h *UserHandler) UpdateUserRoleHandler(c *gin.Context) {
	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ErrBadRequest, err.Error())
		return
	}

	if err := h.Accounts.SetRole(c.Param("id"), req.Role); err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": 1})
}

// DeleteUserHandler handles DELETE /users/:id (admin only).
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	if err := h.Accounts.DeleteUser(c.Param("id")); err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": 1})
}

// CheckAdminHandler handles GET /users/admin/:email. The requester may
// only ask about their own email; unknown emails are not admins.
func (h *UserHandler) CheckAdminHandler(c *gin.Context) {
	email := c.Param("email")
	if email != c.GetString("email") {
		utils.JSONError(c, utils.ErrForbidden, "email does not match the authenticated identity")
		return
	}

	isAdmin, err := h.Accounts.IsAdmin(email)
	if err != nil {
		utils.GetLogger().Error("Failed to check admin role", zap.String("email", email), zap.Error(err))
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}
