// handlers/dashboard.go
package handlers

import (
	"net/http"

	"dochouse/services/dashboard"
	"dochouse/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the dashboard aggregate endpoints.
type DashboardHandler struct {
	Stats dashboard.DashboardService
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(stats dashboard.DashboardService) *DashboardHandler {
	return &DashboardHandler{Stats: stats}
}

// UserHomeHandler handles GET /dashboard/userhome?email=.
func (h *DashboardHandler) UserHomeHandler(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.JSONError(c, utils.ErrBadRequest, "email query parameter is required")
		return
	}

	stats, err := h.Stats.UserHome(email)
	if err != nil {
		utils.GetLogger().Error("Failed to compute user dashboard", zap.String("email", email), zap.Error(err))
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AdminHomeHandler handles GET /dashboard/adminhome (admin only).
func (h *DashboardHandler) AdminHomeHandler(c *gin.Context) {
	stats, err := h.Stats.AdminHome()
	if err != nil {
		utils.GetLogger().Error("Failed to compute admin dashboard", zap.Error(err))
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
