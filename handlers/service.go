// handlers/service.go
package handlers

import (
	"net/http"

	"dochouse/services/catalog"
	"dochouse/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceHandler serves the service-catalog endpoints.
type ServiceHandler struct {
	Catalog catalog.CatalogService
}

// NewServiceHandler creates a ServiceHandler.
func NewServiceHandler(svc catalog.CatalogService) *ServiceHandler {
	return &ServiceHandler{Catalog: svc}
}

// ListServicesHandler handles GET /services. Each service's slots come
// back sorted ascending by start time.
func (h *ServiceHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Catalog.ListServices()
	if err != nil {
		utils.GetLogger().Error("Failed to list services", zap.Error(err))
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

type slotUpdateRequest struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	SlotLabel  string `json:"bookedSlotTime" binding:"required"`
	BookedDate string `json:"bookedDate" binding:"required"`
}

// UpdateSlotHandler handles PATCH /services/:action with action one of
// addDate or deleteDate. addDate targets the service by id, deleteDate
// by name.
func (h *ServiceHandler) UpdateSlotHandler(c *gin.Context) {
	var req slotUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ErrBadRequest, err.Error())
		return
	}

	var err error
	switch action := c.Param("action"); action {
	case "addDate":
		err = h.Catalog.AddBookedDate(req.ID, req.SlotLabel, req.BookedDate)
	case "deleteDate":
		err = h.Catalog.RemoveBookedDate(req.Name, req.SlotLabel, req.BookedDate)
	default:
		utils.JSONError(c, utils.ErrBadRequest, "unknown action: "+action)
		return
	}
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": 1})
}
