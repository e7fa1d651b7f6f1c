// handlers/appointment.go
package handlers

import (
	"net/http"

	"dochouse/models"
	"dochouse/services/booking"
	"dochouse/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves the appointment endpoints.
type AppointmentHandler struct {
	Bookings booking.BookingService
}

// NewAppointmentHandler creates an AppointmentHandler.
func NewAppointmentHandler(bookings booking.BookingService) *AppointmentHandler {
	return &AppointmentHandler{Bookings: bookings}
}

// ListAppointmentsHandler handles GET /appointments?email=. Callers
// may only list their own appointments.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.JSONError(c, utils.ErrBadRequest, "email query parameter is required")
		return
	}
	if email != c.GetString("email") {
		utils.JSONError(c, utils.ErrForbidden, "email does not match the authenticated identity")
		return
	}

	appointments, err := h.Bookings.ListByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Failed to list appointments", zap.String("email", email), zap.Error(err))
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// CreateAppointmentHandler handles POST /appointments.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		utils.JSONError(c, utils.ErrBadRequest, err.Error())
		return
	}

	id, err := h.Bookings.Create(&appointment)
	if err != nil {
		utils.GetLogger().Error("Failed to create appointment", zap.Error(err))
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id.Hex()})
}

// DeleteAppointmentHandler handles DELETE /appointments/:id.
func (h *AppointmentHandler) DeleteAppointmentHandler(c *gin.Context) {
	if err := h.Bookings.Delete(c.Param("id")); err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": 1})
}

// AttachPaymentHandler handles PATCH /appointments/:id, attaching the
// payment sub-document after checkout.
func (h *AppointmentHandler) AttachPaymentHandler(c *gin.Context) {
	var payment models.AppointmentPayment
	if err := c.ShouldBindJSON(&payment); err != nil {
		utils.JSONError(c, utils.ErrBadRequest, err.Error())
		return
	}

	if err := h.Bookings.AttachPayment(c.Param("id"), &payment); err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": 1})
}
