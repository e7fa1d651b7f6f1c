// handlers/payment.go
package handlers

import (
	"net/http"

	"dochouse/models"
	"dochouse/services/billing"
	"dochouse/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves the payment and payment-intent endpoints.
type PaymentHandler struct {
	Billing billing.BillingService
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(svc billing.BillingService) *PaymentHandler {
	return &PaymentHandler{Billing: svc}
}

// CreatePaymentIntentHandler handles POST /create-payment-intent.
// The price may arrive as a JSON number or a numeric string.
func (h *PaymentHandler) CreatePaymentIntentHandler(c *gin.Context) {
	var req struct {
		Price interface{} `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, utils.ErrBadRequest, err.Error())
		return
	}

	clientSecret, err := h.Billing.CreatePaymentIntent(req.Price)
	if err != nil {
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// ListPaymentsHandler handles GET /payments?email=. Callers may only
// list their own payments.
func (h *PaymentHandler) ListPaymentsHandler(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.JSONError(c, utils.ErrBadRequest, "email query parameter is required")
		return
	}
	if email != c.GetString("email") {
		utils.JSONError(c, utils.ErrForbidden, "email does not match the authenticated identity")
		return
	}

	payments, err := h.Billing.ListPayments(email)
	if err != nil {
		utils.GetLogger().Error("Failed to list payments", zap.String("email", email), zap.Error(err))
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// CreatePaymentHandler handles POST /payments, recording a confirmed
// charge.
func (h *PaymentHandler) CreatePaymentHandler(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		utils.JSONError(c, utils.ErrBadRequest, err.Error())
		return
	}

	id, err := h.Billing.RecordPayment(&payment)
	if err != nil {
		utils.GetLogger().Error("Failed to record payment", zap.Error(err))
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id.Hex()})
}
