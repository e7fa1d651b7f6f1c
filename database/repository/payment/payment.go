// Package paymentRepo persists completed payment records.
package paymentRepo

import (
	"dochouse/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentRepository defines the persistence operations for payments.
type PaymentRepository interface {
	GetByEmail(email string) ([]models.Payment, error)
	Create(payment *models.Payment) (primitive.ObjectID, error)
	CountByEmail(email string) (int64, error)
}
