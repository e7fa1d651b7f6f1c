// Package appointmentRepo persists booked appointments.
package appointmentRepo

import (
	"dochouse/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AppointmentRepository defines the persistence operations for appointments.
type AppointmentRepository interface {
	// GetByEmail returns a user's appointments sorted ascending by date.
	GetByEmail(email string) ([]models.Appointment, error)
	GetAll() ([]models.Appointment, error)
	Create(appointment *models.Appointment) (primitive.ObjectID, error)
	Delete(id primitive.ObjectID) error
	// AttachPayment sets the payment sub-document on an appointment.
	AttachPayment(id primitive.ObjectID, payment *models.AppointmentPayment) error
	Count() (int64, error)
	CountByEmail(email string) (int64, error)
}
