// File: services/booking/booking.go
package booking

import (
	"errors"

	appointmentRepo "dochouse/database/repository/appointment"
	"dochouse/models"
	"dochouse/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookingService manages appointments.
type BookingService interface {
	// ListByEmail returns a user's appointments, ascending by date.
	ListByEmail(email string) ([]models.Appointment, error)
	Create(appointment *models.Appointment) (primitive.ObjectID, error)
	Delete(id string) error
	// AttachPayment marks an appointment with its payment outcome.
	AttachPayment(id string, payment *models.AppointmentPayment) error
}

// DefaultBookingService is the production BookingService.
type DefaultBookingService struct {
	Repo appointmentRepo.AppointmentRepository
}

func (s *DefaultBookingService) ListByEmail(email string) ([]models.Appointment, error) {
	return s.Repo.GetByEmail(email)
}

func (s *DefaultBookingService) Create(appointment *models.Appointment) (primitive.ObjectID, error) {
	return s.Repo.Create(appointment)
}

func (s *DefaultBookingService) Delete(id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.NewError(utils.ErrBadRequest, "invalid appointment id")
	}
	if err := s.Repo.Delete(oid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return utils.NewError(utils.ErrNotFound, "appointment not found")
		}
		return err
	}
	return nil
}

func (s *DefaultBookingService) AttachPayment(id string, payment *models.AppointmentPayment) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.NewError(utils.ErrBadRequest, "invalid appointment id")
	}
	if err := s.Repo.AttachPayment(oid, payment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return utils.NewError(utils.ErrNotFound, "appointment not found")
		}
		return err
	}
	return nil
}
