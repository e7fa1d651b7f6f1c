// Package serviceRepo persists clinic services and their bookable slots.
package serviceRepo

import (
	"dochouse/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceRepository defines the persistence operations for services.
type ServiceRepository interface {
	GetAll() ([]models.Service, error)
	// AddBookedDate pushes a date onto the slot with the given label,
	// addressed by service id.
	AddBookedDate(id primitive.ObjectID, slotLabel, date string) error
	// RemoveBookedDate pulls a date from the slot with the given label,
	// addressed by service name.
	RemoveBookedDate(name, slotLabel, date string) error
}
