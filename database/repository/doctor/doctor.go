// Package doctorRepo persists doctor profiles.
package doctorRepo

import (
	"dochouse/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DoctorRepository defines the persistence operations for doctors.
type DoctorRepository interface {
	GetLatest(limit int64) ([]models.Doctor, error)
	GetByID(id primitive.ObjectID) (*models.Doctor, error)
	Create(doctor *models.Doctor) (primitive.ObjectID, error)
	Delete(id primitive.ObjectID) error
	Count() (int64, error)
}
