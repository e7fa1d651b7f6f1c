// Package userRepo persists user accounts.
package userRepo

import (
	"dochouse/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines the persistence operations for users.
type UserRepository interface {
	GetAll() ([]models.User, error)
	GetByEmail(email string) (*models.User, error)
	// Create inserts the user; a duplicate email surfaces as
	// ErrDuplicateEmail via the collection's unique index.
	Create(user *models.User) (primitive.ObjectID, error)
	UpdateRole(id primitive.ObjectID, role string) error
	Delete(id primitive.ObjectID) error
	Count() (int64, error)
	// SignupsByYear groups user creation timestamps by year, ascending.
	SignupsByYear() ([]models.YearlySignup, error)
}
