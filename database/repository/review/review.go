// Package reviewRepo persists patient reviews.
package reviewRepo

import (
	"dochouse/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewRepository defines the persistence operations for reviews.
type ReviewRepository interface {
	GetLatest(limit int64) ([]models.Review, error)
	Create(review *models.Review) (primitive.ObjectID, error)
	CountByEmail(email string) (int64, error)
}
