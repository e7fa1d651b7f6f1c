// models/doctor.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Doctor represents a clinic doctor profile.
type Doctor struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Email      string             `json:"email,omitempty" bson:"email,omitempty"`
	Specialty  string             `json:"specialty" bson:"specialty"`
	Education  string             `json:"education,omitempty" bson:"education,omitempty"`
	Experience string             `json:"experience,omitempty" bson:"experience,omitempty"`
	About      string             `json:"about,omitempty" bson:"about,omitempty"`
	Fee        float64            `json:"fee,omitempty" bson:"fee,omitempty"`
	Rating     float64            `json:"rating,omitempty" bson:"rating,omitempty"`
	Image      string             `json:"image,omitempty" bson:"image,omitempty"`
	Services   []string           `json:"services,omitempty" bson:"services,omitempty"`
}
