// models/review.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is a patient testimonial tied to a user email.
type Review struct {
	ID     primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name   string             `json:"name" bson:"name"`
	Email  string             `json:"email" bson:"email"`
	Rating float64            `json:"rating,omitempty" bson:"rating,omitempty"`
	Text   string             `json:"text" bson:"text"`
	Photo  string             `json:"photo,omitempty" bson:"photo,omitempty"`
}
