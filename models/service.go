// models/service.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Slot is a bookable time window on a service. The label (e.g.
// "10:00 AM - 11:00 AM") is unique within one service and doubles as
// the lookup key for booking updates.
type Slot struct {
	Label       string   `json:"slot" bson:"slot"`
	BookedDates []string `json:"bookedDates" bson:"bookedDates"`
}

// Service represents a clinic service with its bookable slots.
type Service struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	Image          string             `json:"image,omitempty" bson:"image,omitempty"`
	AvailableSlots []Slot             `json:"availableSlot" bson:"availableSlot"`
}
