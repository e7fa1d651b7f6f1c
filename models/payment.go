// models/payment.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Payment records a completed charge, created after the client
// confirms a payment intent.
type Payment struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email         string             `json:"email" bson:"email"`
	Price         float64            `json:"price" bson:"price"`
	TransactionID string             `json:"transactionId" bson:"transactionId"`
	Date          string             `json:"date,omitempty" bson:"date,omitempty"`
	Service       string             `json:"service,omitempty" bson:"service,omitempty"`
}
