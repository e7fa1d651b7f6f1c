// models/appointment.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AppointmentPayment is the payment sub-document attached to an
// appointment after checkout. A nil pointer means unpaid.
type AppointmentPayment struct {
	Status        string  `json:"status" bson:"status"`
	TransactionID string  `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	Amount        float64 `json:"amount,omitempty" bson:"amount,omitempty"`
}

// Appointment is a booked visit owned by a user email.
type Appointment struct {
	ID       primitive.ObjectID  `json:"_id,omitempty" bson:"_id,omitempty"`
	Email    string              `json:"email" bson:"email"`
	Name     string              `json:"name,omitempty" bson:"name,omitempty"`
	Date     string              `json:"date" bson:"date"`
	TimeSlot string              `json:"timeSlot,omitempty" bson:"timeSlot,omitempty"`
	Doctor   string              `json:"doctor,omitempty" bson:"doctor,omitempty"`
	Service  string              `json:"service,omitempty" bson:"service,omitempty"`
	Price    float64             `json:"price,omitempty" bson:"price,omitempty"`
	Payment  *AppointmentPayment `json:"payment,omitempty" bson:"payment,omitempty"`
}

// Paid reports whether the appointment has a settled payment.
func (a *Appointment) Paid() bool {
	return a.Payment != nil && a.Payment.Status == "paid"
}
