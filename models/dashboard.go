// models/dashboard.go
package models

// YearlySignup is one bucket of the signup-by-year breakdown.
type YearlySignup struct {
	Year  int   `json:"year" bson:"_id"`
	Count int64 `json:"count" bson:"count"`
}

// AdminStats aggregates the admin dashboard counters.
type AdminStats struct {
	Doctors       int64          `json:"doctors"`
	Patients      int64          `json:"patients"`
	Appointments  int64          `json:"appointments"`
	YearlySignups []YearlySignup `json:"yearlySignups"`
	Paid          int64          `json:"paid"`
	Unpaid        int64          `json:"unpaid"`
}

// UserStats aggregates the per-user dashboard counters.
type UserStats struct {
	Appointments int64 `json:"appointments"`
	Payments     int64 `json:"payments"`
	Reviews      int64 `json:"reviews"`
}
