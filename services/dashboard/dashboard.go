// File: services/dashboard/dashboard.go
package dashboard

import (
	appointmentRepo "dochouse/database/repository/appointment"
	doctorRepo "dochouse/database/repository/doctor"
	paymentRepo "dochouse/database/repository/payment"
	reviewRepo "dochouse/database/repository/review"
	userRepo "dochouse/database/repository/user"
	"dochouse/models"
)

// DashboardService computes the dashboard aggregates.
type DashboardService interface {
	UserHome(email string) (*models.UserStats, error)
	AdminHome() (*models.AdminStats, error)
}

// DefaultDashboardService is the production DashboardService.
type DefaultDashboardService struct {
	Doctors      doctorRepo.DoctorRepository
	Users        userRepo.UserRepository
	Appointments appointmentRepo.AppointmentRepository
	Payments     paymentRepo.PaymentRepository
	Reviews      reviewRepo.ReviewRepository
}

// UserHome counts a user's appointments, payments and reviews.
func (s *DefaultDashboardService) UserHome(email string) (*models.UserStats, error) {
	appointments, err := s.Appointments.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	payments, err := s.Payments.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	reviews, err := s.Reviews.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	return &models.UserStats{
		Appointments: appointments,
		Payments:     payments,
		Reviews:      reviews,
	}, nil
}

// AdminHome assembles the site-wide counters, the yearly signup
// breakdown and the paid/unpaid appointment split.
func (s *DefaultDashboardService) AdminHome() (*models.AdminStats, error) {
	doctors, err := s.Doctors.Count()
	if err != nil {
		return nil, err
	}
	patients, err := s.Users.Count()
	if err != nil {
		return nil, err
	}
	total, err := s.Appointments.Count()
	if err != nil {
		return nil, err
	}
	signups, err := s.Users.SignupsByYear()
	if err != nil {
		return nil, err
	}
	appointments, err := s.Appointments.GetAll()
	if err != nil {
		return nil, err
	}
	paid, unpaid := SplitPaidUnpaid(appointments)

	return &models.AdminStats{
		Doctors:       doctors,
		Patients:      patients,
		Appointments:  total,
		YearlySignups: signups,
		Paid:          paid,
		Unpaid:        unpaid,
	}, nil
}

// SplitPaidUnpaid buckets appointments into paid (payment status
// "paid") and unpaid (no payment at all). Appointments with any other
// payment status land in neither bucket.
func SplitPaidUnpaid(appointments []models.Appointment) (paid, unpaid int64) {
	for i := range appointments {
		a := &appointments[i]
		switch {
		case a.Paid():
			paid++
		case a.Payment == nil:
			unpaid++
		}
	}
	return paid, unpaid
}
