// handlers/bundle.go
package handlers

import "dochouse/services/account"

// HandlerBundle aggregates every handler the router needs, plus the
// account service the admin middleware authorizes against.
type HandlerBundle struct {
	Accounts account.AccountService

	Doctors      *DoctorHandler
	Services     *ServiceHandler
	Reviews      *ReviewHandler
	Users        *UserHandler
	Appointments *AppointmentHandler
	Payments     *PaymentHandler
	Dashboard    *DashboardHandler
}
