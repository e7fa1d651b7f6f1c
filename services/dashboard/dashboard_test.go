package dashboard

import (
	"testing"

	"dochouse/models"

	"github.com/stretchr/testify/assert"
)

func TestSplitPaidUnpaid(t *testing.T) {
	appointments := []models.Appointment{
		{Email: "a@x.com", Payment: &models.AppointmentPayment{Status: "paid"}},
		{Email: "b@x.com"},
		{Email: "c@x.com", Payment: &models.AppointmentPayment{Status: "pending"}},
		{Email: "d@x.com", Payment: &models.AppointmentPayment{Status: "failed"}},
		{Email: "e@x.com", Payment: &models.AppointmentPayment{Status: "paid"}},
	}

	paid, unpaid := SplitPaidUnpaid(appointments)

	assert.Equal(t, int64(2), paid)
	assert.Equal(t, int64(1), unpaid)
	// pending/failed appointments land in neither bucket.
	assert.Equal(t, int64(3), paid+unpaid)
}

func TestSplitPaidUnpaidEmpty(t *testing.T) {
	paid, unpaid := SplitPaidUnpaid(nil)
	assert.Zero(t, paid)
	assert.Zero(t, unpaid)
}
