package catalog

import (
	"testing"

	"dochouse/models"

	"github.com/stretchr/testify/assert"
)

func TestStartHour(t *testing.T) {
	cases := []struct {
		label string
		want  int
	}{
		{"12:00 AM - 1:00 AM", 0},
		{"12:00 PM - 1:00 PM", 12},
		{"1:00 PM - 2:00 PM", 13},
		{"11:00 AM - 12:00 PM", 11},
		{"10:00 AM - 11:00 AM", 10},
		{"9:30 PM - 10:30 PM", 21},
		{"Morning visit 8:15 AM onwards", 8},
		{"walk-in", 0},
		{"", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StartHour(tc.label), "label %q", tc.label)
	}
}

func TestStartHourRange(t *testing.T) {
	labels := []string{
		"12:00 AM", "1:00 AM", "11:59 AM", "12:00 PM", "1:00 PM", "11:00 PM",
	}
	for _, label := range labels {
		h := StartHour(label)
		assert.GreaterOrEqual(t, h, 0, "label %q", label)
		assert.LessOrEqual(t, h, 23, "label %q", label)
	}
}

func TestSortSlots(t *testing.T) {
	slots := []models.Slot{
		{Label: "1:00 PM - 2:00 PM"},
		{Label: "10:00 AM - 11:00 AM"},
		{Label: "12:00 AM - 1:00 AM"},
		{Label: "12:00 PM - 1:00 PM"},
		{Label: "11:00 AM - 12:00 PM"},
	}

	SortSlots(slots)

	for i := 1; i < len(slots); i++ {
		assert.LessOrEqual(t, StartHour(slots[i-1].Label), StartHour(slots[i].Label))
	}
	assert.Equal(t, "12:00 AM - 1:00 AM", slots[0].Label)
	assert.Equal(t, "1:00 PM - 2:00 PM", slots[len(slots)-1].Label)
}

func TestSortSlotsStableOnTies(t *testing.T) {
	slots := []models.Slot{
		{Label: "10:00 AM first"},
		{Label: "10:30 AM second"},
		{Label: "9:00 AM early"},
	}

	SortSlots(slots)

	// Both 10 o'clock slots share a start hour, so their input order holds.
	assert.Equal(t, "9:00 AM early", slots[0].Label)
	assert.Equal(t, "10:00 AM first", slots[1].Label)
	assert.Equal(t, "10:30 AM second", slots[2].Label)
}
