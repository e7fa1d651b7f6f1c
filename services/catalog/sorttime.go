// File: services/catalog/sorttime.go
package catalog

import (
	"regexp"
	"sort"
	"strconv"

	"dochouse/models"
)

var slotTimeRe = regexp.MustCompile(`(\d+):(\d+) ([AP]M)`)

// StartHour extracts the 24-hour start hour from a slot label such as
// "10:00 AM - 11:00 AM". Labels without a recognizable time read as 0.
// Minutes are parsed but do not affect ordering.
func StartHour(label string) int {
	m := slotTimeRe.FindStringSubmatch(label)
	if m == nil {
		return 0
	}
	hour, _ := strconv.Atoi(m[1])
	switch {
	case m[3] == "PM" && hour != 12:
		return hour + 12
	case m[3] == "AM" && hour == 12:
		return 0
	default:
		return hour
	}
}

// CompareSlots orders two slots by their extracted start hours.
// Slots starting within the same hour compare equal.
func CompareSlots(a, b models.Slot) int {
	return StartHour(a.Label) - StartHour(b.Label)
}

// SortSlots stably sorts a slot collection ascending by start hour.
func SortSlots(slots []models.Slot) {
	sort.SliceStable(slots, func(i, j int) bool {
		return CompareSlots(slots[i], slots[j]) < 0
	})
}
