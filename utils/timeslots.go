package utils

import (
	"fmt"
	"strings"
	"time"
)

const (
	slotDateLayout = "2006-01-02"
	slotTimeLayout = "15:04"
)

// TimeSlots returns the published half-hour grid, 08:00 through 19:30.
// Availability submissions must stay on this grid.
func TimeSlots() []string {
	slots := make([]string, 0, 24)
	for hour := 8; hour < 20; hour++ {
		for _, minute := range []int{0, 30} {
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return slots
}

// IsGridSlot reports whether t is one of the published half-hour slots.
func IsGridSlot(t string) bool {
	for _, s := range TimeSlots() {
		if s == t {
			return true
		}
	}
	return false
}

// ParseSlot splits a "2006-01-02 15:04" slot string into its date and
// time-of-day components.
func ParseSlot(slot string) (date, timeOfDay string, err error) {
	parts := strings.SplitN(slot, " ", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("malformed slot %q", slot)
	}
	if _, err := time.Parse(slotDateLayout, parts[0]); err != nil {
		return "", "", fmt.Errorf("malformed slot date %q", parts[0])
	}
	if _, err := time.Parse(slotTimeLayout, parts[1]); err != nil {
		return "", "", fmt.Errorf("malformed slot time %q", parts[1])
	}
	return parts[0], parts[1], nil
}

// SlotTime combines a session's date and time-of-day into a comparable
// instant. Used for oldest-first worklist ordering.
func SlotTime(date, timeOfDay string) (time.Time, error) {
	return time.Parse(slotDateLayout+" "+slotTimeLayout, date+" "+timeOfDay)
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := time.Parse(slotDateLayout, s)
	return err == nil
}
