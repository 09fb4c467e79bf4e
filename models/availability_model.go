package models

const (
	SlotAvailable = "available"
	SlotBooked    = "booked"
)

// AvailabilityDay groups an assistant's published slots for one date.
type AvailabilityDay struct {
	Date  string             `json:"date"`
	Slots []AvailabilitySlot `json:"slots"`
}

type AvailabilitySlot struct {
	Time   string `json:"time"`
	Status string `json:"status"`
}

// AssistantProfile is what a student sees when picking a slot. The
// available_slots entries are "YYYY-MM-DD HH:MM" strings and are only a
// snapshot: another student may book a slot between fetch and submit.
type AssistantProfile struct {
	ID             int      `json:"id"`
	FullName       string   `json:"fullname"`
	Subject        string   `json:"subject"`
	AvgRating      float64  `json:"avg_rating"`
	PhotoURL       string   `json:"photo_url,omitempty"`
	AvailableSlots []string `json:"available_slots"`
}
