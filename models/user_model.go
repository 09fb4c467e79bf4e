package models

import "encoding/json"

const (
	RoleAdmin     = "admin"
	RoleManager   = "manager"
	RoleAssistant = "assistant"
	RoleStudent   = "student"
)

// UserInfo is the identity object returned by the upstream login endpoint.
// It is held verbatim in the dashboard session for the lifetime of the
// session; the upstream remains authoritative for every field.
type UserInfo struct {
	ID               int    `json:"id"`
	FullName         string `json:"fullname"`
	Phone            string `json:"phone"`
	Role             string `json:"role"`
	PhotoURL         string `json:"photo_url,omitempty"`
	SubjectField     string `json:"subject_field,omitempty"`
	LearningCenterID *int   `json:"learning_center_id,omitempty"`
}

// CenterUser is a row in the manager's user listings.
type CenterUser struct {
	ID           int    `json:"id"`
	FullName     string `json:"fullname"`
	Phone        string `json:"phone"`
	SubjectField string `json:"subject_field"`
	PhotoURL     string `json:"photo_url,omitempty"`
	ActiveStatus bool   `json:"active_status"`
}

// CenterStats is the manager dashboard aggregate. The upstream owns the
// computation; the blocks we do not read are relayed untouched.
type CenterStats struct {
	CenterTotals struct {
		SessionsThisMonth int `json:"sessions_this_month"`
		ActiveAssistants  int `json:"active_assistants"`
		ActiveStudents    int `json:"active_students"`
	} `json:"center_totals"`
	Assistants      json.RawMessage `json:"assistants"`
	PopularSubjects json.RawMessage `json:"popular_subjects"`
	PeakHours       json.RawMessage `json:"peak_hours"`
}
