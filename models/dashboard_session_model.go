package models

import (
	"time"

	"github.com/google/uuid"
)

// DashboardSession is the server-held record behind one logged-in
// dashboard. It carries the upstream bearer token, a copy of the identity
// returned at login, and the view state (active section + refresh
// counter). Deleted on logout, on any upstream 401, or by the expiry
// sweeper.
type DashboardSession struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UpstreamToken string    `gorm:"size:2048;not null" json:"-"`

	UserID           int    `gorm:"not null" json:"user_id"`
	FullName         string `gorm:"size:255" json:"fullname"`
	Phone            string `gorm:"size:32" json:"phone"`
	Role             string `gorm:"size:20;not null" json:"role"`
	PhotoURL         string `gorm:"size:512" json:"photo_url,omitempty"`
	SubjectField     string `gorm:"size:255" json:"subject_field,omitempty"`
	LearningCenterID *int   `json:"learning_center_id,omitempty"`

	Section string `gorm:"size:40;not null" json:"section"`
	Refresh int    `gorm:"not null;default:0" json:"refresh"`

	ExpiresAt time.Time `gorm:"not null;index" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// User rebuilds the identity object as the upstream returned it.
func (s *DashboardSession) User() UserInfo {
	return UserInfo{
		ID:               s.UserID,
		FullName:         s.FullName,
		Phone:            s.Phone,
		Role:             s.Role,
		PhotoURL:         s.PhotoURL,
		SubjectField:     s.SubjectField,
		LearningCenterID: s.LearningCenterID,
	}
}
