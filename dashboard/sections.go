package dashboard

import (
	"fmt"

	"github.com/islomjonovabdulazim/center_dashboard/models"
)

// Sidebar section tags, one closed set per role. These are the only
// values the view-state endpoint accepts.
const (
	SectionCenters      = "centers"
	SectionCreateCenter = "create-center"

	SectionDashboard  = "dashboard"
	SectionAssistants = "assistants"
	SectionStudents   = "students"
	SectionCreateUser = "create-user"

	SectionSessions     = "sessions"
	SectionAvailability = "availability"
	SectionAttendance   = "attendance"

	SectionBookSession = "book-session"
	SectionMySessions  = "my-sessions"
	SectionRate        = "rate"
)

var roleSections = map[string][]string{
	models.RoleAdmin:     {SectionCenters, SectionCreateCenter},
	models.RoleManager:   {SectionDashboard, SectionAssistants, SectionStudents, SectionCreateUser},
	models.RoleAssistant: {SectionSessions, SectionAvailability, SectionAttendance},
	models.RoleStudent:   {SectionBookSession, SectionMySessions, SectionRate},
}

// EntrySection is where a role lands right after login.
func EntrySection(role string) string {
	sections, ok := roleSections[role]
	if !ok {
		return ""
	}
	return sections[0]
}

// ValidateSection rejects section tags outside the role's sidebar.
func ValidateSection(role, section string) error {
	for _, s := range roleSections[role] {
		if s == section {
			return nil
		}
	}
	return fmt.Errorf("unknown section %q for role %q", section, role)
}
