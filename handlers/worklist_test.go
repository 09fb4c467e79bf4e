package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/islomjonovabdulazim/center_dashboard/models"
)

func TestBuildWorklistOldestFirst(t *testing.T) {
	pending := []models.SessionStudent{{StudentID: 1, Name: "Aziz", Attendance: models.AttendancePending}}
	sessions := []models.AssistantSession{
		{ID: 2, Date: "2024-05-02", Time: "09:00", Students: pending},
		{ID: 1, Date: "2024-05-01", Time: "10:00", Students: pending},
	}

	worklist := buildWorklist(sessions)

	assert.Len(t, worklist, 2)
	assert.Equal(t, 1, worklist[0].ID)
	assert.Equal(t, 2, worklist[1].ID)
}

func TestBuildWorklistSkipsFullyMarkedSessions(t *testing.T) {
	sessions := []models.AssistantSession{
		{ID: 1, Date: "2024-05-01", Time: "10:00", Students: []models.SessionStudent{
			{StudentID: 1, Attendance: models.AttendancePresent},
			{StudentID: 2, Attendance: models.AttendanceAbsent},
		}},
		{ID: 2, Date: "2024-05-01", Time: "11:00", Students: []models.SessionStudent{
			{StudentID: 3, Attendance: models.AttendancePresent},
			{StudentID: 4, Attendance: models.AttendancePending},
		}},
	}

	worklist := buildWorklist(sessions)

	assert.Len(t, worklist, 1)
	assert.Equal(t, 2, worklist[0].ID)
}

func TestBuildWorklistEmptyInput(t *testing.T) {
	assert.Empty(t, buildWorklist(nil))
}

func TestFilterSlotsByDate(t *testing.T) {
	slots := []string{
		"2024-06-01 09:00",
		"2024-06-02 10:00",
		"2024-06-01 09:30",
		"garbage",
		"2024-06-03 08:00",
	}

	filtered := filterSlotsByDate(slots, "2024-06-01")

	// exactly the matching subset, order preserved
	assert.Equal(t, []string{"2024-06-01 09:00", "2024-06-01 09:30"}, filtered)

	assert.Empty(t, filterSlotsByDate(slots, "2024-07-01"))
}
