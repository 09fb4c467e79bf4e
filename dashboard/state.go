package dashboard

import "github.com/islomjonovabdulazim/center_dashboard/models"

// State is the view-controller state returned to the front end: which
// sidebar section is active and the refresh counter list views depend on.
type State struct {
	Section string `json:"section"`
	Refresh int    `json:"refresh"`
}

func StateOf(rec *models.DashboardSession) State {
	return State{Section: rec.Section, Refresh: rec.Refresh}
}

// Invalidate records a successful mutation: bump the refresh counter so
// every dependent list view re-fetches instead of patching locally. When
// followUp is non-empty the active section jumps there (e.g. a booking
// lands the student on "my-sessions").
func Invalidate(rec *models.DashboardSession, followUp string) {
	rec.Refresh++
	if followUp != "" {
		rec.Section = followUp
	}
}
