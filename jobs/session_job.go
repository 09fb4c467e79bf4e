package jobs

import (
	"log"
	"time"

	"github.com/islomjonovabdulazim/center_dashboard/session"
)

// PurgeExpiredSessions returns the cron body that sweeps dashboard
// sessions whose lifetime has lapsed. Get already refuses expired
// records; the sweep keeps the table small.
func PurgeExpiredSessions(store session.Store) func() {
	return func() {
		log.Println("Running job: PurgeExpiredSessions...")

		n, err := store.DeleteExpired(time.Now())
		if err != nil {
			log.Printf("Error purging expired sessions: %v", err)
			return
		}
		if n == 0 {
			log.Println("No expired sessions found.")
			return
		}
		log.Printf("Purged %d expired session(s).", n)
	}
}
