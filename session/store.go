package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/islomjonovabdulazim/center_dashboard/models"
)

var ErrNotFound = errors.New("session not found")

// Store persists dashboard sessions. Get must not return expired records.
type Store interface {
	Create(rec *models.DashboardSession) error
	Get(id uuid.UUID) (*models.DashboardSession, error)
	Save(rec *models.DashboardSession) error
	Delete(id uuid.UUID) error
	DeleteExpired(now time.Time) (int64, error)
}
