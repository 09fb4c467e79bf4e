package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/islomjonovabdulazim/center_dashboard/models"
)

// GormStore keeps dashboard sessions in Postgres so a restart does not
// log everyone out.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(rec *models.DashboardSession) error {
	return s.db.Create(rec).Error
}

func (s *GormStore) Get(id uuid.UUID) (*models.DashboardSession, error) {
	var rec models.DashboardSession
	err := s.db.Where("id = ? AND expires_at > ?", id, time.Now()).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (s *GormStore) Save(rec *models.DashboardSession) error {
	return s.db.Save(rec).Error
}

func (s *GormStore) Delete(id uuid.UUID) error {
	return s.db.Delete(&models.DashboardSession{}, "id = ?", id).Error
}

func (s *GormStore) DeleteExpired(now time.Time) (int64, error) {
	res := s.db.Delete(&models.DashboardSession{}, "expires_at <= ?", now)
	return res.RowsAffected, res.Error
}
