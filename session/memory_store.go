package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/islomjonovabdulazim/center_dashboard/models"
)

// MemoryStore is the test double; it mirrors GormStore's expiry behavior.
type MemoryStore struct {
	mu   sync.Mutex
	recs map[uuid.UUID]models.DashboardSession
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{recs: make(map[uuid.UUID]models.DashboardSession)}
}

func (s *MemoryStore) Create(rec *models.DashboardSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs[rec.ID] = *rec
	return nil
}

func (s *MemoryStore) Get(id uuid.UUID) (*models.DashboardSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[id]
	if !ok || !rec.ExpiresAt.After(time.Now()) {
		return nil, ErrNotFound
	}
	out := rec
	return &out, nil
}

func (s *MemoryStore) Save(rec *models.DashboardSession) error {
	return s.Create(rec)
}

func (s *MemoryStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.recs, id)
	return nil
}

func (s *MemoryStore) DeleteExpired(now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, rec := range s.recs {
		if !rec.ExpiresAt.After(now) {
			delete(s.recs, id)
			n++
		}
	}
	return n, nil
}

// Len reports live records; used by tests asserting the 401 wipe.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recs)
}
