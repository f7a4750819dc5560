package audit

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/restaurant-loyalty/internal/models"
)

const defaultMaxEntries = 500

// Store guarda la traza de auditoría en memoria, acotada a las últimas
// N entradas (el estado no sobrevive al proceso).
type Store struct {
	mu      sync.RWMutex
	entries []models.AuditLog
	max     int
}

func NewStore() *Store {
	return &Store{max: defaultMaxEntries}
}

func (s *Store) Append(
	action string,
	entity string,
	entityID string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		if b, err := json.Marshal(metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		ID:        uuid.NewString(),
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metaJSON,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	if len(s.entries) > s.max {
		s.entries = s.entries[len(s.entries)-s.max:]
	}
	return nil
}

// List devuelve las entradas de la más reciente a la más antigua.
func (s *Store) List() []models.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.AuditLog, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		out = append(out, s.entries[i])
	}
	return out
}
