package repository

import (
	"sync"

	"SignalDesk/internal/domain/models"
	domrepo "SignalDesk/internal/domain/repository"
)

// MemorySnapshotStore keeps the latest pipeline snapshot for API reads.
type MemorySnapshotStore struct {
	mu     sync.RWMutex
	latest *models.PipelineSnapshot
}

// NewMemorySnapshotStore creates an empty store.
func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{}
}

var _ domrepo.SnapshotStore = (*MemorySnapshotStore)(nil)

// Publish replaces the stored snapshot.
func (s *MemorySnapshotStore) Publish(snap *models.PipelineSnapshot) {
	s.mu.Lock()
	s.latest = snap
	s.mu.Unlock()
}

// Latest returns the most recent snapshot, nil before the first cycle.
func (s *MemorySnapshotStore) Latest() *models.PipelineSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}
