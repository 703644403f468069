package store

import (
	"sort"
	"sync"

	"nba-matchup-service/internal/app/matchups"
)

// MemoryStore keeps a thread-safe snapshot of matchup datasets in memory.
type MemoryStore struct {
	mu       sync.RWMutex
	datasets map[string]matchups.Dataset
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		datasets: make(map[string]matchups.Dataset),
	}
}

// ListDatasets returns the current datasets ordered by ID.
func (s *MemoryStore) ListDatasets() []matchups.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]matchups.Dataset, 0, len(s.datasets))
	for _, d := range s.datasets {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// GetDataset retrieves a dataset by ID.
func (s *MemoryStore) GetDataset(id string) (matchups.Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.datasets[id]
	return d, ok
}

// SetDatasets replaces the existing datasets with a new snapshot.
func (s *MemoryStore) SetDatasets(datasets []matchups.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.datasets = make(map[string]matchups.Dataset, len(datasets))
	for _, d := range datasets {
		s.datasets[d.ID] = d
	}
}
