package storage

import (
	"sync"

	"github.com/shhac/foldingcell/internal/fold"
)

// MemoryRepository implements Repository using in-memory storage for tests
type MemoryRepository struct {
	cfg   fold.Config
	saved bool
	mu    sync.RWMutex
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{cfg: fold.DefaultConfig()}
}

// LoadStyle returns the stored style
func (m *MemoryRepository) LoadStyle() (fold.Config, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg, m.saved, nil
}

// SaveStyle stores a validated style
func (m *MemoryRepository) SaveStyle(cfg fold.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cfg = cfg
	m.saved = true
	return nil
}
