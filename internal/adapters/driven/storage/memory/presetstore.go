package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/placehold/internal/core/domain"
	"github.com/custodia-labs/placehold/internal/core/ports/driven"
)

// Ensure PresetStore implements the interface.
var _ driven.PresetStore = (*PresetStore)(nil)

// PresetStore is an in-memory implementation of driven.PresetStore.
type PresetStore struct {
	mu      sync.RWMutex
	presets map[string]domain.Preset
}

// NewPresetStore creates a new in-memory preset store.
func NewPresetStore() *PresetStore {
	return &PresetStore{
		presets: make(map[string]domain.Preset),
	}
}

// Save stores or updates a preset.
// A preset whose name is taken by a different ID is rejected.
func (s *PresetStore) Save(_ context.Context, preset domain.Preset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, p := range s.presets {
		if p.Name == preset.Name && id != preset.ID {
			return domain.ErrAlreadyExists
		}
	}
	s.presets[preset.ID] = preset
	return nil
}

// Get retrieves a preset by ID.
func (s *PresetStore) Get(_ context.Context, id string) (*domain.Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	preset, ok := s.presets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &preset, nil
}

// GetByName retrieves a preset by name.
func (s *PresetStore) GetByName(_ context.Context, name string) (*domain.Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.presets {
		if p.Name == name {
			preset := p
			return &preset, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Delete removes a preset.
func (s *PresetStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.presets, id)
	return nil
}

// List returns all presets ordered by name.
func (s *PresetStore) List(_ context.Context) ([]domain.Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Preset, 0, len(s.presets))
	for _, p := range s.presets {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}
