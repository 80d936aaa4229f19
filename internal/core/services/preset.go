package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/placehold/internal/core/domain"
	"github.com/custodia-labs/placehold/internal/core/ports/driven"
	"github.com/custodia-labs/placehold/internal/core/ports/driving"
	"github.com/custodia-labs/placehold/internal/logger"
)

// Ensure PresetService implements the interface.
var _ driving.PresetService = (*PresetService)(nil)

// PresetService manages named placeholder specs.
type PresetService struct {
	store driven.PresetStore
	codec driven.PresetCodec
	now   func() time.Time
}

// NewPresetService creates a new preset service.
// The codec is only required for Export and Import.
func NewPresetService(store driven.PresetStore, codec driven.PresetCodec) *PresetService {
	return &PresetService{
		store: store,
		codec: codec,
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Second) },
	}
}

// Save creates a preset or replaces the spec of an existing one with the same name.
func (s *PresetService) Save(ctx context.Context, name string, spec domain.PlaceholderSpec) (*domain.Preset, error) {
	name = domain.NormalisePresetName(name)
	if name == "" {
		return nil, fmt.Errorf("%w: preset name is required", domain.ErrInvalidInput)
	}

	now := s.now()
	existing, err := s.store.GetByName(ctx, name)
	switch {
	case err == nil:
		logger.Debug("Updating preset %q (%s)", name, existing.ID)
		existing.Spec = spec
		existing.UpdatedAt = now
		if err := s.store.Save(ctx, *existing); err != nil {
			return nil, fmt.Errorf("save preset %q: %w", name, err)
		}
		return existing, nil
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("look up preset %q: %w", name, err)
	}

	preset := domain.Preset{
		ID:        uuid.New().String(),
		Name:      name,
		Spec:      spec,
		CreatedAt: now,
		UpdatedAt: now,
	}
	logger.Debug("Creating preset %q (%s)", name, preset.ID)
	if err := s.store.Save(ctx, preset); err != nil {
		return nil, fmt.Errorf("save preset %q: %w", name, err)
	}
	return &preset, nil
}

// Get retrieves a preset by name.
func (s *PresetService) Get(ctx context.Context, name string) (*domain.Preset, error) {
	return s.store.GetByName(ctx, domain.NormalisePresetName(name))
}

// List returns all presets ordered by name.
func (s *PresetService) List(ctx context.Context) ([]domain.Preset, error) {
	return s.store.List(ctx)
}

// Delete removes a preset by name.
func (s *PresetService) Delete(ctx context.Context, name string) error {
	preset, err := s.Get(ctx, name)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, preset.ID)
}

// Export writes all presets to w.
func (s *PresetService) Export(ctx context.Context, w io.Writer) error {
	if s.codec == nil {
		return errors.New("preset codec not configured")
	}
	presets, err := s.store.List(ctx)
	if err != nil {
		return fmt.Errorf("list presets: %w", err)
	}
	return s.codec.Encode(w, presets)
}

// Import reads presets from r and saves them by name, returning how many were saved.
// Presets that already exist are overwritten. Every spec is checked before
// anything is saved; one with an unknown service or format fails the import.
func (s *PresetService) Import(ctx context.Context, r io.Reader) (int, error) {
	if s.codec == nil {
		return 0, errors.New("preset codec not configured")
	}
	presets, err := s.codec.Decode(r)
	if err != nil {
		return 0, fmt.Errorf("decode presets: %w", err)
	}

	for i, p := range presets {
		spec, err := domain.NewPlaceholderSpec().Fill(p.Spec.Values())
		if err != nil {
			return 0, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		presets[i].Spec = spec
	}

	count := 0
	for _, p := range presets {
		if _, err := s.Save(ctx, p.Name, p.Spec); err != nil {
			return count, err
		}
		count++
	}
	logger.Info("Imported %d preset(s)", count)
	return count, nil
}
