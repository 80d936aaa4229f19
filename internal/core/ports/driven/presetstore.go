package driven

import (
	"context"

	"github.com/custodia-labs/placehold/internal/core/domain"
)

// PresetStore persists named placeholder specs.
type PresetStore interface {
	// Save stores or updates a preset, keyed by ID.
	Save(ctx context.Context, preset domain.Preset) error

	// Get retrieves a preset by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.Preset, error)

	// GetByName retrieves a preset by its unique name.
	// Returns domain.ErrNotFound if it does not exist.
	GetByName(ctx context.Context, name string) (*domain.Preset, error)

	// Delete removes a preset by ID. Deleting a missing preset is not an error.
	Delete(ctx context.Context, id string) error

	// List returns all presets ordered by name.
	List(ctx context.Context) ([]domain.Preset, error)
}
