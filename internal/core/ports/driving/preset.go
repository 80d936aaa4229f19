package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/placehold/internal/core/domain"
)

// PresetService manages named placeholder specs.
type PresetService interface {
	// Save creates a preset or replaces the spec of an existing one with the same name.
	Save(ctx context.Context, name string, spec domain.PlaceholderSpec) (*domain.Preset, error)

	// Get retrieves a preset by name.
	Get(ctx context.Context, name string) (*domain.Preset, error)

	// List returns all presets ordered by name.
	List(ctx context.Context) ([]domain.Preset, error)

	// Delete removes a preset by name.
	Delete(ctx context.Context, name string) error

	// Export writes all presets to w.
	Export(ctx context.Context, w io.Writer) error

	// Import reads presets from r and saves them, returning how many were saved.
	Import(ctx context.Context, r io.Reader) (int, error)
}
