package driven

import (
	"io"

	"github.com/custodia-labs/placehold/internal/core/domain"
)

// PresetCodec serialises presets for export and import.
type PresetCodec interface {
	// Encode writes presets to w.
	Encode(w io.Writer, presets []domain.Preset) error

	// Decode reads presets from r. IDs and timestamps may be empty.
	Decode(r io.Reader) ([]domain.Preset, error)
}
