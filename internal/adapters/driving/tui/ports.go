// Package tui provides an interactive terminal editor for placeholder specs.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/placehold/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces used by the TUI.
type Ports struct {
	// Placeholder builds URLs and image tags. Required.
	Placeholder driving.PlaceholderService

	// Preset saves and loads presets. Optional.
	Preset driving.PresetService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Placeholder == nil {
		return ErrMissingPlaceholderService
	}
	return nil
}
