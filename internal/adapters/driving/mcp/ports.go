package mcp

import (
	"github.com/custodia-labs/placehold/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Placeholder builds URLs and image tags.
	Placeholder driving.PlaceholderService

	// Preset manages saved presets. Optional.
	Preset driving.PresetService

	// Settings exposes the configured defaults. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Placeholder == nil {
		return ErrMissingPlaceholderService
	}
	return nil
}
