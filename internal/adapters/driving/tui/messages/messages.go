// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/placehold/internal/core/domain"
)

// PresetsLoaded carries the saved presets back to the model.
type PresetsLoaded struct {
	Presets []domain.Preset
	Err     error
}

// PresetSaved reports the result of saving a preset.
type PresetSaved struct {
	Preset *domain.Preset
	Err    error
}

// ErrorOccurred is sent when an operation fails.
type ErrorOccurred struct {
	Err error
}

// Quit is sent to exit the application.
type Quit struct{}
