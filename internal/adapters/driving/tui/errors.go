package tui

import "errors"

// ErrMissingPlaceholderService is returned when the placeholder service is not provided.
var ErrMissingPlaceholderService = errors.New("tui: placeholder service is required")

// ErrNoPresets is reported when loading a preset while none are saved.
var ErrNoPresets = errors.New("tui: no presets saved")

// ErrPresetsUnavailable is reported when preset actions are used without a preset service.
var ErrPresetsUnavailable = errors.New("tui: presets are not available")
