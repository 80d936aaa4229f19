package domain

import (
	"strings"
	"time"
)

// Preset is a named, stored placeholder spec.
type Preset struct {
	// ID is the unique identifier.
	ID string
	// Name is the unique, human-chosen name used to look the preset up.
	Name string
	// Spec is the stored placeholder spec.
	Spec PlaceholderSpec
	// CreatedAt is when the preset was first saved.
	CreatedAt time.Time
	// UpdatedAt is when the preset was last saved.
	UpdatedAt time.Time
}

// NormalisePresetName trims surrounding whitespace from a preset name.
func NormalisePresetName(name string) string {
	return strings.TrimSpace(name)
}
