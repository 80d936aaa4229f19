package driving

import "github.com/custodia-labs/placehold/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves the current defaults.
	Get() (*domain.Defaults, error)

	// Save persists the given defaults.
	Save(defaults *domain.Defaults) error

	// SetDefaultService updates the service new specs target.
	SetDefaultService(service domain.Service) error

	// SetDefaultSize updates the default width and height.
	SetDefaultSize(width, height int) error

	// SetEndpoints updates the scheme and hosts URLs point at.
	SetEndpoints(endpoints domain.Endpoints) error

	// Reload re-reads settings from storage.
	Reload() error

	// GetDefaults returns the built-in defaults.
	GetDefaults() domain.Defaults
}
