package services

import (
	"fmt"

	"github.com/custodia-labs/placehold/internal/core/domain"
	"github.com/custodia-labs/placehold/internal/core/ports/driven"
	"github.com/custodia-labs/placehold/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyService         = "placeholder.service"
	keyWidth           = "placeholder.width"
	keyHeight          = "placeholder.height"
	keyScheme          = "endpoints.scheme"
	keyPlaceholderHost = "endpoints.placeholder_host"
	keyPlacekittenHost = "endpoints.placekitten_host"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves the current defaults.
// Missing or invalid stored values fall back to the built-in defaults.
func (s *SettingsService) Get() (*domain.Defaults, error) {
	defaults := domain.DefaultDefaults()

	return &domain.Defaults{
		Service: s.getService(defaults.Service),
		Width:   s.getPositiveInt(keyWidth, defaults.Width),
		Height:  s.getPositiveInt(keyHeight, defaults.Height),
		Endpoints: domain.Endpoints{
			Scheme:          s.getString(keyScheme, defaults.Endpoints.Scheme),
			PlaceholderHost: s.getString(keyPlaceholderHost, defaults.Endpoints.PlaceholderHost),
			PlacekittenHost: s.getString(keyPlacekittenHost, defaults.Endpoints.PlacekittenHost),
		},
	}, nil
}

// Save persists the given defaults.
func (s *SettingsService) Save(defaults *domain.Defaults) error {
	if err := s.configStore.Set(keyService, defaults.Service.String()); err != nil {
		return fmt.Errorf("save service: %w", err)
	}
	if err := s.configStore.Set(keyWidth, defaults.Width); err != nil {
		return fmt.Errorf("save width: %w", err)
	}
	if err := s.configStore.Set(keyHeight, defaults.Height); err != nil {
		return fmt.Errorf("save height: %w", err)
	}
	if err := s.configStore.Set(keyScheme, defaults.Endpoints.Scheme); err != nil {
		return fmt.Errorf("save scheme: %w", err)
	}
	if err := s.configStore.Set(keyPlaceholderHost, defaults.Endpoints.PlaceholderHost); err != nil {
		return fmt.Errorf("save placeholder_host: %w", err)
	}
	if err := s.configStore.Set(keyPlacekittenHost, defaults.Endpoints.PlacekittenHost); err != nil {
		return fmt.Errorf("save placekitten_host: %w", err)
	}
	return nil
}

// SetDefaultService updates the service new specs target.
func (s *SettingsService) SetDefaultService(service domain.Service) error {
	if !service.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedService, service)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Service = service
	return s.Save(settings)
}

// SetDefaultSize updates the default width and height.
func (s *SettingsService) SetDefaultSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: size must be positive, got %dx%d", domain.ErrInvalidInput, width, height)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Width = width
	settings.Height = height
	return s.Save(settings)
}

// SetEndpoints updates the scheme and hosts URLs point at.
// Empty fields reset to the public services.
func (s *SettingsService) SetEndpoints(endpoints domain.Endpoints) error {
	if endpoints.Scheme != "" && endpoints.Scheme != "http" && endpoints.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https, got %q", domain.ErrInvalidInput, endpoints.Scheme)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	defaults := domain.DefaultEndpoints()
	settings.Endpoints = domain.Endpoints{
		Scheme:          orDefault(endpoints.Scheme, defaults.Scheme),
		PlaceholderHost: orDefault(endpoints.PlaceholderHost, defaults.PlaceholderHost),
		PlacekittenHost: orDefault(endpoints.PlacekittenHost, defaults.PlacekittenHost),
	}
	return s.Save(settings)
}

// Reload re-reads settings from storage.
func (s *SettingsService) Reload() error {
	if err := s.configStore.Load(); err != nil {
		return fmt.Errorf("reload config: %w", err)
	}
	return nil
}

// GetDefaults returns the built-in defaults.
func (s *SettingsService) GetDefaults() domain.Defaults {
	return domain.DefaultDefaults()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	return orDefault(s.configStore.GetString(key), defaultVal)
}

func (s *SettingsService) getPositiveInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getService(defaultVal domain.Service) domain.Service {
	val := s.configStore.GetString(keyService)
	if val == "" {
		return defaultVal
	}
	service, err := domain.ParseService(val)
	if err != nil {
		return defaultVal
	}
	return service
}

func orDefault(val, defaultVal string) string {
	if val == "" {
		return defaultVal
	}
	return val
}
