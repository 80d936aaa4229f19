package services

import (
	"fmt"

	"github.com/custodia-labs/placehold/internal/core/domain"
	"github.com/custodia-labs/placehold/internal/core/ports/driving"
	"github.com/custodia-labs/placehold/internal/logger"
)

// Ensure PlaceholderService implements the interface.
var _ driving.PlaceholderService = (*PlaceholderService)(nil)

// PlaceholderService builds URLs and image tags from specs.
// Settings are read on every call, so a reloaded config takes effect
// without rebuilding the service.
type PlaceholderService struct {
	settings driving.SettingsService
}

// NewPlaceholderService creates a new placeholder service.
// A nil settings service means built-in defaults.
func NewPlaceholderService(settings driving.SettingsService) *PlaceholderService {
	return &PlaceholderService{settings: settings}
}

// New returns a spec seeded with the configured defaults.
func (s *PlaceholderService) New() domain.PlaceholderSpec {
	return s.defaults().Spec()
}

// Build applies field assignments to a spec.
func (s *PlaceholderService) Build(
	spec domain.PlaceholderSpec,
	values map[string]string,
) (domain.PlaceholderSpec, error) {
	if len(values) == 0 {
		return spec, nil
	}
	logger.Debug("Applying %d field(s): %v", len(values), values)

	out, err := spec.Fill(values)
	if err != nil {
		return spec, fmt.Errorf("build spec: %w", err)
	}
	return out, nil
}

// URL returns the image URL for the spec.
func (s *PlaceholderService) URL(spec domain.PlaceholderSpec) (string, error) {
	endpoints := s.defaults().Endpoints
	logger.Debug("Service: %s, host: %s", spec.Service, endpoints.HostFor(spec.Service))

	url, err := spec.URLFor(endpoints)
	if err != nil {
		return "", err
	}
	logger.Debug("URL: %s", url)
	return url, nil
}

// ImageTag returns the HTML img element for the spec.
func (s *PlaceholderService) ImageTag(spec domain.PlaceholderSpec) (string, error) {
	return spec.ImageTagFor(s.defaults().Endpoints)
}

func (s *PlaceholderService) defaults() domain.Defaults {
	if s.settings == nil {
		return domain.DefaultDefaults()
	}
	d, err := s.settings.Get()
	if err != nil || d == nil {
		logger.Warn("Falling back to built-in defaults: %v", err)
		return domain.DefaultDefaults()
	}
	return *d
}
