package mcp

import (
	"context"
	"io"

	"github.com/custodia-labs/placehold/internal/core/domain"
)

// mockPlaceholderService is a mock implementation of driving.PlaceholderService
// that builds URLs against the public endpoints.
type mockPlaceholderService struct {
	defaults domain.PlaceholderSpec
	err      error
}

func newMockPlaceholderService() *mockPlaceholderService {
	return &mockPlaceholderService{defaults: domain.NewPlaceholderSpec()}
}

func (m *mockPlaceholderService) New() domain.PlaceholderSpec {
	return m.defaults
}

func (m *mockPlaceholderService) Build(
	spec domain.PlaceholderSpec,
	values map[string]string,
) (domain.PlaceholderSpec, error) {
	return spec.Fill(values)
}

func (m *mockPlaceholderService) URL(spec domain.PlaceholderSpec) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return spec.URL()
}

func (m *mockPlaceholderService) ImageTag(spec domain.PlaceholderSpec) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return spec.ImageTag()
}

// mockPresetService is a mock implementation of driving.PresetService.
type mockPresetService struct {
	presets []domain.Preset
	err     error
}

func (m *mockPresetService) Save(
	_ context.Context,
	name string,
	spec domain.PlaceholderSpec,
) (*domain.Preset, error) {
	return &domain.Preset{Name: name, Spec: spec}, m.err
}

func (m *mockPresetService) Get(_ context.Context, name string) (*domain.Preset, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.presets {
		if m.presets[i].Name == name {
			p := m.presets[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockPresetService) List(_ context.Context) ([]domain.Preset, error) {
	return m.presets, m.err
}

func (m *mockPresetService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockPresetService) Export(_ context.Context, _ io.Writer) error {
	return m.err
}

func (m *mockPresetService) Import(_ context.Context, _ io.Reader) (int, error) {
	return 0, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	defaults domain.Defaults
	err      error
}

func (m *mockSettingsService) Get() (*domain.Defaults, error) {
	if m.err != nil {
		return nil, m.err
	}
	d := m.defaults
	return &d, nil
}

func (m *mockSettingsService) Save(_ *domain.Defaults) error { return m.err }
func (m *mockSettingsService) SetDefaultService(_ domain.Service) error { return m.err }
func (m *mockSettingsService) SetDefaultSize(_, _ int) error { return m.err }
func (m *mockSettingsService) SetEndpoints(_ domain.Endpoints) error { return m.err }
func (m *mockSettingsService) Reload() error { return m.err }
func (m *mockSettingsService) GetDefaults() domain.Defaults { return domain.DefaultDefaults() }
