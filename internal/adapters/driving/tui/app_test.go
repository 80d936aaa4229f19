package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/placehold/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/placehold/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/placehold/internal/core/domain"
)

func newTestPorts() *Ports {
	return &Ports{
		Placeholder: &MockPlaceholderService{},
		Preset:      &MockPresetService{},
	}
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)
	app.SetDimensions(80, 24)
	return app
}

func press(app *App, keyType tea.KeyType) tea.Cmd {
	_, cmd := app.Update(tea.KeyMsg{Type: keyType})
	return cmd
}

func typeText(app *App, text string) {
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

// focusField tabs forward until the given field has focus.
func focusField(t *testing.T, app *App, field domain.Field) {
	t.Helper()
	for range domain.AllFields() {
		if app.Focused() == field {
			return
		}
		press(app, tea.KeyTab)
	}
	require.Equal(t, field, app.Focused())
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(newTestPorts())

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, domain.FieldWidth, app.Focused())
	assert.Equal(t, "http://placehold.it/300x150", app.URL())
	assert.NoError(t, app.Err())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.ErrorIs(t, err, ErrMissingPlaceholderService)
	assert.Nil(t, app)
}

func TestNewApp_SeedsFromDefaults(t *testing.T) {
	ports := &Ports{
		Placeholder: &MockPlaceholderService{
			Defaults: domain.Kitten().WithSize(200, 100).WithBackgroundColor("ccc"),
		},
	}

	app, err := NewApp(ports)

	require.NoError(t, err)
	assert.Equal(t, "http://placekitten.com/g/200/100", app.URL())
}

func TestApp_WithContext(t *testing.T) {
	app := newTestApp(t)

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Equal(t, app, app.WithContext(ctx))
}

func TestApp_Init(t *testing.T) {
	app := newTestApp(t)

	assert.NotNil(t, app.Init())
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)

	model, cmd := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, app, model)
	assert.Nil(t, cmd)
	assert.Equal(t, 100, app.width)
	assert.Equal(t, 100, app.Status().Width())
}

func TestApp_View_NotReady(t *testing.T) {
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_View_ShowsPreview(t *testing.T) {
	app := newTestApp(t)

	view := app.View()

	assert.Contains(t, view, "placehold")
	assert.Contains(t, view, "Width")
	assert.Contains(t, view, "http://placehold.it/300x150")
	assert.Contains(t, view, `alt="Placeholder"`)
}

func TestApp_Update_KeyMsg_Quit(t *testing.T) {
	app := newTestApp(t)

	cmd := press(app, tea.KeyCtrlC)

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_QuitMessage(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_KeyMsg_FocusWraps(t *testing.T) {
	app := newTestApp(t)

	press(app, tea.KeyShiftTab)
	assert.Equal(t, domain.FieldService, app.Focused())

	press(app, tea.KeyTab)
	assert.Equal(t, domain.FieldWidth, app.Focused())

	press(app, tea.KeyDown)
	assert.Equal(t, domain.FieldHeight, app.Focused())
}

func TestApp_Update_TypingRefreshesPreview(t *testing.T) {
	app := newTestApp(t)
	focusField(t, app, domain.FieldText)

	typeText(app, "Hello World")

	assert.Equal(t, "http://placehold.it/300x150&text=Hello+World", app.URL())
	assert.Contains(t, app.Tag(), `alt="Hello World"`)
}

func TestApp_Update_TypingColours(t *testing.T) {
	app := newTestApp(t)
	focusField(t, app, domain.FieldBackgroundColor)
	typeText(app, "333")
	focusField(t, app, domain.FieldColor)
	typeText(app, "fff")

	assert.Equal(t, "http://placehold.it/300x150/333/fff", app.URL())
}

func TestApp_Update_InvalidInputShowsError(t *testing.T) {
	app := newTestApp(t)
	focusField(t, app, domain.FieldFormat)

	typeText(app, "bmp")

	assert.ErrorIs(t, app.Err(), domain.ErrUnsupportedFormat)
	assert.Empty(t, app.URL())
	assert.Contains(t, app.View(), "unsupported image format")
}

func TestApp_Update_ToggleService(t *testing.T) {
	app := newTestApp(t)

	press(app, tea.KeyCtrlT)
	assert.Equal(t, "http://placekitten.com/300/150", app.URL())

	press(app, tea.KeyCtrlT)
	assert.Equal(t, "http://placehold.it/300x150", app.URL())
}

func TestApp_Update_CycleFormat(t *testing.T) {
	app := newTestApp(t)

	press(app, tea.KeyCtrlF)
	assert.Equal(t, "http://placehold.it/300x150.jpg", app.URL())

	press(app, tea.KeyCtrlF)
	assert.Equal(t, "http://placehold.it/300x150.jpeg", app.URL())

	press(app, tea.KeyCtrlF)
	press(app, tea.KeyCtrlF)
	assert.Equal(t, "http://placehold.it/300x150.gif", app.URL())

	press(app, tea.KeyCtrlF)
	assert.Equal(t, "http://placehold.it/300x150", app.URL())
}

func TestApp_Update_Reset(t *testing.T) {
	app := newTestApp(t)
	press(app, tea.KeyCtrlT)
	press(app, tea.KeyCtrlF)

	press(app, tea.KeyCtrlR)

	assert.Equal(t, "http://placehold.it/300x150", app.URL())
	assert.Equal(t, "Reset to defaults", app.Status().Message())
}

func TestApp_Update_Help(t *testing.T) {
	app := newTestApp(t)

	press(app, tea.KeyF1)

	assert.True(t, app.showHelp)
	assert.Contains(t, app.View(), "toggle service")
}

func TestApp_Update_PresetsLoadedCycle(t *testing.T) {
	app := newTestApp(t)
	app.Update(messages.PresetsLoaded{Presets: []domain.Preset{
		{Name: "avatar", Spec: domain.NewPlaceholderSpec().WithSize(150, 200).WithText("Avatar")},
		{Name: "kitten", Spec: domain.Kitten().WithSize(200, 300)},
	}})

	press(app, tea.KeyCtrlP)
	assert.Equal(t, "http://placehold.it/150x200&text=Avatar", app.URL())
	assert.Equal(t, `Loaded preset "avatar"`, app.Status().Message())

	press(app, tea.KeyCtrlP)
	assert.Equal(t, "http://placekitten.com/200/300", app.URL())

	press(app, tea.KeyCtrlP)
	assert.Equal(t, "http://placehold.it/150x200&text=Avatar", app.URL())
}

func TestApp_Update_PresetsLoadedError(t *testing.T) {
	app := newTestApp(t)

	app.Update(messages.PresetsLoaded{Err: errors.New("disk on fire")})

	assert.Equal(t, status.StateError, app.Status().State())
	assert.Equal(t, "disk on fire", app.Status().Message())
}

func TestApp_Update_NextPreset_NoneSaved(t *testing.T) {
	app := newTestApp(t)

	press(app, tea.KeyCtrlP)

	assert.Equal(t, status.StateError, app.Status().State())
	assert.Equal(t, ErrNoPresets.Error(), app.Status().Message())
}

func TestApp_Update_PresetsUnavailable(t *testing.T) {
	app, err := NewApp(&Ports{Placeholder: &MockPlaceholderService{}})
	require.NoError(t, err)

	press(app, tea.KeyCtrlS)
	assert.False(t, app.Prompting())
	assert.Equal(t, ErrPresetsUnavailable.Error(), app.Status().Message())

	press(app, tea.KeyCtrlP)
	assert.Equal(t, ErrPresetsUnavailable.Error(), app.Status().Message())
}

func TestApp_SavePreset(t *testing.T) {
	var saved domain.PlaceholderSpec
	var savedName string
	ports := newTestPorts()
	ports.Preset = &MockPresetService{
		SaveFunc: func(_ context.Context, name string, spec domain.PlaceholderSpec) (*domain.Preset, error) {
			savedName, saved = name, spec
			return &domain.Preset{Name: name, Spec: spec}, nil
		},
	}
	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(80, 24)
	press(app, tea.KeyCtrlT)

	press(app, tea.KeyCtrlS)
	require.True(t, app.Prompting())
	assert.Equal(t, status.StatePrompt, app.Status().State())

	typeText(app, "banner")
	cmd := press(app, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.False(t, app.Prompting())

	msg := cmd()
	savedMsg, ok := msg.(messages.PresetSaved)
	require.True(t, ok)
	require.NoError(t, savedMsg.Err)
	assert.Equal(t, "banner", savedName)
	assert.Equal(t, domain.ServicePlacekitten, saved.Service)

	_, reload := app.Update(savedMsg)
	assert.NotNil(t, reload)
	assert.Equal(t, status.StateSaved, app.Status().State())
	assert.Equal(t, `Saved preset "banner"`, app.Status().Message())
}

func TestApp_SavePreset_EmptyName(t *testing.T) {
	app := newTestApp(t)

	press(app, tea.KeyCtrlS)
	cmd := press(app, tea.KeyEnter)

	assert.Nil(t, cmd)
	assert.False(t, app.Prompting())
	assert.Equal(t, status.StateError, app.Status().State())
}

func TestApp_SavePreset_Cancel(t *testing.T) {
	app := newTestApp(t)

	press(app, tea.KeyCtrlS)
	typeText(app, "draft")
	press(app, tea.KeyEsc)

	assert.False(t, app.Prompting())
	assert.Equal(t, status.StateReady, app.Status().State())
}

func TestApp_SavePreset_InvalidSpec(t *testing.T) {
	app := newTestApp(t)
	focusField(t, app, domain.FieldService)
	typeText(app, "x")

	press(app, tea.KeyCtrlS)

	assert.False(t, app.Prompting())
	assert.Equal(t, status.StateError, app.Status().State())
}

func TestApp_Update_PresetSavedError(t *testing.T) {
	app := newTestApp(t)

	_, cmd := app.Update(messages.PresetSaved{Err: domain.ErrAlreadyExists})

	assert.Nil(t, cmd)
	assert.Equal(t, domain.ErrAlreadyExists.Error(), app.Status().Message())
}

func TestApp_Update_ErrorOccurred(t *testing.T) {
	app := newTestApp(t)

	app.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.Equal(t, status.StateError, app.Status().State())
	assert.Equal(t, "boom", app.Status().Message())
}

func TestApp_LoadPresets(t *testing.T) {
	ports := newTestPorts()
	ports.Preset = &MockPresetService{
		ListFunc: func(_ context.Context) ([]domain.Preset, error) {
			return []domain.Preset{{Name: "avatar", Spec: domain.NewPlaceholderSpec()}}, nil
		},
	}
	app, err := NewApp(ports)
	require.NoError(t, err)

	msg := app.loadPresets()()
	app.Update(msg)

	require.Len(t, app.presets, 1)
	assert.Equal(t, "avatar", app.presets[0].Name)
}
