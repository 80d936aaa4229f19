package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/placehold/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/placehold/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/placehold/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/placehold/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/placehold/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/placehold/internal/core/domain"
)

// editorField binds an input to the spec field it edits.
type editorField struct {
	field domain.Field
	input *input.Field
}

// App is the placeholder editor following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model
	status *status.Bar

	fields []editorField
	focus  int

	// prompt is the preset name input, non-nil while naming a preset.
	prompt *input.Field

	presets     []domain.Preset
	presetIndex int

	// url, tag and err hold the latest preview.
	url string
	tag string
	err error

	showHelp bool
	width    int
	height   int
	ready    bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		help:        help.New(),
		status:      status.NewBar(s, km),
		presetIndex: -1,
		fields: []editorField{
			{domain.FieldWidth, input.NewField(s, "Width", "pixels")},
			{domain.FieldHeight, input.NewField(s, "Height", "pixels")},
			{domain.FieldBackgroundColor, input.NewField(s, "Background", "hex, e.g. cccccc")},
			{domain.FieldColor, input.NewField(s, "Colour", "hex, e.g. 000")},
			{domain.FieldText, input.NewField(s, "Text", "caption")},
			{domain.FieldFormat, input.NewField(s, "Format", "jpg, jpeg, png or gif")},
			{domain.FieldService, input.NewField(s, "Service", "placeholder or placekitten")},
		},
	}

	a.load(ports.Placeholder.New())
	a.fields[0].input.Focus()
	a.refresh()

	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("placehold"),
		a.fields[a.focus].input.Init(),
		a.loadPresets(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keymap.Quit) {
			return a, tea.Quit
		}
		if a.prompt != nil {
			return a, a.updatePrompt(msg)
		}
		return a, a.updateEditor(msg)

	case messages.PresetsLoaded:
		if msg.Err != nil {
			a.status.Set(status.StateError, msg.Err.Error())
			return a, nil
		}
		a.presets = msg.Presets
		return a, nil

	case messages.PresetSaved:
		if msg.Err != nil {
			a.status.Set(status.StateError, msg.Err.Error())
			return a, nil
		}
		a.status.Set(status.StateSaved, fmt.Sprintf("Saved preset %q", msg.Preset.Name))
		return a, a.loadPresets()

	case messages.ErrorOccurred:
		a.status.Set(status.StateError, msg.Err.Error())
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	if a.prompt != nil {
		var cmd tea.Cmd
		a.prompt, cmd = a.prompt.Update(msg)
		return a, cmd
	}
	var cmd tea.Cmd
	a.fields[a.focus].input, cmd = a.fields[a.focus].input.Update(msg)
	return a, cmd
}

func (a *App) updateEditor(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keymap.Help):
		a.showHelp = !a.showHelp
		return nil
	case key.Matches(msg, a.keymap.Next):
		return a.setFocus(a.focus + 1)
	case key.Matches(msg, a.keymap.Prev):
		return a.setFocus(a.focus - 1)
	case key.Matches(msg, a.keymap.ToggleService):
		a.toggleService()
		return nil
	case key.Matches(msg, a.keymap.CycleFormat):
		a.cycleFormat()
		return nil
	case key.Matches(msg, a.keymap.Reset):
		a.load(a.ports.Placeholder.New())
		a.presetIndex = -1
		a.status.Set(status.StateReady, "Reset to defaults")
		a.refresh()
		return nil
	case key.Matches(msg, a.keymap.NextPreset):
		a.nextPreset()
		return nil
	case key.Matches(msg, a.keymap.SavePreset):
		return a.openPrompt()
	}

	var cmd tea.Cmd
	a.fields[a.focus].input, cmd = a.fields[a.focus].input.Update(msg)
	a.refresh()
	return cmd
}

func (a *App) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keymap.Cancel):
		a.closePrompt()
		a.status.Clear()
		return nil
	case key.Matches(msg, a.keymap.Confirm):
		name := strings.TrimSpace(a.prompt.Value())
		a.closePrompt()
		if name == "" {
			a.status.Set(status.StateError, "preset name is required")
			return nil
		}
		return a.savePreset(name)
	}

	var cmd tea.Cmd
	a.prompt, cmd = a.prompt.Update(msg)
	return cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("placehold"))
	b.WriteString("\n\n")

	for _, f := range a.fields {
		b.WriteString(f.input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(a.viewPreview())
	b.WriteString("\n")

	if a.prompt != nil {
		b.WriteString("\n")
		b.WriteString(a.prompt.View())
		b.WriteString("\n")
	}

	if a.showHelp {
		b.WriteString("\n")
		b.WriteString(a.help.FullHelpView(a.keymap.FullHelp()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.status.View())
	return b.String()
}

func (a *App) viewPreview() string {
	var body string
	if a.err != nil {
		body = a.styles.Error.Render(a.err.Error())
	} else {
		swatch := a.styles.Swatch(a.values()[domain.FieldBackgroundColor.String()])
		body = lipgloss.JoinVertical(lipgloss.Left,
			swatch+" "+a.styles.URL.Render(a.url),
			a.styles.Muted.Render(a.tag),
		)
	}

	width := a.width - 2
	if width < 20 {
		width = 20
	}
	return a.styles.Preview.Width(width).Render(body)
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	for _, f := range a.fields {
		f.input.SetWidth(width)
	}
	a.status.SetWidth(width)
	a.help.Width = width
}

// URL returns the current preview URL, or empty when the spec is invalid.
func (a *App) URL() string {
	return a.url
}

// Tag returns the current preview image tag.
func (a *App) Tag() string {
	return a.tag
}

// Err returns the error building the current spec, if any.
func (a *App) Err() error {
	return a.err
}

// Status returns the status bar.
func (a *App) Status() *status.Bar {
	return a.status
}

// Focused returns the field being edited.
func (a *App) Focused() domain.Field {
	return a.fields[a.focus].field
}

// Prompting reports whether the preset name prompt is open.
func (a *App) Prompting() bool {
	return a.prompt != nil
}

// values collects non-empty field values as assignments.
func (a *App) values() map[string]string {
	values := make(map[string]string, len(a.fields))
	for _, f := range a.fields {
		if v := strings.TrimSpace(f.input.Value()); v != "" {
			values[f.field.String()] = v
		}
	}
	return values
}

// spec builds the spec from the configured defaults and the field values.
func (a *App) spec() (domain.PlaceholderSpec, error) {
	return a.ports.Placeholder.Build(a.ports.Placeholder.New(), a.values())
}

// refresh rebuilds the preview from the fields.
func (a *App) refresh() {
	spec, err := a.spec()
	if err == nil {
		a.url, err = a.ports.Placeholder.URL(spec)
	}
	if err == nil {
		a.tag, err = a.ports.Placeholder.ImageTag(spec)
	}
	if err != nil {
		a.url, a.tag = "", ""
	}
	a.err = err
}

// load replaces every field with the spec's values.
func (a *App) load(spec domain.PlaceholderSpec) {
	values := spec.Values()
	for _, f := range a.fields {
		f.input.SetValue(values[f.field.String()])
	}
}

func (a *App) fieldInput(field domain.Field) *input.Field {
	for _, f := range a.fields {
		if f.field == field {
			return f.input
		}
	}
	return nil
}

func (a *App) setFocus(i int) tea.Cmd {
	n := len(a.fields)
	a.fields[a.focus].input.Blur()
	a.focus = ((i % n) + n) % n
	return a.fields[a.focus].input.Focus()
}

func (a *App) toggleService() {
	field := a.fieldInput(domain.FieldService)
	current, err := domain.ParseService(field.Value())
	next := domain.ServicePlacekitten
	if err == nil && current == domain.ServicePlacekitten {
		next = domain.ServicePlaceholder
	}
	field.SetValue(next.String())
	a.refresh()
}

func (a *App) cycleFormat() {
	field := a.fieldInput(domain.FieldFormat)
	formats := append([]domain.ImageFormat{""}, domain.AllImageFormats()...)

	current, _ := domain.ParseImageFormat(field.Value())
	next := formats[0]
	for i, f := range formats {
		if f == current {
			next = formats[(i+1)%len(formats)]
			break
		}
	}
	field.SetValue(next.String())
	a.refresh()
}

func (a *App) nextPreset() {
	if a.ports.Preset == nil {
		a.status.Set(status.StateError, ErrPresetsUnavailable.Error())
		return
	}
	if len(a.presets) == 0 {
		a.status.Set(status.StateError, ErrNoPresets.Error())
		return
	}

	a.presetIndex = (a.presetIndex + 1) % len(a.presets)
	preset := a.presets[a.presetIndex]
	a.load(preset.Spec)
	a.status.Set(status.StateReady, fmt.Sprintf("Loaded preset %q", preset.Name))
	a.refresh()
}

func (a *App) openPrompt() tea.Cmd {
	if a.ports.Preset == nil {
		a.status.Set(status.StateError, ErrPresetsUnavailable.Error())
		return nil
	}
	if a.err != nil {
		a.status.Set(status.StateError, a.err.Error())
		return nil
	}

	a.fields[a.focus].input.Blur()
	a.prompt = input.NewField(a.styles, "Preset name", "e.g. avatar")
	if a.presetIndex >= 0 && a.presetIndex < len(a.presets) {
		a.prompt.SetValue(a.presets[a.presetIndex].Name)
	}
	a.prompt.SetWidth(a.width)
	a.status.Set(status.StatePrompt, "Name this preset")
	return a.prompt.Focus()
}

func (a *App) closePrompt() {
	a.prompt = nil
	a.fields[a.focus].input.Focus()
}

// savePreset returns a command that saves the current spec.
func (a *App) savePreset(name string) tea.Cmd {
	spec, err := a.spec()
	if err != nil {
		return func() tea.Msg { return messages.ErrorOccurred{Err: err} }
	}
	ctx := a.ctx
	presets := a.ports.Preset
	return func() tea.Msg {
		preset, err := presets.Save(ctx, name, spec)
		return messages.PresetSaved{Preset: preset, Err: err}
	}
}

// loadPresets returns a command that loads saved presets, or nil without a preset service.
func (a *App) loadPresets() tea.Cmd {
	if a.ports.Preset == nil {
		return nil
	}
	ctx := a.ctx
	presets := a.ports.Preset
	return func() tea.Msg {
		list, err := presets.List(ctx)
		return messages.PresetsLoaded{Presets: list, Err: err}
	}
}
