package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/placehold/internal/adapters/driving/tui/styles"
)

func TestNewField(t *testing.T) {
	field := NewField(styles.DefaultStyles(), "Width", "300")

	require.NotNil(t, field)
	assert.Equal(t, "Width", field.Label())
	assert.Empty(t, field.Value())
	assert.False(t, field.Focused())
}

func TestNewField_NilStyles(t *testing.T) {
	field := NewField(nil, "Text", "")

	require.NotNil(t, field)
	assert.NotNil(t, field.styles)
}

func TestField_Init(t *testing.T) {
	assert.NotNil(t, NewField(nil, "Width", "").Init())
}

func TestField_TypingRequiresFocus(t *testing.T) {
	field := NewField(nil, "Text", "")
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}

	field.Update(msg)
	assert.Empty(t, field.Value())

	field.Focus()
	updated, _ := field.Update(msg)

	assert.Equal(t, field, updated)
	assert.Equal(t, "a", field.Value())
}

func TestField_SetValueAndReset(t *testing.T) {
	field := NewField(nil, "Background", "")

	field.SetValue("cccccc")
	assert.Equal(t, "cccccc", field.Value())

	field.Reset()
	assert.Empty(t, field.Value())
}

func TestField_FocusAndBlur(t *testing.T) {
	field := NewField(nil, "Width", "")

	field.Focus()
	assert.True(t, field.Focused())

	field.Blur()
	assert.False(t, field.Focused())
}

func TestField_View(t *testing.T) {
	field := NewField(nil, "Width", "")
	field.SetValue("640")

	view := field.View()

	assert.Contains(t, view, "Width")
	assert.Contains(t, view, "640")
}

func TestField_SetWidth(t *testing.T) {
	field := NewField(nil, "Width", "")

	field.SetWidth(60)
	assert.Equal(t, 60, field.Width())

	field.SetWidth(5)
	assert.Equal(t, 5, field.Width())
	assert.Equal(t, 10, field.textinput.Width)
}
