package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()
	require.NotNil(t, km)

	tests := []struct {
		name    string
		binding key.Binding
		key     string
	}{
		{"quit", km.Quit, "ctrl+c"},
		{"help", km.Help, "f1"},
		{"next tab", km.Next, "tab"},
		{"next down", km.Next, "down"},
		{"prev", km.Prev, "shift+tab"},
		{"toggle service", km.ToggleService, "ctrl+t"},
		{"cycle format", km.CycleFormat, "ctrl+f"},
		{"save preset", km.SavePreset, "ctrl+s"},
		{"next preset", km.NextPreset, "ctrl+p"},
		{"reset", km.Reset, "ctrl+r"},
		{"confirm", km.Confirm, "enter"},
		{"cancel", km.Cancel, "esc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Matches(tt.key, tt.binding))
		})
	}
}

func TestDefaultKeyMap_NoPlainLetters(t *testing.T) {
	km := DefaultKeyMap()

	for _, group := range km.FullHelp() {
		for _, b := range group {
			for _, k := range b.Keys() {
				assert.Greater(t, len(k), 1, "binding %q would swallow typed input", k)
			}
		}
	}
}

func TestKeyMap_HelpGroups(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 4)
	assert.Len(t, km.PromptHelp(), 2)
	assert.Len(t, km.FullHelp(), 4)
}

func TestMatches(t *testing.T) {
	binding := key.NewBinding(key.WithKeys("a", "b"))

	assert.True(t, Matches("a", binding))
	assert.True(t, Matches("b", binding))
	assert.False(t, Matches("c", binding))
	assert.False(t, Matches("", binding))
}
