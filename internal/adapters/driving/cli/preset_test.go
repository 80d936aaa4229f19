package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/placehold/internal/core/domain"
)

func TestPresetSave_And_Use(t *testing.T) {
	s := setupTestServices(t)

	out, err := runCLI(t, "preset", "save", "avatar", "--size", "150x200", "--text", "Avatar")
	require.NoError(t, err)
	assert.Equal(t, "Saved preset \"avatar\"\n", out)

	preset, err := s.Preset.Get(context.Background(), "avatar")
	require.NoError(t, err)
	assert.Equal(t, 150, preset.Spec.Width)
	assert.Equal(t, "Avatar", preset.Spec.Text)

	out, err = runCLI(t, "url", "--preset", "avatar", "--format", "png")
	require.NoError(t, err)
	assert.Equal(t, "http://placehold.it/150x200.png&text=Avatar\n", out)
}

func TestPresetSave_Overwrites(t *testing.T) {
	s := setupTestServices(t)

	_, err := runCLI(t, "preset", "save", "hero", "--size", "1200x400")
	require.NoError(t, err)
	_, err = runCLI(t, "preset", "save", "hero", "--size", "1600x500")
	require.NoError(t, err)

	presets, err := s.Preset.List(context.Background())
	require.NoError(t, err)
	require.Len(t, presets, 1)
	assert.Equal(t, 1600, presets[0].Spec.Width)
}

func TestPresetSave_BlankName(t *testing.T) {
	setupTestServices(t)

	_, err := runCLI(t, "preset", "save", "  ")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPresetList_Empty(t *testing.T) {
	setupTestServices(t)

	out, err := runCLI(t, "preset", "list")

	require.NoError(t, err)
	assert.Equal(t, "No presets saved.\n", out)
}

func TestPresetList_Plain(t *testing.T) {
	setupTestServices(t)
	_, err := runCLI(t, "preset", "save", "thumb", "--size", "100")
	require.NoError(t, err)
	_, err = runCLI(t, "preset", "save", "cat", "--kitten", "--bg", "000")
	require.NoError(t, err)

	out, err := runCLI(t, "preset", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "Presets:")
	assert.Contains(t, out, "Total: 2 presets")
	assert.Contains(t, out, "http://placekitten.com/g/300/150")
	assert.Contains(t, out, "http://placehold.it/100")
	assert.Less(t, strings.Index(out, "cat"), strings.Index(out, "thumb"))
}

func TestPresetShow(t *testing.T) {
	setupTestServices(t)
	_, err := runCLI(t, "preset", "save", "avatar", "--size", "150x200", "--text", "Avatar")
	require.NoError(t, err)

	out, err := runCLI(t, "preset", "show", "avatar")

	require.NoError(t, err)
	assert.Contains(t, out, "Name: avatar")
	assert.Contains(t, out, "  text: Avatar")
	assert.Contains(t, out, "URL: http://placehold.it/150x200&text=Avatar")
	assert.Contains(t, out, `alt="Avatar"`)
}

func TestPresetShow_NotFound(t *testing.T) {
	setupTestServices(t)

	_, err := runCLI(t, "preset", "show", "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPresetDelete(t *testing.T) {
	s := setupTestServices(t)
	_, err := runCLI(t, "preset", "save", "avatar")
	require.NoError(t, err)

	out, err := runCLI(t, "preset", "rm", "avatar")

	require.NoError(t, err)
	assert.Equal(t, "Deleted preset \"avatar\"\n", out)
	_, err = s.Preset.Get(context.Background(), "avatar")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPresetDelete_NotFound(t *testing.T) {
	setupTestServices(t)

	_, err := runCLI(t, "preset", "delete", "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPresetExportImport_File(t *testing.T) {
	setupTestServices(t)
	_, err := runCLI(t, "preset", "save", "avatar", "--size", "150x200", "--text", "Avatar")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "presets.yaml")
	out, err := runCLI(t, "preset", "export", path)
	require.NoError(t, err)
	assert.Equal(t, "Exported presets to "+path+"\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: avatar")

	s := setupTestServices(t)
	out, err = runCLI(t, "preset", "import", path)
	require.NoError(t, err)
	assert.Equal(t, "Imported 1 preset(s)\n", out)

	preset, err := s.Preset.Get(context.Background(), "avatar")
	require.NoError(t, err)
	assert.Equal(t, "Avatar", preset.Spec.Text)
}

func TestPresetExport_Stdout(t *testing.T) {
	setupTestServices(t)
	_, err := runCLI(t, "preset", "save", "cat", "--kitten")
	require.NoError(t, err)

	out, err := runCLI(t, "preset", "export")

	require.NoError(t, err)
	assert.Contains(t, out, "presets:")
	assert.Contains(t, out, "service: placekitten")
}

func TestPresetImport_Stdin(t *testing.T) {
	s := setupTestServices(t)
	input := `presets:
  - name: banner
    spec:
      width: 728
      height: 90
      background_color: "000"
`

	out, err := runCLIWithInput(t, input, "preset", "import", "-")

	require.NoError(t, err)
	assert.Equal(t, "Imported 1 preset(s)\n", out)
	preset, err := s.Preset.Get(context.Background(), "banner")
	require.NoError(t, err)
	assert.Equal(t, domain.ServicePlaceholder, preset.Spec.Service)
	assert.Equal(t, "000", preset.Spec.BackgroundColor)
}

func TestPresetImport_Invalid(t *testing.T) {
	setupTestServices(t)

	_, err := runCLIWithInput(t, "presets: [{nme: x}]\n", "preset", "import", "-")

	assert.Error(t, err)
}

func TestPresetCommands_NoPresetService(t *testing.T) {
	s := setupTestServices(t)
	s.Preset = nil
	SetServices(s)

	_, err := runCLI(t, "preset", "list")

	assert.EqualError(t, err, "preset service not configured")
}
