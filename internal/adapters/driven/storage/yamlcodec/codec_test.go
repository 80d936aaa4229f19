package yamlcodec

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/placehold/internal/core/domain"
)

func TestCodec_Encode_DocumentShape(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	presets := []domain.Preset{{
		ID:        "ignored",
		Name:      "avatar",
		Spec:      domain.NewPlaceholderSpec().WithSize(150, 200).WithText("Avatar").AsPng(),
		CreatedAt: created,
		UpdatedAt: created,
	}}

	var buf bytes.Buffer
	require.NoError(t, New().Encode(&buf, presets))

	var raw map[string][]map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &raw))
	require.Len(t, raw["presets"], 1)
	entry := raw["presets"][0]
	assert.Equal(t, "avatar", entry["name"])
	assert.NotContains(t, entry, "id")
	spec, ok := entry["spec"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 150, spec["width"])
	assert.Equal(t, 200, spec["height"])
	assert.Equal(t, "Avatar", spec["text"])
	assert.Equal(t, "png", spec["format"])
	assert.Equal(t, "placeholder", spec["service"])
	assert.NotContains(t, spec, "color")
}

func TestCodec_RoundTrip(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	presets := []domain.Preset{
		{Name: "avatar", Spec: domain.NewPlaceholderSpec().WithSize(150, 200).WithText("A & B"), CreatedAt: created, UpdatedAt: created},
		{Name: "cat", Spec: domain.Kitten().WithBackgroundColor("ccc")},
	}

	var buf bytes.Buffer
	require.NoError(t, New().Encode(&buf, presets))
	decoded, err := New().Decode(&buf)

	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, presets[0].Spec, decoded[0].Spec)
	assert.True(t, created.Equal(decoded[0].CreatedAt))
	assert.Equal(t, presets[1].Spec, decoded[1].Spec)
	assert.True(t, decoded[1].CreatedAt.IsZero())
}

func TestCodec_Decode_HandWritten(t *testing.T) {
	input := `
presets:
  - name: hero
    spec:
      width: 1200
      height: 400
      background_color: "333"
      color: fff
  - name: kitten
    spec:
      width: 200
      height: 200
      service: placekitten
`
	presets, err := New().Decode(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, presets, 2)
	assert.Equal(t, "hero", presets[0].Name)
	assert.Equal(t, domain.ServicePlaceholder, presets[0].Spec.Service)
	url, err := presets[0].Spec.URL()
	require.NoError(t, err)
	assert.Equal(t, "http://placehold.it/1200x400/333/fff", url)
	assert.Equal(t, domain.ServicePlacekitten, presets[1].Spec.Service)
}

func TestCodec_Decode_Empty(t *testing.T) {
	presets, err := New().Decode(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, presets)
}

func TestCodec_Decode_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not yaml", "presets: [unterminated"},
		{"unknown field", "presets:\n  - name: x\n    colour: red\n"},
		{"wrong type", "presets:\n  - name: x\n    spec:\n      width: wide\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Decode(strings.NewReader(tt.input))

			require.Error(t, err)
			assert.Contains(t, err.Error(), "yamlcodec")
		})
	}
}

func TestCodec_Decode_NormalisesNames(t *testing.T) {
	input := `
presets:
  - name: cat
    spec:
      width: 200
      height: 300
      service: kitten
  - name: banner
    spec:
      width: 600
      height: 100
      format: .PNG
`
	presets, err := New().Decode(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, presets, 2)
	assert.Equal(t, domain.ServicePlacekitten, presets[0].Spec.Service)
	url, err := presets[0].Spec.URL()
	require.NoError(t, err)
	assert.Equal(t, "http://placekitten.com/200/300", url)
	assert.Equal(t, domain.FormatPNG, presets[1].Spec.Format)
}

func TestCodec_Decode_RejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "format",
			input:   "presets:\n  - name: bad\n    spec:\n      width: 10\n      height: 20\n      format: bmp\n",
			wantErr: domain.ErrUnsupportedFormat,
		},
		{
			name:    "service",
			input:   "presets:\n  - name: bad\n    spec:\n      width: 10\n      height: 20\n      service: lorempixel\n",
			wantErr: domain.ErrUnsupportedService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			presets, err := New().Decode(strings.NewReader(tt.input))

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), `preset "bad"`)
			assert.Nil(t, presets)
		})
	}
}
