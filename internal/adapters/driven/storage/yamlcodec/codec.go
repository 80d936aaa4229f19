// Package yamlcodec encodes presets as a YAML document for export and import.
//
// The document shape is:
//
//	presets:
//	  - name: avatar
//	    spec:
//	      width: 150
//	      height: 200
//	      text: Avatar
//	      service: placeholder
package yamlcodec

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/placehold/internal/core/domain"
	"github.com/custodia-labs/placehold/internal/core/ports/driven"
)

// Ensure Codec implements the interface.
var _ driven.PresetCodec = Codec{}

// Codec is a YAML implementation of driven.PresetCodec.
type Codec struct{}

// New returns a YAML preset codec.
func New() Codec {
	return Codec{}
}

type document struct {
	Presets []presetEntry `yaml:"presets"`
}

type presetEntry struct {
	Name      string                 `yaml:"name"`
	Spec      domain.PlaceholderSpec `yaml:"spec"`
	CreatedAt *time.Time             `yaml:"created_at,omitempty"`
	UpdatedAt *time.Time             `yaml:"updated_at,omitempty"`
}

// Encode writes presets to w as a single YAML document.
func (Codec) Encode(w io.Writer, presets []domain.Preset) error {
	doc := document{Presets: make([]presetEntry, 0, len(presets))}
	for _, p := range presets {
		entry := presetEntry{Name: p.Name, Spec: p.Spec}
		if !p.CreatedAt.IsZero() {
			created := p.CreatedAt
			entry.CreatedAt = &created
		}
		if !p.UpdatedAt.IsZero() {
			updated := p.UpdatedAt
			entry.UpdatedAt = &updated
		}
		doc.Presets = append(doc.Presets, entry)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("yamlcodec: encode presets: %w", err)
	}
	return enc.Close()
}

// Decode reads presets from r. An empty input yields no presets.
// Entries without a service default to placehold.it. Service and format
// names are normalised the same way Set does, and the whole document is
// rejected if any entry names an unknown one.
func (Codec) Decode(r io.Reader) ([]domain.Preset, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []domain.Preset{}, nil
		}
		return nil, fmt.Errorf("yamlcodec: decode presets: %w", err)
	}

	presets := make([]domain.Preset, 0, len(doc.Presets))
	for _, entry := range doc.Presets {
		if entry.Spec.Service == "" {
			entry.Spec.Service = domain.ServicePlaceholder
		}
		spec, err := domain.NewPlaceholderSpec().Fill(entry.Spec.Values())
		if err != nil {
			return nil, fmt.Errorf("yamlcodec: preset %q: %w", entry.Name, err)
		}
		preset := domain.Preset{Name: entry.Name, Spec: spec}
		if entry.CreatedAt != nil {
			preset.CreatedAt = *entry.CreatedAt
		}
		if entry.UpdatedAt != nil {
			preset.UpdatedAt = *entry.UpdatedAt
		}
		presets = append(presets, preset)
	}
	return presets, nil
}
