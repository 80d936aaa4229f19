package mcp

import (
	"context"
	"fmt"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/placehold/internal/core/domain"
)

// PlaceholderInput is the input schema for the placeholder tools.
// Zero values leave the configured default (or the preset's value) in place.
type PlaceholderInput struct {
	Width           int    `json:"width,omitempty" jsonschema:"image width in pixels"`
	Height          int    `json:"height,omitempty" jsonschema:"image height in pixels (defaults to the configured height)"`
	Color           string `json:"color,omitempty" jsonschema:"text colour as hex without #, e.g. fff"`
	BackgroundColor string `json:"background_color,omitempty" jsonschema:"background colour as hex without #, e.g. 333"`
	Text            string `json:"text,omitempty" jsonschema:"caption rendered on the image"`
	Format          string `json:"format,omitempty" jsonschema:"image format: jpg, jpeg, png or gif"`
	Service         string `json:"service,omitempty" jsonschema:"placeholder (placehold.it) or placekitten (placekitten.com)"`
	Preset          string `json:"preset,omitempty" jsonschema:"name of a saved preset to start from"`
}

// URLOutput is the output schema for the placeholder_url tool.
type URLOutput struct {
	URL       string `json:"url"`
	Service   string `json:"service"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Greyscale bool   `json:"greyscale"`
}

// ImageOutput is the output schema for the placeholder_image tool.
type ImageOutput struct {
	Tag string `json:"tag"`
	URL string `json:"url"`
}

// ListPresetsInput is the (empty) input schema for the preset_list tool.
type ListPresetsInput struct{}

// ListPresetsOutput is the output schema for the preset_list tool.
type ListPresetsOutput struct {
	Presets []PresetOutput `json:"presets"`
	Count   int            `json:"count"`
}

// PresetOutput represents a single saved preset.
type PresetOutput struct {
	Name    string `json:"name"`
	Service string `json:"service"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	URL     string `json:"url"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "placeholder_url",
		Description: "Build a placeholder image URL for placehold.it or placekitten.com",
	}, s.handlePlaceholderURL)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "placeholder_image",
		Description: "Build an HTML <img> tag for a placeholder image",
	}, s.handlePlaceholderImage)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "preset_list",
		Description: "List saved placeholder presets with their URLs",
	}, s.handlePresetList)
}

// handlePlaceholderURL handles the placeholder_url tool invocation.
func (s *Server) handlePlaceholderURL(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PlaceholderInput,
) (*mcp.CallToolResult, URLOutput, error) {
	spec, err := s.buildSpec(ctx, input)
	if err != nil {
		return nil, URLOutput{}, err
	}

	url, err := s.ports.Placeholder.URL(spec)
	if err != nil {
		return nil, URLOutput{}, err
	}

	return nil, URLOutput{
		URL:       url,
		Service:   spec.Service.String(),
		Width:     spec.Width,
		Height:    spec.Height,
		Greyscale: spec.Service == domain.ServicePlacekitten && spec.Greyscale(),
	}, nil
}

// handlePlaceholderImage handles the placeholder_image tool invocation.
func (s *Server) handlePlaceholderImage(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PlaceholderInput,
) (*mcp.CallToolResult, ImageOutput, error) {
	spec, err := s.buildSpec(ctx, input)
	if err != nil {
		return nil, ImageOutput{}, err
	}

	url, err := s.ports.Placeholder.URL(spec)
	if err != nil {
		return nil, ImageOutput{}, err
	}
	tag, err := s.ports.Placeholder.ImageTag(spec)
	if err != nil {
		return nil, ImageOutput{}, err
	}

	return nil, ImageOutput{Tag: tag, URL: url}, nil
}

// handlePresetList handles the preset_list tool invocation.
func (s *Server) handlePresetList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListPresetsInput,
) (*mcp.CallToolResult, ListPresetsOutput, error) {
	presets, err := s.listPresets(ctx)
	if err != nil {
		return nil, ListPresetsOutput{}, err
	}
	return nil, ListPresetsOutput{Presets: presets, Count: len(presets)}, nil
}

// buildSpec resolves tool input into a spec.
func (s *Server) buildSpec(ctx context.Context, input PlaceholderInput) (domain.PlaceholderSpec, error) {
	base := s.ports.Placeholder.New()
	if input.Preset != "" {
		if s.ports.Preset == nil {
			return domain.PlaceholderSpec{}, ErrMissingPresetService
		}
		preset, err := s.ports.Preset.Get(ctx, input.Preset)
		if err != nil {
			return domain.PlaceholderSpec{}, fmt.Errorf("preset %q: %w", input.Preset, err)
		}
		base = preset.Spec
	}

	return s.ports.Placeholder.Build(base, inputValues(input))
}

// inputValues converts tool input into field assignments.
func inputValues(input PlaceholderInput) map[string]string {
	values := make(map[string]string)
	if input.Width > 0 {
		values[domain.FieldWidth.String()] = strconv.Itoa(input.Width)
	}
	if input.Height > 0 {
		values[domain.FieldHeight.String()] = strconv.Itoa(input.Height)
	}
	if input.Color != "" {
		values[domain.FieldColor.String()] = input.Color
	}
	if input.BackgroundColor != "" {
		values[domain.FieldBackgroundColor.String()] = input.BackgroundColor
	}
	if input.Text != "" {
		values[domain.FieldText.String()] = input.Text
	}
	if input.Format != "" {
		values[domain.FieldFormat.String()] = input.Format
	}
	if input.Service != "" {
		values[domain.FieldService.String()] = input.Service
	}
	return values
}

// listPresets returns saved presets with their URLs.
// Without a preset service the list is empty.
func (s *Server) listPresets(ctx context.Context) ([]PresetOutput, error) {
	if s.ports.Preset == nil {
		return []PresetOutput{}, nil
	}

	presets, err := s.ports.Preset.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing presets: %w", err)
	}

	out := make([]PresetOutput, 0, len(presets))
	for i := range presets {
		url, err := s.ports.Placeholder.URL(presets[i].Spec)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", presets[i].Name, err)
		}
		out = append(out, PresetOutput{
			Name:    presets[i].Name,
			Service: presets[i].Spec.Service.String(),
			Width:   presets[i].Spec.Width,
			Height:  presets[i].Spec.Height,
			URL:     url,
		})
	}
	return out, nil
}
