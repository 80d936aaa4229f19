package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/placehold/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for placehold resources.
	uriScheme = "placehold://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "presets",
		Name:        "presets",
		Description: "Saved placeholder presets with their URLs",
		MIMEType:    "application/json",
	}, s.handlePresetsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "presets/{name}",
		Name:        "preset",
		Description: "A single saved preset with its spec, URL and image tag",
		MIMEType:    "application/json",
	}, s.handlePresetResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Default service, size and endpoints",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

// handlePresetsResource returns all saved presets.
func (s *Server) handlePresetsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	presets, err := s.listPresets(ctx)
	if err != nil {
		return nil, err
	}
	return jsonResource(req.Params.URI, presets)
}

// handlePresetResource returns a single preset.
func (s *Server) handlePresetResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Preset == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// placehold://presets/{name}
	name := extractPresetName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	preset, err := s.ports.Preset.Get(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting preset: %w", err)
	}

	imageURL, err := s.ports.Placeholder.URL(preset.Spec)
	if err != nil {
		return nil, err
	}
	tag, err := s.ports.Placeholder.ImageTag(preset.Spec)
	if err != nil {
		return nil, err
	}

	type presetInfo struct {
		Name string                 `json:"name"`
		Spec domain.PlaceholderSpec `json:"spec"`
		URL  string                 `json:"url"`
		Tag  string                 `json:"tag"`
	}
	return jsonResource(req.Params.URI, presetInfo{Name: preset.Name, Spec: preset.Spec, URL: imageURL, Tag: tag})
}

// handleSettingsResource returns the configured defaults.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	defaults := domain.DefaultDefaults()
	if s.ports.Settings != nil {
		d, err := s.ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("getting settings: %w", err)
		}
		defaults = *d
	}

	type settingsInfo struct {
		Service         string `json:"service"`
		Width           int    `json:"width"`
		Height          int    `json:"height"`
		Scheme          string `json:"scheme"`
		PlaceholderHost string `json:"placeholder_host"`
		PlacekittenHost string `json:"placekitten_host"`
	}
	return jsonResource(req.Params.URI, settingsInfo{
		Service:         defaults.Service.String(),
		Width:           defaults.Width,
		Height:          defaults.Height,
		Scheme:          defaults.Endpoints.Scheme,
		PlaceholderHost: defaults.Endpoints.PlaceholderHost,
		PlacekittenHost: defaults.Endpoints.PlacekittenHost,
	})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractPresetName extracts the preset name from a URI like placehold://presets/{name}.
func extractPresetName(uri string) string {
	const prefix = uriScheme + "presets/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	name := strings.TrimPrefix(uri, prefix)
	if strings.Contains(name, "/") {
		return ""
	}
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	return name
}
