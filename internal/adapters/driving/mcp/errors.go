// Package mcp provides an MCP (Model Context Protocol) server adapter for placehold.
// It lets AI assistants generate placeholder image URLs and tags and read saved presets.
package mcp

import "errors"

// ErrMissingPlaceholderService is returned when the placeholder service is not provided.
var ErrMissingPlaceholderService = errors.New("mcp: placeholder service is required")

// ErrMissingPresetService is returned when a preset is requested without a preset service.
var ErrMissingPresetService = errors.New("mcp: preset service is not configured")
