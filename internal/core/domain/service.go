package domain

import (
	"fmt"
	"strings"
)

const unknownDescription = "Unknown"

// Service identifies the placeholder image service whose URL convention is emitted.
type Service string

// Available placeholder services.
const (
	// ServicePlaceholder is placehold.it (size, colours, format and caption).
	ServicePlaceholder Service = "placeholder"

	// ServicePlacekitten is placekitten.com (size and greyscale only).
	ServicePlacekitten Service = "placekitten"
)

// serviceAliases maps accepted service names onto canonical services.
var serviceAliases = map[string]Service{
	"placeholder":     ServicePlaceholder,
	"placehold":       ServicePlaceholder,
	"placehold.it":    ServicePlaceholder,
	"placekitten":     ServicePlacekitten,
	"kitten":          ServicePlacekitten,
	"placekitten.com": ServicePlacekitten,
}

// ParseService resolves a service name or alias to a Service.
func ParseService(name string) (Service, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if svc, ok := serviceAliases[key]; ok {
		return svc, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedService, name)
}

// AllServices returns all supported services.
func AllServices() []Service {
	return []Service{ServicePlaceholder, ServicePlacekitten}
}

// IsValid returns true if the service is recognised.
func (s Service) IsValid() bool {
	switch s {
	case ServicePlaceholder, ServicePlacekitten:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s Service) String() string {
	return string(s)
}

// Description returns a human-readable description of the service.
func (s Service) Description() string {
	switch s {
	case ServicePlaceholder:
		return "placehold.it (sizes, colours, formats, captions)"
	case ServicePlacekitten:
		return "placekitten.com (kittens, optional greyscale)"
	default:
		return unknownDescription
	}
}

// ImageFormat is an image file extension understood by placehold.it.
type ImageFormat string

// Available image formats.
const (
	FormatJPG  ImageFormat = "jpg"
	FormatJPEG ImageFormat = "jpeg"
	FormatPNG  ImageFormat = "png"
	FormatGIF  ImageFormat = "gif"
)

// ParseImageFormat resolves a format name such as "png" or ".PNG".
func ParseImageFormat(name string) (ImageFormat, error) {
	f := ImageFormat(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")))
	if !f.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	return f, nil
}

// AllImageFormats returns all supported image formats.
func AllImageFormats() []ImageFormat {
	return []ImageFormat{FormatJPG, FormatJPEG, FormatPNG, FormatGIF}
}

// IsValid returns true if the format is recognised.
func (f ImageFormat) IsValid() bool {
	switch f {
	case FormatJPG, FormatJPEG, FormatPNG, FormatGIF:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f ImageFormat) String() string {
	return string(f)
}
