package domain

import (
	"fmt"
	"html"
	"net/url"
	"strconv"
	"strings"
)

// Default placeholder dimensions.
const (
	DefaultWidth  = 300
	DefaultHeight = 150
)

// defaultAlt is the alt text used when a spec has no caption.
const defaultAlt = "Placeholder"

// PlaceholderSpec describes a placeholder image.
// It is an immutable value: every setter returns an updated copy, so a
// spec can be shared freely and used as a template for variants.
//
// Optional string fields are unset only when empty. Any other value,
// including "0", is a real value and appears in the URL.
type PlaceholderSpec struct {
	Width           int         `json:"width" yaml:"width"`
	Height          int         `json:"height" yaml:"height"`
	Color           string      `json:"color,omitempty" yaml:"color,omitempty"`
	BackgroundColor string      `json:"background_color,omitempty" yaml:"background_color,omitempty"`
	Text            string      `json:"text,omitempty" yaml:"text,omitempty"`
	Format          ImageFormat `json:"format,omitempty" yaml:"format,omitempty"`
	Service         Service     `json:"service" yaml:"service"`
}

// NewPlaceholderSpec returns a spec with the default size and service.
func NewPlaceholderSpec() PlaceholderSpec {
	return PlaceholderSpec{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Service: ServicePlaceholder,
	}
}

// Placehold returns a default spec targeting placehold.it.
func Placehold() PlaceholderSpec {
	return NewPlaceholderSpec()
}

// Kitten returns a default spec targeting placekitten.com.
func Kitten() PlaceholderSpec {
	return NewPlaceholderSpec().WithService(ServicePlacekitten)
}

// WithWidth returns a copy with the given width.
func (p PlaceholderSpec) WithWidth(width int) PlaceholderSpec {
	p.Width = width
	return p
}

// WithHeight returns a copy with the given height.
func (p PlaceholderSpec) WithHeight(height int) PlaceholderSpec {
	p.Height = height
	return p
}

// WithSize returns a copy with the given width and height.
func (p PlaceholderSpec) WithSize(width, height int) PlaceholderSpec {
	p.Width = width
	p.Height = height
	return p
}

// WithColor returns a copy with the given foreground (text) colour.
func (p PlaceholderSpec) WithColor(color string) PlaceholderSpec {
	p.Color = color
	return p
}

// WithBackgroundColor returns a copy with the given background colour.
func (p PlaceholderSpec) WithBackgroundColor(color string) PlaceholderSpec {
	p.BackgroundColor = color
	return p
}

// WithText returns a copy with the given caption.
func (p PlaceholderSpec) WithText(text string) PlaceholderSpec {
	p.Text = text
	return p
}

// WithFormat returns a copy with the given image format.
func (p PlaceholderSpec) WithFormat(format ImageFormat) PlaceholderSpec {
	p.Format = format
	return p
}

// AsJpg returns a copy with format jpg.
func (p PlaceholderSpec) AsJpg() PlaceholderSpec { return p.WithFormat(FormatJPG) }

// AsJpeg returns a copy with format jpeg.
func (p PlaceholderSpec) AsJpeg() PlaceholderSpec { return p.WithFormat(FormatJPEG) }

// AsPng returns a copy with format png.
func (p PlaceholderSpec) AsPng() PlaceholderSpec { return p.WithFormat(FormatPNG) }

// AsGif returns a copy with format gif.
func (p PlaceholderSpec) AsGif() PlaceholderSpec { return p.WithFormat(FormatGIF) }

// WithService returns a copy targeting the given service.
func (p PlaceholderSpec) WithService(service Service) PlaceholderSpec {
	p.Service = service
	return p
}

// Greyscale reports whether a placekitten URL asks for the greyscale variant.
// The background colour must be set and consist of one repeated character
// (e.g. "ccc" or "000000"); an unset background means a colour image.
func (p PlaceholderSpec) Greyscale() bool {
	if p.BackgroundColor == "" {
		return false
	}
	first := p.BackgroundColor[0]
	for i := 1; i < len(p.BackgroundColor); i++ {
		if p.BackgroundColor[i] != first {
			return false
		}
	}
	return true
}

// URL returns the image URL on the default service hosts.
func (p PlaceholderSpec) URL() (string, error) {
	return p.URLFor(DefaultEndpoints())
}

// URLFor returns the image URL using the given endpoints.
func (p PlaceholderSpec) URLFor(endpoints Endpoints) (string, error) {
	endpoints = endpoints.withDefaults()

	var b strings.Builder
	b.WriteString(endpoints.Scheme)
	b.WriteString("://")

	switch p.Service {
	case ServicePlaceholder:
		b.WriteString(endpoints.PlaceholderHost)
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(p.Width))
		if p.Width != p.Height {
			b.WriteByte('x')
			b.WriteString(strconv.Itoa(p.Height))
		}
		if p.BackgroundColor != "" {
			b.WriteByte('/')
			b.WriteString(p.BackgroundColor)
		}
		if p.Color != "" {
			b.WriteByte('/')
			b.WriteString(p.Color)
		}
		if p.Format != "" {
			b.WriteByte('.')
			b.WriteString(string(p.Format))
		}
		if p.Text != "" {
			b.WriteString("&text=")
			b.WriteString(url.QueryEscape(p.Text))
		}

	case ServicePlacekitten:
		b.WriteString(endpoints.PlacekittenHost)
		b.WriteByte('/')
		if p.Greyscale() {
			b.WriteString("g/")
		}
		b.WriteString(strconv.Itoa(p.Width))
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(p.Height))

	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedService, p.Service)
	}

	return b.String(), nil
}

// ImageTag returns an HTML img element for the image on the default hosts.
func (p PlaceholderSpec) ImageTag() (string, error) {
	return p.ImageTagFor(DefaultEndpoints())
}

// ImageTagFor returns an HTML img element using the given endpoints.
func (p PlaceholderSpec) ImageTagFor(endpoints Endpoints) (string, error) {
	src, err := p.URLFor(endpoints)
	if err != nil {
		return "", err
	}

	alt := p.Text
	if alt == "" {
		alt = defaultAlt
	}

	return fmt.Sprintf(`<img src="%s" width="%d" height="%d" alt="%s" />`,
		html.EscapeString(src), p.Width, p.Height, html.EscapeString(alt)), nil
}
