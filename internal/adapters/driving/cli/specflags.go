package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/placehold/internal/core/domain"
)

// specFlags holds the flags shared by every command that builds a spec.
type specFlags struct {
	width   int
	height  int
	size    string
	color   string
	bg      string
	text    string
	format  string
	service string
	kitten  bool
	preset  string
	set     []string
}

func (f *specFlags) register(fs *pflag.FlagSet) {
	fs.IntVarP(&f.width, "width", "W", 0, "image width in pixels")
	fs.IntVarP(&f.height, "height", "H", 0, "image height in pixels")
	fs.StringVar(&f.size, "size", "", "image size as WxH, or N for a square")
	fs.StringVar(&f.color, "color", "", "text colour (hex, without #)")
	fs.StringVar(&f.bg, "bg", "", "background colour (hex, without #)")
	fs.StringVar(&f.text, "text", "", "caption rendered on the image")
	fs.StringVar(&f.format, "format", "", "image format: jpg, jpeg, png or gif")
	fs.StringVar(&f.service, "service", "", "service: placeholder or placekitten")
	fs.BoolVar(&f.kitten, "kitten", false, "shorthand for --service placekitten")
	fs.StringVar(&f.preset, "preset", "", "start from a saved preset")
	fs.StringArrayVar(&f.set, "set", nil, "set a field as field=value (repeatable)")
}

// values collects the field assignments from flags that were given.
// Later sources win: --size, then individual flags, then --set.
func (f *specFlags) values(fs *pflag.FlagSet) (map[string]string, error) {
	values := make(map[string]string)

	if fs.Changed("size") {
		w, h, err := parseSize(f.size)
		if err != nil {
			return nil, err
		}
		values[domain.FieldWidth.String()] = strconv.Itoa(w)
		values[domain.FieldHeight.String()] = strconv.Itoa(h)
	}
	if fs.Changed("width") {
		values[domain.FieldWidth.String()] = strconv.Itoa(f.width)
	}
	if fs.Changed("height") {
		values[domain.FieldHeight.String()] = strconv.Itoa(f.height)
	}
	if fs.Changed("color") {
		values[domain.FieldColor.String()] = f.color
	}
	if fs.Changed("bg") {
		values[domain.FieldBackgroundColor.String()] = f.bg
	}
	if fs.Changed("text") {
		values[domain.FieldText.String()] = f.text
	}
	if fs.Changed("format") {
		values[domain.FieldFormat.String()] = f.format
	}
	if f.kitten {
		values[domain.FieldService.String()] = domain.ServicePlacekitten.String()
	}
	if fs.Changed("service") {
		values[domain.FieldService.String()] = f.service
	}

	for _, assignment := range f.set {
		name, value, ok := strings.Cut(assignment, "=")
		if !ok {
			return nil, fmt.Errorf("%w: --set expects field=value, got %q", domain.ErrInvalidInput, assignment)
		}
		field, err := domain.ParseField(name)
		if err != nil {
			return nil, err
		}
		values[field.String()] = value
	}

	return values, nil
}

// build resolves the flags into a spec, starting from the configured
// defaults or from a named preset.
func (f *specFlags) build(ctx context.Context, cmd *cobra.Command) (domain.PlaceholderSpec, error) {
	if err := requirePlaceholderService(); err != nil {
		return domain.PlaceholderSpec{}, err
	}

	base := placeholderService.New()
	if f.preset != "" {
		if err := requirePresetService(); err != nil {
			return domain.PlaceholderSpec{}, err
		}
		preset, err := presetService.Get(ctx, f.preset)
		if err != nil {
			return domain.PlaceholderSpec{}, fmt.Errorf("preset %q: %w", f.preset, err)
		}
		base = preset.Spec
	}

	values, err := f.values(cmd.Flags())
	if err != nil {
		return domain.PlaceholderSpec{}, err
	}
	return placeholderService.Build(base, values)
}

// parseSize accepts "WxH" or "N".
func parseSize(s string) (int, int, error) {
	raw := strings.ToLower(strings.TrimSpace(s))
	wStr, hStr, found := strings.Cut(raw, "x")
	if !found {
		hStr = wStr
	}

	w, err := strconv.Atoi(wStr)
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("%w: size must be WxH or N, got %q", domain.ErrInvalidInput, s)
	}
	h, err := strconv.Atoi(hStr)
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("%w: size must be WxH or N, got %q", domain.ErrInvalidInput, s)
	}
	return w, h, nil
}
