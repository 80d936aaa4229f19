package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Field names a settable PlaceholderSpec field.
type Field string

// Settable fields.
const (
	FieldWidth           Field = "width"
	FieldHeight          Field = "height"
	FieldColor           Field = "color"
	FieldBackgroundColor Field = "bgcolor"
	FieldText            Field = "text"
	FieldFormat          Field = "format"
	FieldService         Field = "service"
)

// fieldAliases maps accepted field names onto fields.
var fieldAliases = map[string]Field{
	"width":            FieldWidth,
	"height":           FieldHeight,
	"color":            FieldColor,
	"colour":           FieldColor,
	"bgcolor":          FieldBackgroundColor,
	"background_color": FieldBackgroundColor,
	"text":             FieldText,
	"format":           FieldFormat,
	"service":          FieldService,
}

// ParseField resolves a field name or alias.
func ParseField(name string) (Field, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if f, ok := fieldAliases[key]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// AllFields returns every settable field.
func AllFields() []Field {
	return []Field{
		FieldWidth, FieldHeight, FieldColor, FieldBackgroundColor,
		FieldText, FieldFormat, FieldService,
	}
}

// String returns the string representation.
func (f Field) String() string {
	return string(f)
}

// Set returns a copy with the named field parsed from value.
// Unlike the With* setters, Set validates its input: sizes must be
// integers, and format and service must name known values.
// An empty value clears optional fields.
func (p PlaceholderSpec) Set(name, value string) (PlaceholderSpec, error) {
	field, err := ParseField(name)
	if err != nil {
		return p, err
	}

	switch field {
	case FieldWidth, FieldHeight:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return p, fmt.Errorf("%w: %s must be an integer, got %q", ErrInvalidInput, field, value)
		}
		if field == FieldWidth {
			return p.WithWidth(n), nil
		}
		return p.WithHeight(n), nil
	case FieldColor:
		return p.WithColor(value), nil
	case FieldBackgroundColor:
		return p.WithBackgroundColor(value), nil
	case FieldText:
		return p.WithText(value), nil
	case FieldFormat:
		if value == "" {
			return p.WithFormat(""), nil
		}
		format, err := ParseImageFormat(value)
		if err != nil {
			return p, err
		}
		return p.WithFormat(format), nil
	case FieldService:
		service, err := ParseService(value)
		if err != nil {
			return p, err
		}
		return p.WithService(service), nil
	}

	return p, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Fill applies a set of field assignments in sorted key order.
// It stops at the first failing assignment and returns the spec unchanged.
func (p PlaceholderSpec) Fill(values map[string]string) (PlaceholderSpec, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := p
	for _, k := range keys {
		next, err := out.Set(k, values[k])
		if err != nil {
			return p, err
		}
		out = next
	}
	return out, nil
}

// Values returns the spec's fields as assignments accepted by Fill.
// Unset optional fields are omitted.
func (p PlaceholderSpec) Values() map[string]string {
	values := map[string]string{
		FieldWidth.String():   strconv.Itoa(p.Width),
		FieldHeight.String():  strconv.Itoa(p.Height),
		FieldService.String(): p.Service.String(),
	}
	if p.Color != "" {
		values[FieldColor.String()] = p.Color
	}
	if p.BackgroundColor != "" {
		values[FieldBackgroundColor.String()] = p.BackgroundColor
	}
	if p.Text != "" {
		values[FieldText.String()] = p.Text
	}
	if p.Format != "" {
		values[FieldFormat.String()] = p.Format.String()
	}
	return values
}
