package driving

import "github.com/custodia-labs/placehold/internal/core/domain"

// PlaceholderService builds placeholder URLs and image tags using the
// configured defaults and endpoints.
type PlaceholderService interface {
	// New returns a spec seeded with the configured defaults.
	New() domain.PlaceholderSpec

	// Build applies field assignments (e.g. {"width": "200"}) to a spec.
	// Returns domain.ErrUnknownField, domain.ErrInvalidInput,
	// domain.ErrUnsupportedFormat or domain.ErrUnsupportedService on bad input.
	Build(spec domain.PlaceholderSpec, values map[string]string) (domain.PlaceholderSpec, error)

	// URL returns the image URL for the spec.
	URL(spec domain.PlaceholderSpec) (string, error)

	// ImageTag returns the HTML img element for the spec.
	ImageTag(spec domain.PlaceholderSpec) (string, error)
}
