package domain

// Default endpoint values.
const (
	DefaultScheme          = "http"
	DefaultPlaceholderHost = "placehold.it"
	DefaultPlacekittenHost = "placekitten.com"
)

// Endpoints holds the scheme and hosts that generated URLs point at.
// Empty fields fall back to the public services.
type Endpoints struct {
	// Scheme is the URL scheme (e.g., "http", "https").
	Scheme string
	// PlaceholderHost is the host serving the placehold.it convention.
	PlaceholderHost string
	// PlacekittenHost is the host serving the placekitten.com convention.
	PlacekittenHost string
}

// DefaultEndpoints returns the public service endpoints.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Scheme:          DefaultScheme,
		PlaceholderHost: DefaultPlaceholderHost,
		PlacekittenHost: DefaultPlacekittenHost,
	}
}

// HostFor returns the host configured for a service, or empty for unknown services.
func (e Endpoints) HostFor(service Service) string {
	e = e.withDefaults()
	switch service {
	case ServicePlaceholder:
		return e.PlaceholderHost
	case ServicePlacekitten:
		return e.PlacekittenHost
	default:
		return ""
	}
}

func (e Endpoints) withDefaults() Endpoints {
	if e.Scheme == "" {
		e.Scheme = DefaultScheme
	}
	if e.PlaceholderHost == "" {
		e.PlaceholderHost = DefaultPlaceholderHost
	}
	if e.PlacekittenHost == "" {
		e.PlacekittenHost = DefaultPlacekittenHost
	}
	return e
}

// Defaults holds the configurable starting point for new specs.
type Defaults struct {
	// Service is the service new specs target.
	Service Service
	// Width is the default image width in pixels.
	Width int
	// Height is the default image height in pixels.
	Height int
	// Endpoints are the hosts URLs are generated for.
	Endpoints Endpoints
}

// DefaultDefaults returns the built-in defaults.
func DefaultDefaults() Defaults {
	return Defaults{
		Service:   ServicePlaceholder,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Endpoints: DefaultEndpoints(),
	}
}

// Spec returns a new spec seeded with these defaults.
func (d Defaults) Spec() PlaceholderSpec {
	spec := NewPlaceholderSpec()
	if d.Service.IsValid() {
		spec = spec.WithService(d.Service)
	}
	if d.Width > 0 {
		spec = spec.WithWidth(d.Width)
	}
	if d.Height > 0 {
		spec = spec.WithHeight(d.Height)
	}
	return spec
}
