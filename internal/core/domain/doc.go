// Package domain defines the core business entities for Placehold.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - PlaceholderSpec: An immutable description of a placeholder image
//   - Service: The placeholder service whose URL convention is emitted
//   - Endpoints: The scheme and hosts generated URLs point at
//   - Preset: A named, stored spec
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
