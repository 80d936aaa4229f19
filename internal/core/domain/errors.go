package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Placeholder Errors.

	// ErrUnsupportedService indicates a placeholder service with no known URL convention.
	ErrUnsupportedService = errors.New("unsupported placeholder service")

	// ErrUnsupportedFormat indicates an image format the services do not serve.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrUnknownField indicates a field name that cannot be set on a placeholder spec.
	ErrUnknownField = errors.New("unknown placeholder field")
)
