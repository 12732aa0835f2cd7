package metadata

import "errors"

var (
	// ErrEmptyClass is returned by [Registry.Register] for a descriptor
	// without a class name.
	ErrEmptyClass = errors.New("type descriptor has no class")

	// ErrDuplicateDescriptor is returned when a class is registered twice.
	ErrDuplicateDescriptor = errors.New("type descriptor already registered")

	// ErrAccessorNotFound is returned when an accessor name cannot be resolved
	// against a class, neither from its descriptor nor from its methods.
	ErrAccessorNotFound = errors.New("accessor not found")

	// ErrAccessorTypeMismatch is returned when a typed accessor is invoked on
	// an object of another type.
	ErrAccessorTypeMismatch = errors.New("accessor invoked on unexpected type")
)
