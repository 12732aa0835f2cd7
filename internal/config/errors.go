package config

import "errors"

// Errors returned while loading and validating configuration.
var (
	// ErrInvalidIgnoreProperty indicates an ignored-property rule that is not
	// of the form "Class.Property".
	ErrInvalidIgnoreProperty = errors.New("invalid ignore property rule")

	// ErrInvalidConfig wraps validator failures of the merged configuration.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidAdapterConfigs indicates invalid reporter adapter settings
	// (for example, a missing server address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidWorkerConfigs indicates invalid reporter worker settings
	// (for example, no mappings to watch).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
