// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// validate checks the merged [StructuredConfig] against its `validate` tags:
// a DSN is required, the driver must be known and every ignored-property rule
// needs both a class and a property.
func (cfg *StructuredConfig) validate() error {
	if err := structValidator.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// validate checks both reporter sections with the same validator, reporting
// the section that failed: an address and a positive timeout for the adapter,
// a positive interval and at least one non-empty mapping for the workers.
func (cfg *ReporterConfig) validate() error {
	if err := structValidator.Struct(cfg.Adapter); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}

	if err := structValidator.Struct(cfg.Workers); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWorkerConfigs, err)
	}

	return nil
}
