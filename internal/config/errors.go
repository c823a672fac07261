package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrMissingRequiredSetting indicates that a required setting (USERNAME,
	// PASSWORD) was supplied by none of the configuration sources.
	ErrMissingRequiredSetting = errors.New("missing required setting")
	// ErrInvalidAdapterConfigs indicates invalid transport settings
	// (for example, a negative request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
