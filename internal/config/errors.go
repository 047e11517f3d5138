package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates a missing token signing key or a
	// non-positive token lifetime.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrUnsupportedTokenAlgorithm indicates a signing algorithm other than
	// HS256, HS384 or HS512.
	ErrUnsupportedTokenAlgorithm = errors.New("unsupported token algorithm")
	// ErrInvalidServerConfigs indicates an empty listen address or a
	// negative request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
