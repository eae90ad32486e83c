// Package internalcheck provides internal validation and testing utilities.
//
// This package contains repository policy tests for the sdlttf-go binding.
// It is not intended for external use and the API may change without notice.
//
// # Internal Use Only
//
// This package is part of the internal implementation and should not be
// imported by applications using the binding. Use the public API provided by
// pkg/ttf and its subpackages instead.
package internalcheck
