// Package utils provides common utility functions for the focusdeck backend.
// It includes loose-typed coercion helpers used when applying client-supplied
// JSON payloads (map[string]any) to typed records, plus small string helpers
// shared across features.
package utils
