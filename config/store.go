// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"fmt"
	"strings"
)

// EmptyPathError occurs when a source tries to set a value without any key.
type EmptyPathError struct {
	Value any
}

// Error implements the error interface.
func (e EmptyPathError) Error() string {
	return fmt.Sprintf("attempted to set value to an empty key path: %v", e.Value)
}

// UnexpectedKeyValueTypeError represents the situation when a source
// tries setting a key nested under a key which previously held a
// non-map value.
type UnexpectedKeyValueTypeError struct {
	Path         string
	ExpectedType string
}

// Error implements the error interface.
func (e UnexpectedKeyValueTypeError) Error() string {
	return fmt.Sprintf("expected key value to be a %s: %s", e.ExpectedType, e.Path)
}

type inMemoryStore map[string]any

// Set implements the Store interface.
func (m inMemoryStore) Set(path []string, v any) error {
	return set(m, path, path, v)
}

func set(m map[string]any, full, path []string, v any) error {
	if len(path) == 0 {
		return EmptyPathError{Value: v}
	}

	root := path[0]
	if len(path) == 1 {
		m[root] = v
		return nil
	}

	old, ok := m[root]
	if !ok {
		old = make(map[string]any)
		m[root] = old
	}

	subM, ok := old.(map[string]any)
	if !ok {
		return UnexpectedKeyValueTypeError{
			Path:         strings.Join(full[:len(full)-len(path)+1], "."),
			ExpectedType: "map[string]any",
		}
	}
	return set(subM, full, path[1:], v)
}
