// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"os"
	"strings"
)

// Env represents a Source where its underlying values are extracted
// from environment variables.
type Env struct {
	prefix  string
	environ func() []string
}

// FromEnv returns a Source which applies every environment variable
// beginning with prefix to the store. The prefix is stripped, the rest
// of the name is lowercased and "__" separates nesting levels, so with
// prefix "STRAND", STRAND_MAX_ERROR__TOTAL=3 sets max_error.total to
// the string "3".
func FromEnv(prefix string) Env {
	return Env{
		prefix:  prefix + "_",
		environ: os.Environ,
	}
}

// Apply implements the Source interface.
func (src Env) Apply(store Store) error {
	for _, pair := range src.environ() {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		name, ok := strings.CutPrefix(k, src.prefix)
		if !ok || name == "" {
			continue
		}

		path := strings.Split(strings.ToLower(name), "__")
		err := store.Set(path, v)
		if err != nil {
			return err
		}
	}
	return nil
}
