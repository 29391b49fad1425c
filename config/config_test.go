// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type searchOptions struct {
	MaxError struct {
		Total         uint8 `config:"total"`
		Substitutions uint8 `config:"substitutions"`
	} `config:"max_error"`
	Mode     string `config:"mode"`
	Parallel uint32 `config:"parallel"`
}

func TestRead(t *testing.T) {
	t.Run("will succeed with zero sources", func(t *testing.T) {
		m, err := Read()
		require.NoError(t, err)

		var opts searchOptions
		require.NoError(t, m.Unmarshal(&opts))
		require.Zero(t, opts.MaxError.Total)
		require.Empty(t, opts.Mode)
	})

	t.Run("will merge sources left to right", func(t *testing.T) {
		m, err := Read(
			FromYaml(strings.NewReader("max_error:\n  total: 3\nmode: all")),
			FromJson(strings.NewReader(`{"mode": "best"}`)),
		)
		require.NoError(t, err)

		var opts searchOptions
		require.NoError(t, m.Unmarshal(&opts))
		require.Equal(t, uint8(3), opts.MaxError.Total)
		require.Equal(t, "best", opts.Mode)
	})

	t.Run("will fail if a source fails to apply", func(t *testing.T) {
		_, err := Read(FromYaml(strings.NewReader("not: [valid")))

		var yerr InvalidYamlError
		require.ErrorAs(t, err, &yerr)
	})
}

func TestManager_Unmarshal(t *testing.T) {
	t.Run("will coerce string values into numeric fields", func(t *testing.T) {
		m, err := Read(Map{
			"max_error": map[string]any{"total": "3"},
			"parallel":  "8",
		})
		require.NoError(t, err)

		var opts searchOptions
		require.NoError(t, m.Unmarshal(&opts))
		require.Equal(t, uint8(3), opts.MaxError.Total)
		require.Equal(t, uint32(8), opts.Parallel)
	})

	t.Run("will fail if a numeric value overflows the field", func(t *testing.T) {
		m, err := Read(Map{
			"max_error": map[string]any{"total": "300"},
		})
		require.NoError(t, err)

		var opts searchOptions
		require.Error(t, m.Unmarshal(&opts))
	})
}

func TestEnv(t *testing.T) {
	t.Run("will only apply variables carrying the prefix", func(t *testing.T) {
		src := FromEnv("STRAND")
		src.environ = func() []string {
			return []string{
				"STRAND_MODE=all",
				"STRAND_MAX_ERROR__TOTAL=2",
				"HOME=/home/nobody",
				"malformed",
			}
		}

		m, err := Read(src)
		require.NoError(t, err)

		var opts searchOptions
		require.NoError(t, m.Unmarshal(&opts))
		require.Equal(t, "all", opts.Mode)
		require.Equal(t, uint8(2), opts.MaxError.Total)
	})
}

func TestJson(t *testing.T) {
	t.Run("will fail on invalid json", func(t *testing.T) {
		_, err := Read(FromJson(strings.NewReader("{")))

		var jerr InvalidJsonError
		require.ErrorAs(t, err, &jerr)
	})
}

func TestStore(t *testing.T) {
	t.Run("will fail when nesting under a scalar key", func(t *testing.T) {
		store := make(inMemoryStore)
		require.NoError(t, store.Set([]string{"mode"}, "all"))

		err := store.Set([]string{"mode", "strata"}, 2)

		var uerr UnexpectedKeyValueTypeError
		require.ErrorAs(t, err, &uerr)
		require.Equal(t, "mode", uerr.Path)
	})

	t.Run("will fail on an empty key path", func(t *testing.T) {
		store := make(inMemoryStore)

		err := store.Set(nil, "x")

		var eerr EmptyPathError
		require.ErrorAs(t, err, &eerr)
	})
}
