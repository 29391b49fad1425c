// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestFileReader(t *testing.T) {
	t.Run("will open and read an option file lazily", func(t *testing.T) {
		fsys := fstest.MapFS{
			"options.yaml": &fstest.MapFile{
				Data: []byte("mode: all\nparallel: 4"),
			},
		}

		r := NewFileReader(fsys, "options.yaml")

		m, err := Read(FromYaml(r))
		require.NoError(t, err)

		var opts searchOptions
		require.NoError(t, m.Unmarshal(&opts))
		require.Equal(t, "all", opts.Mode)
		require.Equal(t, uint32(4), opts.Parallel)
	})

	t.Run("will surface the open failure on first read", func(t *testing.T) {
		r := NewFileReader(fstest.MapFS{}, "missing.yaml")

		_, err := Read(FromYaml(r))
		require.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("will tolerate closing before reading", func(t *testing.T) {
		r := NewFileReader(fstest.MapFS{}, "missing.yaml")
		require.NoError(t, r.Close())
	})
}
