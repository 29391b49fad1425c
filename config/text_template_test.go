// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderTextTemplate(t *testing.T) {
	t.Run("will render env lookups inside the option file", func(t *testing.T) {
		t.Setenv("STRAND_TEST_TOTAL", "4")

		r := RenderTextTemplate(strings.NewReader("max_error:\n  total: {{env \"STRAND_TEST_TOTAL\"}}"))

		m, err := Read(FromYaml(r))
		require.NoError(t, err)

		var opts searchOptions
		require.NoError(t, m.Unmarshal(&opts))
		require.Equal(t, uint8(4), opts.MaxError.Total)
	})

	t.Run("will support custom template funcs", func(t *testing.T) {
		r := RenderTextTemplate(
			strings.NewReader("mode: {{defaultMode}}"),
			TemplateFunc("defaultMode", func() string { return "all" }),
		)

		m, err := Read(FromYaml(r))
		require.NoError(t, err)

		var opts searchOptions
		require.NoError(t, m.Unmarshal(&opts))
		require.Equal(t, "all", opts.Mode)
	})

	t.Run("will fail on an unparsable template", func(t *testing.T) {
		r := RenderTextTemplate(strings.NewReader("mode: {{"))

		_, err := Read(FromYaml(r))

		var perr TextTemplateParseError
		require.ErrorAs(t, err, &perr)
	})

	t.Run("will fail if a template func fails", func(t *testing.T) {
		tmplErr := errors.New("template func failed")
		r := RenderTextTemplate(
			strings.NewReader("mode: {{fail}}"),
			TemplateFunc("fail", func() (string, error) { return "", tmplErr }),
		)

		_, err := Read(FromYaml(r))

		var eerr TextTemplateExecError
		require.ErrorAs(t, err, &eerr)
		require.Contains(t, eerr.Error(), tmplErr.Error())
	})
}
