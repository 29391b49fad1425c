// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package align

import (
	"testing"

	"github.com/seqlabs/strand"

	"github.com/stretchr/testify/require"
)

func TestDomain(t *testing.T) {
	t.Run("will keep the table symmetric with an all false diagonal", func(t *testing.T) {
		for a := strand.Kind(0); int(a) < Domain.Cardinality(); a++ {
			for b := strand.Kind(0); int(b) < Domain.Cardinality(); b++ {
				ab, err := Domain.Compatible(a, b)
				require.NoError(t, err)

				ba, err := Domain.Compatible(b, a)
				require.NoError(t, err)

				require.Equal(t, ab, ba)
				require.Equal(t, a != b, ab)
			}
		}
	})
}

func TestCompose(t *testing.T) {
	t.Run("will assemble a full alignment configuration", func(t *testing.T) {
		scoring, err := NewScoring(4, -5)
		require.NoError(t, err)

		band, err := NewBand(-4, 4)
		require.NoError(t, err)

		cfg, err := Compose(
			Global{},
			scoring,
			NewGap(-10, -1),
			band,
			MaxError(3),
			ResultTrace,
			FreeEnds,
		)
		require.NoError(t, err)
		require.Equal(t, 7, cfg.Len())

		g, ok := strand.Get[Gap](cfg)
		require.True(t, ok)
		require.Equal(t, int32(-10), g.Open())
		require.Equal(t, int32(-1), g.Extend())

		b, ok := strand.Get[Band](cfg)
		require.True(t, ok)
		require.Equal(t, int32(-4), b.Lower())
		require.Equal(t, int32(4), b.Upper())

		me, ok := strand.Get[MaxError](cfg)
		require.True(t, ok)
		require.Equal(t, MaxError(3), me)

		ae, ok := strand.Get[AlignedEnds](cfg)
		require.True(t, ok)
		require.True(t, ae.FirstLeading)
		require.True(t, ae.SecondTrailing)
	})

	t.Run("will reject two scoring schemes", func(t *testing.T) {
		a, err := NewScoring(1, -1)
		require.NoError(t, err)

		b, err := NewScoring(2, -2)
		require.NoError(t, err)

		_, err = Compose(a, b)

		var derr strand.DuplicateKindError
		require.ErrorAs(t, err, &derr)
		require.Equal(t, "scoring", derr.KindName)
	})
}

func TestNewBand(t *testing.T) {
	t.Run("will fail if the lower diagonal exceeds the upper", func(t *testing.T) {
		_, err := NewBand(3, -3)

		var berr InvalidBandError
		require.ErrorAs(t, err, &berr)
		require.Equal(t, int32(3), berr.Lower)
		require.Equal(t, int32(-3), berr.Upper)
	})

	t.Run("will accept a single diagonal", func(t *testing.T) {
		b, err := NewBand(0, 0)
		require.NoError(t, err)
		require.Equal(t, int32(0), b.Lower())
		require.Equal(t, int32(0), b.Upper())
	})
}

func TestNewScoring(t *testing.T) {
	testCases := []struct {
		name     string
		match    int32
		mismatch int32
	}{
		{
			name:     "negative match score",
			match:    -1,
			mismatch: -1,
		},
		{
			name:     "positive mismatch score",
			match:    1,
			mismatch: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewScoring(tc.match, tc.mismatch)

			var serr InvalidScoringError
			require.ErrorAs(t, err, &serr)
		})
	}
}

func TestResult_String(t *testing.T) {
	require.Equal(t, "score", ResultScore.String())
	require.Equal(t, "end_position", ResultEndPosition.String())
	require.Equal(t, "begin_position", ResultBeginPosition.String())
	require.Equal(t, "trace", ResultTrace.String())
}
