// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package align

import "github.com/seqlabs/strand"

// Gap is the configuration element carrying the affine gap scheme: a
// one-off score for opening a gap and a score for every extended
// position. Scores are typically negative.
type Gap struct {
	open   int32
	extend int32
}

// Kind implements the [strand.Element] interface.
func (Gap) Kind() strand.Kind { return KindGap }

// NewGap returns a Gap scheme with the given open and extension scores.
func NewGap(open, extend int32) Gap {
	return Gap{open: open, extend: extend}
}

// Open returns the score for opening a gap.
func (g Gap) Open() int32 { return g.open }

// Extend returns the score for each extended gap position.
func (g Gap) Extend() int32 { return g.extend }
