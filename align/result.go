// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package align

import "github.com/seqlabs/strand"

// Result is the configuration element selecting how much of an
// alignment's outcome is computed. Later values cost more to compute;
// an algorithm may pick a cheaper recursion when only the score is
// requested.
type Result uint8

const (
	// ResultScore computes only the alignment score.
	ResultScore Result = iota

	// ResultEndPosition additionally tracks where the alignment ends.
	ResultEndPosition

	// ResultBeginPosition additionally tracks where the alignment begins.
	ResultBeginPosition

	// ResultTrace computes the full alignment trace.
	ResultTrace
)

// Kind implements the [strand.Element] interface.
func (Result) Kind() strand.Kind { return KindResult }

// String implements the fmt.Stringer interface.
func (r Result) String() string {
	switch r {
	case ResultEndPosition:
		return "end_position"
	case ResultBeginPosition:
		return "begin_position"
	case ResultTrace:
		return "trace"
	default:
		return "score"
	}
}
