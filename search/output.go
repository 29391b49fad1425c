// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package search

import "github.com/seqlabs/strand"

// Output is the configuration element selecting how a search reports
// hit locations.
type Output uint8

const (
	// TextPosition reports hits as positions in the original text.
	TextPosition Output = iota

	// IndexPosition reports hits as positions in the underlying index,
	// skipping the conversion back to text coordinates.
	IndexPosition
)

// Kind implements the [strand.Element] interface.
func (Output) Kind() strand.Kind { return KindOutput }

// String implements the fmt.Stringer interface.
func (o Output) String() string {
	if o == IndexPosition {
		return "index_position"
	}
	return "text_position"
}
