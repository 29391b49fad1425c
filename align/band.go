// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package align

import (
	"fmt"

	"github.com/seqlabs/strand"
)

// InvalidBandError occurs when a band's lower diagonal lies above its
// upper diagonal.
type InvalidBandError struct {
	Lower int32
	Upper int32
}

// Error implements the error interface.
func (e InvalidBandError) Error() string {
	return fmt.Sprintf("align: band lower diagonal %d exceeds upper diagonal %d", e.Lower, e.Upper)
}

// Band is the configuration element restricting the alignment matrix to
// the diagonals between a lower and an upper bound.
type Band struct {
	lower int32
	upper int32
}

// Kind implements the [strand.Element] interface.
func (Band) Kind() strand.Kind { return KindBand }

// NewBand returns a Band covering the diagonals [lower, upper]. It
// fails with an [InvalidBandError] if lower > upper.
func NewBand(lower, upper int32) (Band, error) {
	if lower > upper {
		return Band{}, InvalidBandError{Lower: lower, Upper: upper}
	}
	return Band{lower: lower, upper: upper}, nil
}

// Lower returns the band's lower diagonal.
func (b Band) Lower() int32 { return b.lower }

// Upper returns the band's upper diagonal.
func (b Band) Upper() int32 { return b.upper }
