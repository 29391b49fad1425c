// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package align

import "github.com/seqlabs/strand"

// The align domain's element kinds, in registration order.
const (
	KindAlignedEnds strand.Kind = iota
	KindBand
	KindGap
	KindGlobal
	KindMaxError
	KindResult
	KindScoring
)

// Domain registers every alignment configuration kind. Every pair of
// distinct kinds may coexist.
var Domain = strand.NewDomain(
	"align",
	[]string{"aligned_ends", "band", "gap", "global", "max_error", "result", "scoring"},
	strand.AllowAll(),
)

// Compose folds the given elements into a validated alignment
// configuration. It is shorthand for [strand.Compose] over [Domain].
func Compose(elems ...strand.Element) (strand.Composite, error) {
	return strand.Compose(Domain, elems...)
}

// Global is the marker element selecting global alignment, i.e. both
// sequences are aligned end to end.
type Global struct{}

// Kind implements the [strand.Element] interface.
func (Global) Kind() strand.Kind { return KindGlobal }

// MaxError is the configuration element bounding the total number of
// errors an alignment may contain. Unlike the search domain's budget it
// is a single scalar; alignment does not distinguish error types here.
type MaxError uint32

// Kind implements the [strand.Element] interface.
func (MaxError) Kind() strand.Kind { return KindMaxError }
