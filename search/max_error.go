// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package search

import (
	"math"

	"github.com/seqlabs/strand"
)

type errorSlot uint8

const (
	slotTotal errorSlot = iota
	slotSubstitution
	slotInsertion
	slotDeletion
	numSlots
)

var slotNames = [numSlots]string{"total", "substitution", "insertion", "deletion"}

// ErrorCount is one sub-option of [MaxError]: an absolute bound for one
// error category, or for the total across all categories. Construct
// values with [Total], [Substitutions], [Insertions] and [Deletions].
type ErrorCount struct {
	slot errorSlot
	n    uint8
}

// Total bounds the number of errors of all types combined.
func Total(n uint8) ErrorCount {
	return ErrorCount{slot: slotTotal, n: n}
}

// Substitutions bounds the number of substituted bases.
func Substitutions(n uint8) ErrorCount {
	return ErrorCount{slot: slotSubstitution, n: n}
}

// Insertions bounds the number of bases inserted into the query that do
// not occur in the text.
func Insertions(n uint8) ErrorCount {
	return ErrorCount{slot: slotInsertion, n: n}
}

// Deletions bounds the number of bases deleted from the query that do
// occur in the text. Deletions at either end of the query are not
// counted during a search.
func Deletions(n uint8) ErrorCount {
	return ErrorCount{slot: slotDeletion, n: n}
}

// MaxError is the configuration element bounding how many errors of
// each type a search may tolerate. It always carries all four bounds;
// [NewMaxError] resolves whichever ones the caller did not supply.
type MaxError struct {
	counts [numSlots]uint8
}

// Kind implements the [strand.Element] interface.
func (MaxError) Kind() strand.Kind { return KindMaxError }

// NewMaxError resolves a set of error bounds into a fully populated
// element, so downstream algorithms never need to care which bounds
// were actually given:
//
//   - only a total: every category bound is set to the total
//   - only category bounds: the total becomes their sum, saturating at 255
//   - both, or neither: the bounds are taken exactly as given
//
// Supplying no bounds at all yields the valid "no errors allowed"
// element. Supplying the same bound twice fails with a
// [strand.DuplicateKindError]; a conflicting pair is never resolved by
// keeping one of the two.
func NewMaxError(counts ...ErrorCount) (MaxError, error) {
	var me MaxError
	var seen [numSlots]bool
	for _, c := range counts {
		if seen[c.slot] {
			return MaxError{}, strand.DuplicateKindError{
				Domain:   "search.max_error",
				Kind:     strand.Kind(c.slot),
				KindName: slotNames[c.slot],
			}
		}
		seen[c.slot] = true
		me.counts[c.slot] = c.n
	}

	switch {
	case seen[slotTotal] && len(counts) == 1:
		for s := slotSubstitution; s < numSlots; s++ {
			me.counts[s] = me.counts[slotTotal]
		}
	case !seen[slotTotal] && len(counts) > 0:
		sum := 0
		for s := slotSubstitution; s < numSlots; s++ {
			sum += int(me.counts[s])
		}
		if sum > math.MaxUint8 {
			sum = math.MaxUint8
		}
		me.counts[slotTotal] = uint8(sum)
	}
	return me, nil
}

// Total returns the bound on errors of all types combined.
func (e MaxError) Total() uint8 { return e.counts[slotTotal] }

// Substitutions returns the bound on substituted bases.
func (e MaxError) Substitutions() uint8 { return e.counts[slotSubstitution] }

// Insertions returns the bound on inserted bases.
func (e MaxError) Insertions() uint8 { return e.counts[slotInsertion] }

// Deletions returns the bound on deleted bases.
func (e MaxError) Deletions() uint8 { return e.counts[slotDeletion] }
