// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package search

import (
	"fmt"

	"github.com/seqlabs/strand"
)

// ErrorRate is one sub-option of [MaxErrorRate]: a bound for one error
// category, or for the total, expressed as a fraction of the query
// length. Construct values with [TotalRate], [SubstitutionRate],
// [InsertionRate] and [DeletionRate].
type ErrorRate struct {
	slot errorSlot
	v    float64
}

// TotalRate bounds the rate of errors of all types combined.
func TotalRate(v float64) ErrorRate {
	return ErrorRate{slot: slotTotal, v: v}
}

// SubstitutionRate bounds the rate of substituted bases.
func SubstitutionRate(v float64) ErrorRate {
	return ErrorRate{slot: slotSubstitution, v: v}
}

// InsertionRate bounds the rate of inserted bases.
func InsertionRate(v float64) ErrorRate {
	return ErrorRate{slot: slotInsertion, v: v}
}

// DeletionRate bounds the rate of deleted bases.
func DeletionRate(v float64) ErrorRate {
	return ErrorRate{slot: slotDeletion, v: v}
}

// InvalidErrorRateError occurs when an error rate outside [0, 1] is
// supplied to [NewMaxErrorRate].
type InvalidErrorRateError struct {
	Rate  string
	Value float64
}

// Error implements the error interface.
func (e InvalidErrorRateError) Error() string {
	return fmt.Sprintf("search: %s error rate %g is not within [0, 1]", e.Rate, e.Value)
}

// MaxErrorRate is the configuration element bounding the fraction of a
// query's bases that may be in error, per error type. It mirrors
// [MaxError] with relative instead of absolute bounds; the two kinds
// are mutually exclusive in [Domain].
type MaxErrorRate struct {
	rates [numSlots]float64
}

// Kind implements the [strand.Element] interface.
func (MaxErrorRate) Kind() strand.Kind { return KindMaxErrorRate }

// NewMaxErrorRate resolves a set of error rates the same way
// [NewMaxError] resolves counts: a lone total is broadcast to every
// category, an absent total becomes the sum of the category rates
// saturating at 1, and anything else is taken as given. Every supplied
// rate must lie within [0, 1].
func NewMaxErrorRate(rates ...ErrorRate) (MaxErrorRate, error) {
	var me MaxErrorRate
	var seen [numSlots]bool
	for _, r := range rates {
		if r.v < 0 || r.v > 1 {
			return MaxErrorRate{}, InvalidErrorRateError{Rate: slotNames[r.slot], Value: r.v}
		}
		if seen[r.slot] {
			return MaxErrorRate{}, strand.DuplicateKindError{
				Domain:   "search.max_error_rate",
				Kind:     strand.Kind(r.slot),
				KindName: slotNames[r.slot],
			}
		}
		seen[r.slot] = true
		me.rates[r.slot] = r.v
	}

	switch {
	case seen[slotTotal] && len(rates) == 1:
		for s := slotSubstitution; s < numSlots; s++ {
			me.rates[s] = me.rates[slotTotal]
		}
	case !seen[slotTotal] && len(rates) > 0:
		sum := 0.0
		for s := slotSubstitution; s < numSlots; s++ {
			sum += me.rates[s]
		}
		if sum > 1 {
			sum = 1
		}
		me.rates[slotTotal] = sum
	}
	return me, nil
}

// Total returns the bound on the rate of errors of all types combined.
func (e MaxErrorRate) Total() float64 { return e.rates[slotTotal] }

// Substitutions returns the bound on the rate of substituted bases.
func (e MaxErrorRate) Substitutions() float64 { return e.rates[slotSubstitution] }

// Insertions returns the bound on the rate of inserted bases.
func (e MaxErrorRate) Insertions() float64 { return e.rates[slotInsertion] }

// Deletions returns the bound on the rate of deleted bases.
func (e MaxErrorRate) Deletions() float64 { return e.rates[slotDeletion] }
