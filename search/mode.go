// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package search

import (
	"fmt"

	"github.com/seqlabs/strand"
)

type strategy uint8

const (
	strategyAll strategy = iota
	strategyBest
	strategyAllBest
	strategyStrata
)

// Mode is the configuration element selecting which of a query's hits
// a search reports.
type Mode struct {
	strategy strategy
	strata   uint8
}

// Kind implements the [strand.Element] interface.
func (Mode) Kind() strand.Kind { return KindMode }

var (
	// ModeAll reports every hit within the error budget.
	ModeAll = Mode{strategy: strategyAll}

	// ModeBest reports a single hit with the lowest error count.
	ModeBest = Mode{strategy: strategyBest}

	// ModeAllBest reports every hit sharing the lowest error count.
	ModeAllBest = Mode{strategy: strategyAllBest}
)

// ModeStrata reports every hit within n errors of the best hit.
func ModeStrata(n uint8) Mode {
	return Mode{strategy: strategyStrata, strata: n}
}

// Strata returns the strata width and whether the mode is a strata
// mode at all.
func (m Mode) Strata() (uint8, bool) {
	return m.strata, m.strategy == strategyStrata
}

// String implements the fmt.Stringer interface.
func (m Mode) String() string {
	switch m.strategy {
	case strategyBest:
		return "best"
	case strategyAllBest:
		return "all_best"
	case strategyStrata:
		return fmt.Sprintf("strata(%d)", m.strata)
	default:
		return "all"
	}
}
