// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package search

import "github.com/seqlabs/strand"

// The search domain's element kinds, in registration order.
const (
	KindMaxError strand.Kind = iota
	KindMaxErrorRate
	KindMode
	KindOutput
	KindParallel
)

// Domain registers every search configuration kind. An absolute error
// budget and a relative one describe the same constraint two ways, so
// max_error and max_error_rate may not be combined; every other pair of
// distinct kinds is compatible.
var Domain = strand.NewDomain(
	"search",
	[]string{"max_error", "max_error_rate", "mode", "output", "parallel"},
	strand.AllowAll(),
	strand.Forbid(KindMaxError, KindMaxErrorRate),
)

// Compose folds the given elements into a validated search
// configuration. It is shorthand for [strand.Compose] over [Domain].
func Compose(elems ...strand.Element) (strand.Composite, error) {
	return strand.Compose(Domain, elems...)
}
