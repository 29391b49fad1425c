// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package strand

import (
	"fmt"
	"sort"
)

// Element is a single typed configuration value tagged with the [Kind]
// it belongs to. Concrete elements live in the domain packages (e.g.
// search, align) and are immutable value types; the engine never
// mutates an element after it has been composed.
type Element interface {
	Kind() Kind
}

// DuplicateKindError occurs when an element of a kind already present is
// chained onto a [Composite], or when two sub-options filling the same
// slot of a derived element are supplied together. The engine never
// resolves duplicates by overwriting.
type DuplicateKindError struct {
	Domain   string
	Kind     Kind
	KindName string
}

// Error implements the error interface.
func (e DuplicateKindError) Error() string {
	return fmt.Sprintf("strand: domain %q already contains a %s element", e.Domain, e.KindName)
}

// IncompatibleKindsError occurs when two element kinds that the domain's
// compatibility table forbids from coexisting are chained into one
// [Composite]. Both offending kinds are reported so the caller can tell
// which options conflict.
type IncompatibleKindsError struct {
	Domain string
	A, B   Kind
	AName  string
	BName  string
}

// Error implements the error interface.
func (e IncompatibleKindsError) Error() string {
	return fmt.Sprintf("strand: %s and %s elements may not be combined in domain %q", e.AName, e.BName, e.Domain)
}

// Composite is a validated aggregate of configuration elements, at most
// one per kind. Composites are persistent: [Composite.With] returns a
// new value and never modifies its receiver, so a constructed Composite
// may be shared freely across goroutines and extended independently by
// multiple callers without coordination.
//
// The zero Composite is not usable; start from [NewComposite] or
// [Compose].
type Composite struct {
	domain Domain
	elems  map[Kind]Element
}

// NewComposite returns the empty composite for the given domain, the
// identity of the chaining operation.
func NewComposite(d Domain) Composite {
	return Composite{domain: d}
}

// Compose folds the given elements into a single composite,
// left-to-right, validating each chaining step. It is shorthand for
// chaining [Composite.With] starting from [NewComposite].
func Compose(d Domain, elems ...Element) (Composite, error) {
	c := NewComposite(d)
	var err error
	for _, e := range elems {
		c, err = c.With(e)
		if err != nil {
			return Composite{}, err
		}
	}
	return c, nil
}

// With returns a new composite containing every element of c plus e.
//
// It fails with a [DuplicateKindError] if c already holds an element of
// e's kind, and with an [IncompatibleKindsError] if any kind already in
// c may not coexist with e's kind. On failure c is still valid and
// unchanged; composition has no partial effects.
func (c Composite) With(e Element) (Composite, error) {
	k := e.Kind()
	if int(k) >= c.domain.Cardinality() {
		return Composite{}, OutOfRangeKindError{
			Domain:      c.domain.Name(),
			Kind:        k,
			Cardinality: c.domain.Cardinality(),
		}
	}
	if _, ok := c.elems[k]; ok {
		return Composite{}, DuplicateKindError{
			Domain:   c.domain.Name(),
			Kind:     k,
			KindName: c.domain.KindName(k),
		}
	}
	for existing := range c.elems {
		ok, err := c.domain.Compatible(existing, k)
		if err != nil {
			return Composite{}, err
		}
		if !ok {
			return Composite{}, IncompatibleKindsError{
				Domain: c.domain.Name(),
				A:      existing,
				B:      k,
				AName:  c.domain.KindName(existing),
				BName:  c.domain.KindName(k),
			}
		}
	}

	elems := make(map[Kind]Element, len(c.elems)+1)
	for kind, elem := range c.elems {
		elems[kind] = elem
	}
	elems[k] = e
	return Composite{domain: c.domain, elems: elems}, nil
}

// Domain returns the domain the composite was built for.
func (c Composite) Domain() Domain {
	return c.domain
}

// Len returns the number of elements the composite holds.
func (c Composite) Len() int {
	return len(c.elems)
}

// Contains reports whether the composite holds an element of kind k.
func (c Composite) Contains(k Kind) bool {
	_, ok := c.elems[k]
	return ok
}

// Element returns the element of kind k, if present. Absence is an
// expected outcome, not an error.
func (c Composite) Element(k Kind) (Element, bool) {
	e, ok := c.elems[k]
	return e, ok
}

// Kinds returns the kinds present in the composite in ascending id
// order.
func (c Composite) Kinds() []Kind {
	kinds := make([]Kind, 0, len(c.elems))
	for k := range c.elems {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Get returns the element of concrete type E held by c, if any. Lookup
// is total: a composite without an E element yields (zero, false).
//
// E must be an element value type whose Kind method is callable on the
// zero value, which holds for every element type in this module.
func Get[E Element](c Composite) (E, bool) {
	var zero E
	e, ok := c.elems[zero.Kind()]
	if !ok {
		return zero, false
	}
	v, ok := e.(E)
	if !ok {
		return zero, false
	}
	return v, true
}
