// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package strand

import "fmt"

// Kind identifies one configuration element category within a [Domain].
// Kinds are dense ordinals starting at zero; a domain's cardinality is
// the number of kinds it defines.
type Kind uint8

// OutOfRangeKindError occurs when a kind outside [0, cardinality) is
// checked against a [Domain]. It indicates a programming error in a
// domain definition, not a bad user configuration.
type OutOfRangeKindError struct {
	Domain      string
	Kind        Kind
	Cardinality int
}

// Error implements the error interface.
func (e OutOfRangeKindError) Error() string {
	return fmt.Sprintf("strand: kind %d is out of range for domain %q with cardinality %d", e.Kind, e.Domain, e.Cardinality)
}

// Domain enumerates the configuration element kinds of one configuration
// family (e.g. search options) and records which pairs of kinds may
// coexist in a single [Composite]. A Domain is defined once, typically as
// a package level value, and is read-only afterwards.
//
// The zero Domain is not usable; construct one with [NewDomain].
type Domain struct {
	name  string
	kinds []string
	table [][]bool
}

// DomainOption configures the compatibility table of a [Domain] under
// construction.
type DomainOption func(*Domain)

// Allow marks the kinds a and b as allowed to coexist in one [Composite].
// The mirrored table entry is set automatically so the table stays
// symmetric by construction.
//
// Allow panics if either kind is out of range or if a == b, since a
// domain definition is static and a malformed one can never become
// valid at runtime.
func Allow(a, b Kind) DomainOption {
	return func(d *Domain) {
		if int(a) >= len(d.kinds) {
			panic(OutOfRangeKindError{Domain: d.name, Kind: a, Cardinality: len(d.kinds)})
		}
		if int(b) >= len(d.kinds) {
			panic(OutOfRangeKindError{Domain: d.name, Kind: b, Cardinality: len(d.kinds)})
		}
		if a == b {
			panic(fmt.Sprintf("strand: kind %q can not be marked compatible with itself in domain %q", d.kinds[a], d.name))
		}
		d.table[a][b] = true
		d.table[b][a] = true
	}
}

// Forbid marks the kinds a and b as mutually exclusive, clearing both
// mirrored table entries. It is useful for domains that are mostly
// compatible: apply [AllowAll] first, then Forbid the exceptional
// pairs. Like [Allow] it panics on out of range kinds and on a == b.
func Forbid(a, b Kind) DomainOption {
	return func(d *Domain) {
		if int(a) >= len(d.kinds) {
			panic(OutOfRangeKindError{Domain: d.name, Kind: a, Cardinality: len(d.kinds)})
		}
		if int(b) >= len(d.kinds) {
			panic(OutOfRangeKindError{Domain: d.name, Kind: b, Cardinality: len(d.kinds)})
		}
		if a == b {
			panic(fmt.Sprintf("strand: the diagonal of domain %q is always false; forbidding kind %q against itself is redundant", d.name, d.kinds[a]))
		}
		d.table[a][b] = false
		d.table[b][a] = false
	}
}

// AllowAll marks every pair of distinct kinds as allowed to coexist.
// The diagonal stays false: a kind is never compatible with a second
// instance of itself.
func AllowAll() DomainOption {
	return func(d *Domain) {
		for a := range d.table {
			for b := range d.table[a] {
				if a == b {
					continue
				}
				d.table[a][b] = true
			}
		}
	}
}

// NewDomain returns a [Domain] with the given kind names, assigned dense
// ids in order starting at zero. All pairs of kinds start out
// incompatible; pass [Allow] or [AllowAll] options to enable pairs.
func NewDomain(name string, kinds []string, opts ...DomainOption) Domain {
	d := Domain{
		name:  name,
		kinds: kinds,
		table: make([][]bool, len(kinds)),
	}
	for i := range d.table {
		d.table[i] = make([]bool, len(kinds))
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// Name returns the domain's name.
func (d Domain) Name() string {
	return d.name
}

// Cardinality returns the number of kinds the domain defines.
func (d Domain) Cardinality() int {
	return len(d.kinds)
}

// KindName returns the name the kind was registered under, or a
// placeholder if k is out of range.
func (d Domain) KindName(k Kind) string {
	if int(k) >= len(d.kinds) {
		return fmt.Sprintf("kind(%d)", k)
	}
	return d.kinds[k]
}

// Compatible reports whether elements of kinds a and b may coexist in
// one [Composite]. It returns an [OutOfRangeKindError] if either kind is
// not defined by the domain, and always reports false for a == b.
func (d Domain) Compatible(a, b Kind) (bool, error) {
	if int(a) >= len(d.kinds) {
		return false, OutOfRangeKindError{Domain: d.name, Kind: a, Cardinality: len(d.kinds)}
	}
	if int(b) >= len(d.kinds) {
		return false, OutOfRangeKindError{Domain: d.name, Kind: b, Cardinality: len(d.kinds)}
	}
	return d.table[a][b], nil
}
