// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package strand provides a typed, validated composition engine for
// algorithm configurations.
//
// The package is built around three core abstractions:
//
//   - Domain: the registry of configuration element kinds for one
//     configuration family, together with a symmetric compatibility
//     table stating which kinds may coexist
//   - Element: a single immutable configuration value tagged with its kind
//   - Composite: the aggregate built by chaining elements, holding at
//     most one element per kind
//
// # Chaining
//
// A composite grows one element at a time. Every chaining step validates
// the incoming element against everything already assembled: an element
// of a kind already present fails with a [DuplicateKindError], and a
// kind the domain's table forbids next to an assembled kind fails with
// an [IncompatibleKindsError]. Both checks run at composition time, long
// before any algorithm consumes the configuration.
//
//	cfg, err := strand.Compose(search.Domain,
//	    maxErr,
//	    search.ModeAll,
//	    search.TextPosition,
//	)
//
// Composition is persistent: With returns a fresh composite and leaves
// its receiver untouched, so a base configuration can be extended
// independently by concurrent callers without any locking.
//
// # Typed lookup
//
// Downstream algorithms query a composite with [Get], which is total;
// absence is an ordinary result rather than an error:
//
//	if me, ok := strand.Get[search.MaxError](cfg); ok {
//	    budget := me.Total()
//	}
//
// # Domains
//
// The search and align packages define the two built-in domains. A new
// domain is declared once, as a package level value, by listing its kind
// names and enabling compatible pairs; [Allow] writes the mirrored table
// entry automatically so a hand-authored table can never end up
// asymmetric.
package strand
