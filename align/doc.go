// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package align defines the configuration domain for pairwise sequence
// alignment algorithms.
//
// An alignment configuration is assembled by chaining elements through
// the strand engine:
//
//	scoring, err := align.NewScoring(4, -5)
//	if err != nil {
//	    return err
//	}
//	cfg, err := align.Compose(align.Global{}, scoring, align.NewGap(-10, -1))
//
// Every pair of distinct kinds in this domain may coexist; the engine
// still rejects a second element of the same kind. Elements with
// internal constraints, like [Band] and [Scoring], validate them at
// construction so a composite never holds a malformed value.
//
// Configurations can equally be read from option files via [Loader].
package align
