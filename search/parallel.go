// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package search

import "github.com/seqlabs/strand"

// Parallel is the configuration element capping how many workers a
// search algorithm may run concurrently. The engine only carries the
// value; spawning workers is entirely the algorithm's concern.
type Parallel struct {
	workers uint32
}

// Kind implements the [strand.Element] interface.
func (Parallel) Kind() strand.Kind { return KindParallel }

// NewParallel returns a Parallel element allowing up to n workers.
func NewParallel(n uint32) Parallel {
	return Parallel{workers: n}
}

// Workers returns the configured worker cap.
func (p Parallel) Workers() uint32 {
	return p.workers
}
