// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package search defines the configuration domain for sequence search
// algorithms.
//
// A search configuration is assembled by chaining elements through the
// strand engine:
//
//	me, err := search.NewMaxError(search.Total(3))
//	if err != nil {
//	    return err
//	}
//	cfg, err := search.Compose(me, search.ModeAll, search.TextPosition)
//
// Error budgets come in two flavours. [MaxError] carries absolute
// bounds and [MaxErrorRate] carries bounds relative to the query
// length; the domain marks the two as mutually exclusive so a
// configuration can never carry both. Both resolve partially supplied
// bounds at construction: a lone total is broadcast to the categories,
// and a missing total is implied by summing the categories.
//
// Configurations can equally be read from option files via [Loader],
// which funnels file supplied options through the same composition
// checks as code supplied elements.
package search
