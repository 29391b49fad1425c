// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package strand_test

import (
	"fmt"

	"github.com/seqlabs/strand"
)

// A minimal domain with two kinds, where a verbosity level and a quiet
// marker may not be combined.
const (
	kindVerbosity strand.Kind = iota
	kindQuiet
	kindColor
)

var reportDomain = strand.NewDomain(
	"report",
	[]string{"verbosity", "quiet", "color"},
	strand.Allow(kindVerbosity, kindColor),
	strand.Allow(kindQuiet, kindColor),
)

type verbosity int

func (verbosity) Kind() strand.Kind { return kindVerbosity }

type quiet struct{}

func (quiet) Kind() strand.Kind { return kindQuiet }

type color struct{}

func (color) Kind() strand.Kind { return kindColor }

func Example() {
	cfg, err := strand.Compose(reportDomain, verbosity(2), color{})
	if err != nil {
		fmt.Println(err)
		return
	}

	v, ok := strand.Get[verbosity](cfg)
	fmt.Println(v, ok)

	_, err = cfg.With(quiet{})
	fmt.Println(err)
	// Output:
	// 2 true
	// strand: verbosity and quiet elements may not be combined in domain "report"
}

func ExampleComposite_With() {
	base, err := strand.Compose(reportDomain, color{})
	if err != nil {
		fmt.Println(err)
		return
	}

	// base stays untouched; both extensions are independent
	loud, _ := base.With(verbosity(3))
	silent, _ := base.With(quiet{})

	fmt.Println(base.Len(), loud.Len(), silent.Len())
	// Output:
	// 1 2 2
}
