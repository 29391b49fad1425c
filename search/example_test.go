// Copyright (c) 2026 SeqLabs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package search_test

import (
	"fmt"
	"strings"

	"github.com/seqlabs/strand"
	"github.com/seqlabs/strand/config"
	"github.com/seqlabs/strand/search"
)

func Example() {
	me, err := search.NewMaxError(search.Substitutions(1), search.Insertions(2))
	if err != nil {
		fmt.Println(err)
		return
	}

	cfg, err := search.Compose(me, search.ModeAll, search.TextPosition)
	if err != nil {
		fmt.Println(err)
		return
	}

	budget, _ := strand.Get[search.MaxError](cfg)
	fmt.Println(budget.Total())
	fmt.Println(budget.Deletions())
	// Output:
	// 3
	// 0
}

func ExampleLoader_Load() {
	src := strings.NewReader(`
max_error:
  total: 2
mode: best
`)

	cfg, err := search.NewLoader().Load(config.FromYaml(src))
	if err != nil {
		fmt.Println(err)
		return
	}

	budget, _ := strand.Get[search.MaxError](cfg)
	mode, _ := strand.Get[search.Mode](cfg)
	fmt.Println(budget.Substitutions())
	fmt.Println(mode)
	// Output:
	// 2
	// best
}

func ExampleCompose_incompatible() {
	me, _ := search.NewMaxError(search.Total(2))
	mer, _ := search.NewMaxErrorRate(search.TotalRate(0.1))

	_, err := search.Compose(me, mer)
	fmt.Println(err)
	// Output:
	// strand: max_error and max_error_rate elements may not be combined in domain "search"
}
