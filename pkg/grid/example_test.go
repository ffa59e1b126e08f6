package grid_test

import (
	"fmt"

	"github.com/matzehuels/gridframe/pkg/breakpoint"
	"github.com/matzehuels/gridframe/pkg/grid"
)

func ExampleBuild() {
	tmpl, _ := grid.Build(4, "16rem")
	for _, name := range tmpl.Names() {
		fmt.Println(name)
	}
	// Output:
	// full-start
	// content-start
	// content-2
	// content-3
	// content-4
	// content-end
	// full-end
}

func ExampleSlice() {
	full, _ := grid.Build(4, "16rem")
	sliced, expr, _ := grid.Slice(full, grid.Span{Start: "content-start", End: "content-3"})

	fmt.Println("span:", expr)
	for _, l := range sliced {
		if l.Kind == grid.NameOnly {
			fmt.Println(l.Name, "(unsized)")
		} else {
			fmt.Println(l.Name)
		}
	}
	// Output:
	// span: content-start / content-3
	// content-start
	// content-2
	// content-3 (unsized)
}

func ExampleResolveRegion() {
	ctx := grid.Context{
		Current: "md",
		Order:   breakpoint.Sequence{"base", "sm", "md", "lg"},
	}
	cfg := grid.Config{
		Gaps:    breakpoint.Values[string]{"base": "4"},
		Columns: breakpoint.Values[int]{"base": 4, "md": 8},
		ContentWidth: func(gap string, columns int) string {
			return fmt.Sprintf("calc((100%% - %s) / %d - %s)", gap, columns, gap)
		},
	}
	span := breakpoint.Values[grid.Span]{
		"md": {Start: "content-2", End: "content-5"},
	}

	res, _ := grid.ResolveRegion(ctx, cfg, span)
	fmt.Println("columns:", res.Columns)
	fmt.Println("span:", res.Span)
	fmt.Println("lines:", len(res.Template))
	// Output:
	// columns: 8
	// span: content-2 / content-5
	// lines: 4
}
