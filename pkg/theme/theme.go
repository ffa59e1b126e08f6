// Package theme models the configuration surface of a gridframe layout:
// the ordered breakpoint scale, per-breakpoint gap and column mappings,
// named layout regions with optional subgrid spans, and the size tokens
// those mappings refer to.
//
// Themes are loaded from TOML files and validated eagerly, except for span
// line names, whose existence depends on the column count of the breakpoint
// being evaluated and is therefore checked lazily at resolution time.
//
// A minimal theme:
//
//	layout_max = "6xl"
//
//	[[breakpoints]]
//	name = "base"
//	min_width = 0
//
//	[[breakpoints]]
//	name = "md"
//	min_width = 768
//
//	[gaps]
//	base = "4"
//
//	[columns]
//	base = 4
//	md = 8
//
//	[regions.main]
//
//	[regions.aside.span]
//	base = ["content-start", "content-3"]
package theme

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/gridframe/pkg/breakpoint"
	"github.com/matzehuels/gridframe/pkg/errors"
	"github.com/matzehuels/gridframe/pkg/grid"
)

// Definition is one breakpoint of the theme's scale: a label plus the
// minimum viewport width (in px) at which it becomes active.
type Definition struct {
	Name     string `toml:"name"`
	MinWidth int    `toml:"min_width"`
}

// Region is one named layout region. A nil Span means the region occupies
// its parent's full extent by default placement.
type Region struct {
	Span breakpoint.Values[grid.Span]
}

// Theme is a validated layout configuration.
type Theme struct {
	LayoutMax   string
	Breakpoints []Definition
	Gaps        breakpoint.Values[string]
	Columns     breakpoint.Values[int]
	Regions     map[string]Region
}

// fileTheme is the raw TOML decode target.
type fileTheme struct {
	LayoutMax   string                `toml:"layout_max"`
	Breakpoints []Definition          `toml:"breakpoints"`
	Gaps        map[string]string     `toml:"gaps"`
	Columns     map[string]int        `toml:"columns"`
	Regions     map[string]fileRegion `toml:"regions"`
}

type fileRegion struct {
	Span map[string][]string `toml:"span"`
}

// Load reads and validates a theme from a TOML file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "theme file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to read theme %s", path)
	}
	th, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "theme %s", path)
	}
	return th, nil
}

// Parse decodes and validates a theme from TOML bytes.
func Parse(data []byte) (*Theme, error) {
	var raw fileTheme
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to decode theme")
	}

	th := &Theme{
		LayoutMax:   raw.LayoutMax,
		Breakpoints: raw.Breakpoints,
		Gaps:        breakpoint.Values[string]{},
		Columns:     breakpoint.Values[int]{},
		Regions:     map[string]Region{},
	}
	for name, token := range raw.Gaps {
		th.Gaps[breakpoint.Breakpoint(name)] = token
	}
	for name, count := range raw.Columns {
		th.Columns[breakpoint.Breakpoint(name)] = count
	}
	for name, r := range raw.Regions {
		region := Region{}
		if len(r.Span) > 0 {
			region.Span = breakpoint.Values[grid.Span]{}
			for bp, pair := range r.Span {
				if len(pair) != 2 {
					return nil, errors.New(errors.ErrCodeInvalidConfig,
						"region %q span at %q must be a [start, end] pair, got %d element(s)", name, bp, len(pair))
				}
				region.Span[breakpoint.Breakpoint(bp)] = grid.Span{Start: pair[0], End: pair[1]}
			}
		}
		th.Regions[name] = region
	}

	if err := th.Validate(); err != nil {
		return nil, err
	}
	return th, nil
}

// Default returns the built-in theme used when no theme file is given:
// a Tailwind-flavored breakpoint scale with a single full-extent region
// named "main".
func Default() *Theme {
	return &Theme{
		LayoutMax: "7xl",
		Breakpoints: []Definition{
			{Name: "base", MinWidth: 0},
			{Name: "sm", MinWidth: 640},
			{Name: "md", MinWidth: 768},
			{Name: "lg", MinWidth: 1024},
			{Name: "xl", MinWidth: 1280},
			{Name: "2xl", MinWidth: 1536},
		},
		Gaps:    breakpoint.Values[string]{"base": "4", "lg": "8"},
		Columns: breakpoint.Values[int]{"base": 4, "md": 8, "lg": 12},
		Regions: map[string]Region{"main": {}},
	}
}

// Validate checks everything that can be checked without picking a
// breakpoint: scale shape, token resolvability, name syntax, and that
// every sparse mapping refers to a declared breakpoint. Span line
// existence is deliberately not checked here — it depends on the column
// count of the breakpoint being evaluated.
func (t *Theme) Validate() error {
	if len(t.Breakpoints) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "theme declares no breakpoints")
	}

	seen := map[string]bool{}
	prev := -1
	for _, def := range t.Breakpoints {
		if err := errors.ValidateBreakpointName(def.Name); err != nil {
			return err
		}
		if seen[def.Name] {
			return errors.New(errors.ErrCodeInvalidBreakpoint, "duplicate breakpoint %q", def.Name)
		}
		seen[def.Name] = true
		if def.MinWidth < 0 {
			return errors.New(errors.ErrCodeInvalidBreakpoint, "breakpoint %q has negative min_width", def.Name)
		}
		if def.MinWidth <= prev && prev >= 0 {
			return errors.New(errors.ErrCodeInvalidBreakpoint,
				"breakpoint %q min_width %d does not increase the scale", def.Name, def.MinWidth)
		}
		prev = def.MinWidth
	}

	if t.LayoutMax != "" {
		if _, err := MaxSize(t.LayoutMax); err != nil {
			return err
		}
	}

	for bp, token := range t.Gaps {
		if !seen[string(bp)] {
			return errors.New(errors.ErrCodeInvalidBreakpoint, "gaps refer to unknown breakpoint %q", bp)
		}
		if _, err := SpaceSize(token); err != nil {
			return err
		}
	}
	for bp, count := range t.Columns {
		if !seen[string(bp)] {
			return errors.New(errors.ErrCodeInvalidBreakpoint, "columns refer to unknown breakpoint %q", bp)
		}
		if count < 1 {
			return errors.New(errors.ErrCodeInvalidColumns,
				"column count at %q must be at least 1, got %d", bp, count)
		}
	}

	for name, region := range t.Regions {
		if err := errors.ValidateRegionName(name); err != nil {
			return err
		}
		for bp, span := range region.Span {
			if !seen[string(bp)] {
				return errors.New(errors.ErrCodeInvalidBreakpoint,
					"region %q span refers to unknown breakpoint %q", name, bp)
			}
			if err := errors.ValidateLineName(span.Start); err != nil {
				return err
			}
			if err := errors.ValidateLineName(span.End); err != nil {
				return err
			}
		}
	}
	return nil
}

// Order returns the theme's breakpoint sequence, smallest viewport first.
func (t *Theme) Order() breakpoint.Sequence {
	order := make(breakpoint.Sequence, len(t.Breakpoints))
	for i, def := range t.Breakpoints {
		order[i] = breakpoint.Breakpoint(def.Name)
	}
	return order
}

// Detect returns the breakpoint active at the given viewport width: the
// largest breakpoint whose min_width does not exceed it. Widths below the
// smallest threshold map to the smallest breakpoint.
func (t *Theme) Detect(widthPx int) breakpoint.Breakpoint {
	active := t.Breakpoints[0].Name
	for _, def := range t.Breakpoints {
		if widthPx >= def.MinWidth {
			active = def.Name
		}
	}
	return breakpoint.Breakpoint(active)
}

// MinWidth returns the activation threshold (px) of a breakpoint, or -1 if
// the breakpoint is not part of the theme.
func (t *Theme) MinWidth(bp breakpoint.Breakpoint) int {
	for _, def := range t.Breakpoints {
		if def.Name == string(bp) {
			return def.MinWidth
		}
	}
	return -1
}

// MaxWidth returns the resolved maximum content width, defaulting to 100%
// when the theme declares no layout_max.
func (t *Theme) MaxWidth() string {
	if t.LayoutMax == "" {
		return "100%"
	}
	size, err := MaxSize(t.LayoutMax)
	if err != nil {
		// Validate rejects unresolvable tokens at load; keep the raw token
		// for hand-built themes.
		return t.LayoutMax
	}
	return size
}

// ContentWidth derives the content column width expression for a resolved
// gap token and column count: the full column share of the available width
// minus one gap unit. It satisfies [grid.WidthFunc].
func (t *Theme) ContentWidth(gapToken string, columns int) string {
	gap, err := SpaceSize(gapToken)
	if err != nil {
		gap = gapToken
	}
	return fmt.Sprintf("calc((min(%s, 100%%) - %s) / %d - %s)", t.MaxWidth(), gap, columns, gap)
}

// GridConfig returns the grid-level structural config backed by this theme.
func (t *Theme) GridConfig() grid.Config {
	return grid.Config{
		Gaps:         t.Gaps,
		Columns:      t.Columns,
		ContentWidth: t.ContentWidth,
	}
}

// ResolveRegion resolves the named region at the given breakpoint. Unknown
// regions and breakpoints are configuration errors; resolution errors from
// the core propagate unchanged.
func (t *Theme) ResolveRegion(name string, current breakpoint.Breakpoint) (grid.Result, error) {
	region, ok := t.Regions[name]
	if !ok {
		return grid.Result{}, errors.New(errors.ErrCodeInvalidRegion, "unknown region %q", name)
	}
	order := t.Order()
	if !order.Contains(current) {
		return grid.Result{}, errors.New(errors.ErrCodeInvalidBreakpoint, "unknown breakpoint %q", current)
	}
	return grid.ResolveRegion(grid.Context{Current: current, Order: order}, t.GridConfig(), region.Span)
}

// RegionNames returns the theme's region names in sorted order.
func (t *Theme) RegionNames() []string {
	names := make([]string, 0, len(t.Regions))
	for name := range t.Regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
