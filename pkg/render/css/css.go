// Package css renders resolved grid templates as CSS text.
//
// Three sinks are provided: the raw grid-template-columns value for one
// template ([TemplateValue]), a complete rule for one region at one
// breakpoint ([Rule]), and a full stylesheet covering every region and
// breakpoint of a theme, with media queries ([RenderStylesheet]).
package css

import (
	"fmt"
	"strings"

	"github.com/matzehuels/gridframe/pkg/breakpoint"
	"github.com/matzehuels/gridframe/pkg/grid"
	"github.com/matzehuels/gridframe/pkg/theme"
)

// DefaultClassPrefix is prepended to region names to form CSS class
// selectors (region "main" becomes ".gf-main").
const DefaultClassPrefix = "gf-"

// TemplateValue renders a template as a grid-template-columns value, one
// line per grid line: sized lines as "[name] size", name-only lines as
// "[name]".
func TemplateValue(t grid.Template) string {
	lines := make([]string, len(t))
	for i, l := range t {
		if l.Kind == grid.NameOnly {
			lines[i] = fmt.Sprintf("[%s]", l.Name)
		} else {
			lines[i] = fmt.Sprintf("[%s] %s", l.Name, l.Size)
		}
	}
	return strings.Join(lines, "\n")
}

// Rule renders a complete CSS rule for one resolved region. gap is the
// resolved gap length for the breakpoint; when empty, no gap declaration is
// emitted. A grid-column declaration is emitted only when the region
// declared a span.
func Rule(selector string, res grid.Result, gap string) string {
	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	b.WriteString("  display: grid;\n")
	b.WriteString("  grid-template-columns:\n")
	b.WriteString(indentBlock(TemplateValue(res.Template), "    "))
	b.WriteString(";\n")

	if gap != "" {
		fmt.Fprintf(&b, "  column-gap: %s;\n", gap)
	}
	if res.Span != "" {
		fmt.Fprintf(&b, "  grid-column: %s;\n", res.Span)
	}
	b.WriteString("}")
	return b.String()
}

// StylesheetOption configures stylesheet rendering via [RenderStylesheet].
type StylesheetOption func(*stylesheetRenderer)

type stylesheetRenderer struct {
	prefix  string
	regions []string
}

// WithClassPrefix overrides the class prefix used for region selectors.
func WithClassPrefix(p string) StylesheetOption {
	return func(r *stylesheetRenderer) { r.prefix = p }
}

// WithRegions restricts the stylesheet to the named regions instead of
// every region of the theme.
func WithRegions(names ...string) StylesheetOption {
	return func(r *stylesheetRenderer) { r.regions = names }
}

// RenderStylesheet renders the full stylesheet for a theme: for every
// breakpoint of the scale, one rule per region, wrapped in a
// min-width media query for every breakpoint above the smallest.
//
// Rendering stops at the first resolution failure and propagates it, so an
// undeclared span line surfaces as a LINE_NOT_FOUND diagnostic rather than
// a silently incomplete stylesheet.
func RenderStylesheet(th *theme.Theme, opts ...StylesheetOption) (string, error) {
	r := stylesheetRenderer{prefix: DefaultClassPrefix, regions: th.RegionNames()}
	for _, opt := range opts {
		opt(&r)
	}

	var b strings.Builder
	b.WriteString("/* generated by gridframe; do not edit */\n")

	for _, def := range th.Breakpoints {
		bp := def.Name
		wrapped := def.MinWidth > 0
		indent := ""
		if wrapped {
			fmt.Fprintf(&b, "\n@media (min-width: %dpx) {\n", def.MinWidth)
			indent = "  "
		} else {
			b.WriteString("\n")
		}

		for i, region := range r.regions {
			res, err := th.ResolveRegion(region, breakpoint.Breakpoint(bp))
			if err != nil {
				return "", fmt.Errorf("region %q at breakpoint %q: %w", region, bp, err)
			}
			gap, err := theme.SpaceSize(res.Gap)
			if err != nil {
				gap = res.Gap
			}
			rule := Rule("."+r.prefix+region, res, gap)
			if wrapped {
				rule = indentBlock(rule, indent)
			}
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(rule)
			b.WriteString("\n")
		}

		if wrapped {
			b.WriteString("}\n")
		}
	}
	return b.String(), nil
}

func indentBlock(s, indent string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = indent + l
	}
	return strings.Join(lines, "\n")
}
