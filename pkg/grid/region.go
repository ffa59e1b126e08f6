package grid

import (
	"github.com/matzehuels/gridframe/pkg/breakpoint"
	"github.com/matzehuels/gridframe/pkg/errors"
)

// Context carries the breakpoint environment for one resolution: the
// current breakpoint and the theme's full ordered sequence. The environment
// re-invokes resolution with a new Context whenever the viewport crosses a
// breakpoint; nothing here subscribes to changes.
type Context struct {
	Current breakpoint.Breakpoint
	Order   breakpoint.Sequence
}

// WidthFunc derives the content column width expression for a breakpoint
// from its resolved gap token and column count. The derivation depends on
// resolved token sizes and lives outside this package (see theme.Theme);
// its output is the sole numeric input to Build.
type WidthFunc func(gapToken string, columns int) string

// Config holds the breakpoint-mapped structural inputs shared by every
// region of a layout.
type Config struct {
	// Gaps maps breakpoints to gap size tokens. Required: a region cannot
	// be resolved for a breakpoint with no gap at or below it.
	Gaps breakpoint.Values[string]

	// Columns maps breakpoints to content column counts. Required, like
	// Gaps.
	Columns breakpoint.Values[int]

	// ContentWidth derives the column width expression. Required.
	ContentWidth WidthFunc
}

// Result is the outcome of resolving one region for one breakpoint.
type Result struct {
	// Template is the region's grid lines: the full template when the
	// region spans its parent's whole extent, or the sliced sub-range when
	// a span was declared.
	Template Template

	// Span is the CSS grid-column expression ("start / end"), or empty
	// when the region declared no span and occupies the full extent by the
	// enclosing layout's default placement.
	Span string

	// Gap and Columns are the structural values resolved for the
	// breakpoint, returned for renderers that need them (gap declarations,
	// diagnostics).
	Gap     string
	Columns int
}

// ResolveRegion computes the template and span for one layout region at the
// current breakpoint.
//
// Gap token and column count are resolved through the mobile-first cascade
// and are required: an absent result escalates to UNRESOLVED_GAP or
// UNRESOLVED_COLUMNS, since no template can be built without them. The span
// mapping is optional; a nil mapping leaves the full template unsliced and
// emits no span expression. A non-nil mapping resolves through the same
// cascade with [FullSpan] as the fallback, then slices, propagating any
// [errors.LineNotFoundError].
func ResolveRegion(ctx Context, cfg Config, span breakpoint.Values[Span]) (Result, error) {
	if cfg.ContentWidth == nil {
		return Result{}, errors.New(errors.ErrCodeInvalidConfig, "content width derivation is required")
	}

	gap, ok := breakpoint.Resolve(cfg.Gaps, ctx.Current, ctx.Order)
	if !ok {
		return Result{}, errors.New(errors.ErrCodeUnresolvedGap,
			"no gap size defined at or below breakpoint %q", ctx.Current)
	}
	columns, ok := breakpoint.Resolve(cfg.Columns, ctx.Current, ctx.Order)
	if !ok {
		return Result{}, errors.New(errors.ErrCodeUnresolvedColumns,
			"no column count defined at or below breakpoint %q", ctx.Current)
	}

	full, err := Build(columns, cfg.ContentWidth(gap, columns))
	if err != nil {
		return Result{}, err
	}

	res := Result{Template: full, Gap: gap, Columns: columns}
	if span == nil {
		return res, nil
	}

	sp := breakpoint.ResolveDefault(span, ctx.Current, ctx.Order, FullSpan)
	sliced, expr, err := Slice(full, sp)
	if err != nil {
		return Result{}, err
	}
	res.Template = sliced
	res.Span = expr
	return res, nil
}
