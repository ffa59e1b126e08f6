// Package grid builds named-line CSS grid column templates and slices them
// into subgrid spans for nested layout regions.
//
// # Templates
//
// A template is the ordered list of named grid lines for one breakpoint's
// column count N: a leading fluid line, N sized content lines, a trailing
// fluid line, and a closing sentinel — N+3 entries in total:
//
//	[full-start] 1fr
//	[content-start] minmax(0, w)
//	[content-2] minmax(0, w)
//	...
//	[content-N] minmax(0, w)
//	[content-end] 1fr
//	[full-end]
//
// Line names are derived from column index, never from nesting depth, so
// "content-5" refers to the same page position in every region. A nested
// region whose slice includes content-5 therefore aligns pixel-for-pixel
// with any other region's content-5, because the content column width is
// computed once per breakpoint from the same total columns and total width.
//
// # Spans
//
// A [Span] declares the portion of a parent template a nested region
// occupies, as a (start, end) line-name pair. [Slice] cuts a full template
// down to that range, keeping the line names intact and appending an
// unsized closing line so the slice still names its far boundary.
//
// # Regions
//
// [ResolveRegion] ties the pieces together for one layout region: it
// resolves the gap token, column count, and declared span for the current
// breakpoint via package breakpoint, builds the full template, and slices
// it when a span is declared.
//
// Everything in this package is a pure function of its inputs; templates
// are rebuilt from scratch on every call and no state persists between
// calls. Concurrent resolution of independent regions needs no
// coordination.
package grid
