package grid

import "github.com/matzehuels/gridframe/pkg/errors"

// Span declares which portion of a parent template a nested region
// occupies, as a pair of line names from that template.
type Span struct {
	Start string
	End   string
}

// FullSpan covers a template's entire extent, from the leading fluid line
// to the closing sentinel. It is the default when a region declares a span
// mapping but no entry resolves for the current breakpoint.
var FullSpan = Span{Start: LineFullStart, End: LineFullEnd}

// Expr returns the CSS grid-column expression for the span,
// e.g. "content-start / content-3".
func (s Span) Expr() string {
	return s.Start + " / " + s.End
}

// Slice cuts a full template down to the sub-range bounded by span. The
// result keeps every line from span.Start (inclusive) to span.End
// (exclusive) unchanged, then appends a name-only closing line repeating
// span.End: the slice still names its far boundary but carries no
// independent size, which preserves grid semantics for the sub-range.
// Line names survive slicing, so same-named lines in different nested
// regions keep aligning on the page.
//
// The span expression for the slice is returned alongside the template.
// A start or end name absent from the template fails with a
// [errors.LineNotFoundError] naming the offender and listing every valid
// line; the declaration is never silently corrected.
func Slice(full Template, span Span) (Template, string, error) {
	start := full.Index(span.Start)
	if start < 0 {
		return nil, "", lineNotFound(full, span.Start)
	}
	end := full.Index(span.End)
	if end < 0 {
		return nil, "", lineNotFound(full, span.End)
	}

	out := make(Template, 0, end-start+1)
	if start < end {
		out = append(out, full[start:end]...)
	}
	out = append(out, Line{Name: span.End, Kind: NameOnly})
	return out, span.Expr(), nil
}

func lineNotFound(full Template, name string) *errors.LineNotFoundError {
	return &errors.LineNotFoundError{
		Line:    name,
		Valid:   full.Names(),
		Columns: len(full) - 3, // inverse of the columns+3 length invariant
	}
}
