package grid

import (
	"fmt"

	"github.com/matzehuels/gridframe/pkg/errors"
)

// Well-known line names shared by every template.
const (
	LineFullStart    = "full-start"
	LineContentStart = "content-start"
	LineContentEnd   = "content-end"
	LineFullEnd      = "full-end"
)

// FluidSize is the size expression for the leading and trailing fluid
// columns: one flexible fraction of the leftover space.
const FluidSize = "1fr"

// LineKind distinguishes sized lines from name-only boundary lines.
type LineKind int

const (
	// Sized lines carry a size expression for the column that follows them.
	Sized LineKind = iota

	// NameOnly lines contribute a name but no column of their own; the
	// template's closing sentinel and a slice's closing line use this kind.
	NameOnly
)

// Line is one entry of a template: a grid line name plus, for Sized lines,
// the size expression of the column it opens.
type Line struct {
	Name string
	Kind LineKind
	Size string // empty when Kind is NameOnly
}

// Template is the ordered list of named grid lines for one breakpoint.
type Template []Line

// Index returns the position of the line named name, or -1 if the template
// has no such line.
func (t Template) Index(name string) int {
	for i, l := range t {
		if l.Name == name {
			return i
		}
	}
	return -1
}

// Names returns the ordered line names of the template.
func (t Template) Names() []string {
	names := make([]string, len(t))
	for i, l := range t {
		names[i] = l.Name
	}
	return names
}

// ContentLine returns the canonical name of the line opening content column
// i (1-based). Column 1 opens at content-start; higher columns open at
// content-2, content-3, and so on.
func ContentLine(i int) string {
	if i <= 1 {
		return LineContentStart
	}
	return fmt.Sprintf("content-%d", i)
}

// Build constructs the full template for a breakpoint resolved to columns
// content columns, each sized minmax(0, contentWidth). The caller derives
// contentWidth from the layout's maximum width and gap for the breakpoint;
// Build treats it as an opaque CSS expression.
//
// The result always has columns+3 entries: full-start (fluid), the sized
// content lines, content-end (fluid), and the unsized full-end sentinel.
// A column count below 1 is a caller bug and fails with INVALID_COLUMNS.
func Build(columns int, contentWidth string) (Template, error) {
	if columns < 1 {
		return nil, errors.New(errors.ErrCodeInvalidColumns,
			"column count must be at least 1, got %d", columns)
	}

	size := fmt.Sprintf("minmax(0, %s)", contentWidth)
	t := make(Template, 0, columns+3)
	t = append(t, Line{Name: LineFullStart, Kind: Sized, Size: FluidSize})
	for i := 1; i <= columns; i++ {
		t = append(t, Line{Name: ContentLine(i), Kind: Sized, Size: size})
	}
	t = append(t, Line{Name: LineContentEnd, Kind: Sized, Size: FluidSize})
	t = append(t, Line{Name: LineFullEnd, Kind: NameOnly})
	return t, nil
}
