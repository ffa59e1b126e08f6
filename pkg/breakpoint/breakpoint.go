// Package breakpoint implements mobile-first value resolution over an
// ordered sequence of viewport breakpoints.
//
// A breakpoint is an opaque label ("base", "md", "lg", ...) whose only
// structure is its position in a [Sequence] ordered from smallest to largest
// viewport. Configuration values (gap sizes, column counts, region spans)
// are declared sparsely per breakpoint in a [Values] mapping; [Resolve]
// picks the effective value for the current breakpoint by cascading down to
// the nearest smaller breakpoint with an entry.
//
// The package is purely functional: no state is shared between calls and
// all inputs are treated as immutable for the duration of one resolution.
package breakpoint

// Breakpoint is a named viewport-size threshold. Its ordering is defined
// entirely by its position in a Sequence; the label itself is opaque.
type Breakpoint string

// Sequence is the full ordered list of breakpoints for a theme, from
// smallest to largest viewport. It is supplied by the environment and must
// not change during a resolution.
type Sequence []Breakpoint

// Index returns the position of bp in the sequence, or -1 if bp is not a
// member.
func (s Sequence) Index(bp Breakpoint) int {
	for i, b := range s {
		if b == bp {
			return i
		}
	}
	return -1
}

// Contains reports whether bp is a member of the sequence.
func (s Sequence) Contains(bp Breakpoint) bool {
	return s.Index(bp) >= 0
}

// Values is a sparse mapping from breakpoints to configuration values.
// Not every breakpoint needs an entry; declaration order is irrelevant.
type Values[T comparable] map[Breakpoint]T
