package breakpoint

// Resolve returns the effective value for current from a sparse mapping,
// using a mobile-first cascade. The second return value reports whether a
// value was found.
//
// Resolution proceeds in two steps:
//
//  1. An explicit entry at current wins unconditionally, even if it is the
//     zero value for T.
//  2. Otherwise the sequence is scanned from current's position downward;
//     the first smaller breakpoint with a non-zero entry wins. Zero-valued
//     entries are skipped during this scan — an explicitly set zero at a
//     smaller breakpoint does not cascade upward, although it would have
//     been returned by step 1 had it been at current. This asymmetry is
//     intentional and relied upon by callers.
//
// If current is not a member of order, the scan is skipped entirely and
// Resolve reports not found. That is defined fallback behavior, not an
// error.
func Resolve[T comparable](values Values[T], current Breakpoint, order Sequence) (T, bool) {
	if v, ok := values[current]; ok {
		return v, true
	}

	var zero T
	for i := order.Index(current) - 1; i >= 0; i-- {
		if v, ok := values[order[i]]; ok && v != zero {
			return v, true
		}
	}
	return zero, false
}

// ResolveDefault is Resolve with a fallback: when no value is found, the
// fallback is returned instead of the zero value.
func ResolveDefault[T comparable](values Values[T], current Breakpoint, order Sequence, fallback T) T {
	if v, ok := Resolve(values, current, order); ok {
		return v
	}
	return fallback
}
