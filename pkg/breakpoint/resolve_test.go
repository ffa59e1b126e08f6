package breakpoint

import "testing"

var order = Sequence{"base", "sm", "md", "lg", "xl"}

func TestResolveExactMatch(t *testing.T) {
	values := Values[int]{"base": 1, "md": 3}
	got, ok := Resolve(values, "md", order)
	if !ok || got != 3 {
		t.Errorf("Resolve(md) = %d, %v; want 3, true", got, ok)
	}
}

func TestResolveExactMatchWinsOverFallback(t *testing.T) {
	// An explicit zero at the current breakpoint is returned verbatim,
	// never replaced by a smaller breakpoint's value.
	values := Values[int]{"base": 4, "md": 0}
	got, ok := Resolve(values, "md", order)
	if !ok || got != 0 {
		t.Errorf("Resolve(md) = %d, %v; want 0, true", got, ok)
	}
}

func TestResolveCascade(t *testing.T) {
	tests := []struct {
		name    string
		values  Values[int]
		current Breakpoint
		want    int
		wantOK  bool
	}{
		{"FallsBackOneStep", Values[int]{"base": 1, "md": 3}, "sm", 1, true},
		{"FallsBackPastGap", Values[int]{"base": 1, "md": 3}, "xl", 3, true},
		{"NearestSmallerWins", Values[int]{"base": 1, "sm": 2, "md": 3}, "lg", 3, true},
		{"SmallestBreakpoint", Values[int]{"base": 1}, "base", 1, true},
		{"NothingBelow", Values[int]{"lg": 9}, "sm", 0, false},
		{"EmptyMapping", Values[int]{}, "md", 0, false},
		{"NilMapping", nil, "md", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.values, tt.current, order)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Resolve(%s) = %d, %v; want %d, %v", tt.current, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolveSkipsZeroDuringScan(t *testing.T) {
	// A zero entry below the current breakpoint is skipped by the cascade,
	// even though the same entry would win as an exact match.
	values := Values[int]{"base": 4, "sm": 0}
	got, ok := Resolve(values, "md", order)
	if !ok || got != 4 {
		t.Errorf("Resolve(md) = %d, %v; want 4 (skipping zero at sm), true", got, ok)
	}

	got, ok = Resolve(values, "sm", order)
	if !ok || got != 0 {
		t.Errorf("Resolve(sm) = %d, %v; want 0 (exact match), true", got, ok)
	}
}

func TestResolveCurrentNotInOrder(t *testing.T) {
	// An unknown current breakpoint skips the scan and reports not found.
	values := Values[int]{"base": 1, "md": 3}
	if got, ok := Resolve(values, "huge", order); ok || got != 0 {
		t.Errorf("Resolve(huge) = %d, %v; want 0, false", got, ok)
	}
	if got := ResolveDefault(values, "huge", order, 7); got != 7 {
		t.Errorf("ResolveDefault(huge) = %d, want fallback 7", got)
	}
	// An exact entry still wins even when current is outside the order.
	withEntry := Values[int]{"huge": 42}
	if got, ok := Resolve(withEntry, "huge", order); !ok || got != 42 {
		t.Errorf("Resolve(huge) = %d, %v; want 42, true", got, ok)
	}
}

func TestResolveDefault(t *testing.T) {
	values := Values[string]{"base": "4"}
	if got := ResolveDefault(values, "lg", order, "0"); got != "4" {
		t.Errorf("ResolveDefault(lg) = %q, want %q", got, "4")
	}
	if got := ResolveDefault(Values[string]{}, "lg", order, "0"); got != "0" {
		t.Errorf("ResolveDefault(lg, empty) = %q, want fallback %q", got, "0")
	}
}

func TestResolveStructValues(t *testing.T) {
	type pair struct{ start, end string }
	values := Values[pair]{"base": {"content-start", "content-3"}}

	got, ok := Resolve(values, "xl", order)
	if !ok || got != (pair{"content-start", "content-3"}) {
		t.Errorf("Resolve(xl) = %+v, %v", got, ok)
	}

	// The zero struct is skipped by the cascade like any other zero value.
	values["md"] = pair{}
	got, ok = Resolve(values, "lg", order)
	if !ok || got != (pair{"content-start", "content-3"}) {
		t.Errorf("Resolve(lg) = %+v, %v; want base entry, skipping zero at md", got, ok)
	}
}

func TestSequenceIndex(t *testing.T) {
	if got := order.Index("md"); got != 2 {
		t.Errorf("Index(md) = %d, want 2", got)
	}
	if got := order.Index("nope"); got != -1 {
		t.Errorf("Index(nope) = %d, want -1", got)
	}
	if !order.Contains("base") || order.Contains("nope") {
		t.Error("Contains gave wrong membership")
	}
}
