package grid

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/matzehuels/gridframe/pkg/errors"
)

func TestSlice(t *testing.T) {
	full, err := Build(4, "10rem")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	tests := []struct {
		name      string
		span      Span
		wantNames []string
		wantExpr  string
	}{
		{
			name:      "ContentRange",
			span:      Span{"content-start", "content-3"},
			wantNames: []string{"content-start", "content-2", "content-3"},
			wantExpr:  "content-start / content-3",
		},
		{
			name:      "FullExtent",
			span:      FullSpan,
			wantNames: []string{"full-start", "content-start", "content-2", "content-3", "content-4", "content-end", "full-end"},
			wantExpr:  "full-start / full-end",
		},
		{
			name:      "TrailingRange",
			span:      Span{"content-3", "content-end"},
			wantNames: []string{"content-3", "content-4", "content-end"},
			wantExpr:  "content-3 / content-end",
		},
		{
			name:      "AdjacentLines",
			span:      Span{"content-2", "content-3"},
			wantNames: []string{"content-2", "content-3"},
			wantExpr:  "content-2 / content-3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, expr, err := Slice(full, tt.span)
			if err != nil {
				t.Fatalf("Slice: %v", err)
			}
			if !reflect.DeepEqual(got.Names(), tt.wantNames) {
				t.Errorf("names = %v, want %v", got.Names(), tt.wantNames)
			}
			if expr != tt.wantExpr {
				t.Errorf("expr = %q, want %q", expr, tt.wantExpr)
			}

			// The closing line repeats the end name but carries no size.
			last := got[len(got)-1]
			if last.Name != tt.span.End || last.Kind != NameOnly || last.Size != "" {
				t.Errorf("closing line = %+v, want unsized %q", last, tt.span.End)
			}

			// Everything before the closing line is the untouched
			// sub-sequence of the full template.
			start := full.Index(tt.span.Start)
			for i, l := range got[:len(got)-1] {
				if !reflect.DeepEqual(l, full[start+i]) {
					t.Errorf("line %d = %+v, want %+v", i, l, full[start+i])
				}
			}
		})
	}
}

func TestSliceUnknownLine(t *testing.T) {
	full, _ := Build(4, "10rem")

	tests := []struct {
		name string
		span Span
		line string
	}{
		{"UnknownStart", Span{"content-8", "content-end"}, "content-8"},
		{"UnknownEnd", Span{"content-start", "content-9"}, "content-9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Slice(full, tt.span)
			var lnf *errors.LineNotFoundError
			if !stderrors.As(err, &lnf) {
				t.Fatalf("error = %v, want LineNotFoundError", err)
			}
			if lnf.Line != tt.line {
				t.Errorf("Line = %q, want %q", lnf.Line, tt.line)
			}
			if lnf.Columns != 4 {
				t.Errorf("Columns = %d, want 4", lnf.Columns)
			}
			if !reflect.DeepEqual(lnf.Valid, full.Names()) {
				t.Errorf("Valid = %v, want full name list", lnf.Valid)
			}
		})
	}
}

func TestSliceInvertedSpan(t *testing.T) {
	// An end line before the start line yields only the closing line; both
	// names exist, so this is not a lookup failure.
	full, _ := Build(4, "10rem")
	got, expr, err := Slice(full, Span{"content-3", "content-2"})
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	if !reflect.DeepEqual(got.Names(), []string{"content-2"}) {
		t.Errorf("names = %v, want [content-2]", got.Names())
	}
	if expr != "content-3 / content-2" {
		t.Errorf("expr = %q", expr)
	}
}
