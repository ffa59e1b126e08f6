package css

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/gridframe/pkg/breakpoint"
	"github.com/matzehuels/gridframe/pkg/grid"
	"github.com/matzehuels/gridframe/pkg/theme"
)

func TestTemplateValue(t *testing.T) {
	tmpl, err := grid.Build(2, "10rem")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := strings.Join([]string{
		"[full-start] 1fr",
		"[content-start] minmax(0, 10rem)",
		"[content-2] minmax(0, 10rem)",
		"[content-end] 1fr",
		"[full-end]",
	}, "\n")
	if got := TemplateValue(tmpl); got != want {
		t.Errorf("TemplateValue =\n%s\nwant:\n%s", got, want)
	}
}

func TestRule(t *testing.T) {
	tmpl, _ := grid.Build(1, "10rem")
	res := grid.Result{Template: tmpl, Gap: "4", Columns: 1, Span: "content-start / content-end"}

	got := Rule(".gf-aside", res, "1rem")
	for _, want := range []string{
		".gf-aside {",
		"display: grid;",
		"grid-template-columns:",
		"[full-start] 1fr",
		"column-gap: 1rem;",
		"grid-column: content-start / content-end;",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rule missing %q:\n%s", want, got)
		}
	}
}

func TestRuleOmitsOptionalDeclarations(t *testing.T) {
	tmpl, _ := grid.Build(1, "10rem")
	got := Rule(".gf-main", grid.Result{Template: tmpl}, "")
	if strings.Contains(got, "column-gap") {
		t.Error("rule emits column-gap without a gap value")
	}
	if strings.Contains(got, "grid-column:") {
		t.Error("rule emits grid-column without a span")
	}
}

func TestRenderStylesheet(t *testing.T) {
	th := theme.Default()
	sheet, err := RenderStylesheet(th)
	if err != nil {
		t.Fatalf("RenderStylesheet: %v", err)
	}

	for _, want := range []string{
		".gf-main {",
		"@media (min-width: 640px) {",
		"@media (min-width: 1536px) {",
		"column-gap: 1rem;",  // base gap token "4"
		"column-gap: 2rem;",  // lg gap token "8"
		"minmax(0, calc((min(80rem, 100%) - 1rem) / 4 - 1rem))",
	} {
		if !strings.Contains(sheet, want) {
			t.Errorf("stylesheet missing %q", want)
		}
	}

	// The base breakpoint's rules are not wrapped in a media query.
	base := sheet[:strings.Index(sheet, "@media")]
	if !strings.Contains(base, ".gf-main {") {
		t.Error("base rule should appear before the first media query")
	}
}

func TestRenderStylesheetOptions(t *testing.T) {
	th := theme.Default()
	sheet, err := RenderStylesheet(th, WithClassPrefix("layout-"))
	if err != nil {
		t.Fatalf("RenderStylesheet: %v", err)
	}
	if !strings.Contains(sheet, ".layout-main {") {
		t.Error("class prefix option not applied")
	}

	if _, err := RenderStylesheet(th, WithRegions("nope")); err == nil {
		t.Error("expected error for unknown region")
	}
}

func TestRenderStylesheetPropagatesLineNotFound(t *testing.T) {
	th := theme.Default()
	th.Regions["aside"] = theme.Region{
		Span: breakpoint.Values[grid.Span]{"base": {Start: "content-start", End: "content-9"}},
	}
	_, err := RenderStylesheet(th)
	if err == nil || !strings.Contains(err.Error(), "content-9") {
		t.Errorf("error = %v, want line diagnostic", err)
	}
}

func TestRenderJSON(t *testing.T) {
	tmpl, _ := grid.Build(2, "10rem")
	res := grid.Result{Template: tmpl, Gap: "4", Columns: 2}

	data, err := RenderJSON("main", "md", res)
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var out struct {
		Region     string `json:"region"`
		Breakpoint string `json:"breakpoint"`
		Columns    int    `json:"columns"`
		Span       string `json:"span"`
		Lines      []struct {
			Name string `json:"name"`
			Size string `json:"size"`
		} `json:"lines"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Region != "main" || out.Breakpoint != "md" || out.Columns != 2 {
		t.Errorf("header = %+v", out)
	}
	if len(out.Lines) != 5 {
		t.Fatalf("lines = %d, want 5", len(out.Lines))
	}
	if out.Lines[4].Name != "full-end" || out.Lines[4].Size != "" {
		t.Errorf("sentinel = %+v", out.Lines[4])
	}
}
