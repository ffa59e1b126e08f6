package pipeline

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/gridframe/pkg/errors"
	"github.com/matzehuels/gridframe/pkg/theme"
)

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"css", "json", "template"}); err != nil {
		t.Errorf("valid formats rejected: %v", err)
	}
	if err := ValidateFormat("svg"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormat(svg) = %v, want INVALID_FORMAT", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatCSS {
		t.Errorf("Formats = %v, want [css]", opts.Formats)
	}
	if opts.ClassPrefix == "" || opts.Logger == nil {
		t.Error("defaults not applied")
	}

	// Idempotent: a second call leaves everything in place.
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second call: %v", err)
	}
}

func TestExecute(t *testing.T) {
	runner := NewRunner(theme.Default(), nil)

	res, err := runner.Execute(Options{
		Breakpoint: "md",
		Formats:    []string{FormatCSS, FormatJSON, FormatTemplate},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if res.Breakpoint != "md" {
		t.Errorf("Breakpoint = %q", res.Breakpoint)
	}
	if res.Stats.RegionCount != 1 {
		t.Errorf("RegionCount = %d, want 1", res.Stats.RegionCount)
	}
	if got := res.Regions["main"].Columns; got != 8 {
		t.Errorf("main columns at md = %d, want 8", got)
	}

	if !strings.Contains(string(res.Artifacts[FormatCSS]), ".gf-main {") {
		t.Error("css artifact missing main rule")
	}
	var regions []map[string]any
	if err := json.Unmarshal(res.Artifacts[FormatJSON], &regions); err != nil {
		t.Fatalf("json artifact: %v", err)
	}
	if len(regions) != 1 || regions[0]["region"] != "main" {
		t.Errorf("json artifact = %v", regions)
	}
	if !strings.Contains(string(res.Artifacts[FormatTemplate]), "[full-start] 1fr") {
		t.Error("template artifact missing leading line")
	}
}

func TestExecuteDetectsBreakpoint(t *testing.T) {
	runner := NewRunner(theme.Default(), nil)

	res, err := runner.Execute(Options{ViewportWidth: 800, Formats: []string{FormatTemplate}})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Breakpoint != "md" {
		t.Errorf("Breakpoint = %q, want md for 800px", res.Breakpoint)
	}

	// Neither breakpoint nor width: smallest wins.
	res, err = runner.Execute(Options{Formats: []string{FormatTemplate}})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Breakpoint != "base" {
		t.Errorf("Breakpoint = %q, want base", res.Breakpoint)
	}
}

func TestExecuteErrors(t *testing.T) {
	runner := NewRunner(theme.Default(), nil)

	if _, err := runner.Execute(Options{Formats: []string{"svg"}}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("unknown format error = %v", err)
	}
	if _, err := runner.Execute(Options{Regions: []string{"nope"}}); !errors.Is(err, errors.ErrCodeInvalidRegion) {
		t.Errorf("unknown region error = %v", err)
	}
	if _, err := runner.Execute(Options{Breakpoint: "mega"}); !errors.Is(err, errors.ErrCodeInvalidBreakpoint) {
		t.Errorf("unknown breakpoint error = %v", err)
	}
}
