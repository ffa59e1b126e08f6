// Package pipeline provides the resolve → render pipeline for Gridframe.
//
// This package implements the pipeline shared by the CLI, the dev server,
// and the preview TUI: pick a breakpoint, resolve every requested region's
// template and span, and render the results in the requested formats. By
// centralizing this logic, all entry points behave identically.
//
// # Usage
//
//	runner := pipeline.NewRunner(th, logger)
//	result, err := runner.Execute(pipeline.Options{
//	    Breakpoint: "md",
//	    Formats:    []string{pipeline.FormatCSS},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	css := result.Artifacts[pipeline.FormatCSS]
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridframe/pkg/errors"
	"github.com/matzehuels/gridframe/pkg/render/css"
)

// Format constants for output formats.
const (
	// FormatCSS renders a complete stylesheet (all breakpoints, media
	// queries); it ignores Options.Breakpoint.
	FormatCSS = "css"

	// FormatJSON renders the resolved regions at one breakpoint as JSON.
	FormatJSON = "json"

	// FormatTemplate renders the raw grid-template-columns value of each
	// resolved region at one breakpoint.
	FormatTemplate = "template"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatCSS:      true,
	FormatJSON:     true,
	FormatTemplate: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: css, json, template)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for one pipeline run.
type Options struct {
	// Breakpoint selects the breakpoint to resolve at. When empty and
	// ViewportWidth is set, the breakpoint is detected from the width;
	// when both are empty, the smallest breakpoint is used.
	Breakpoint string

	// ViewportWidth is a viewport width in px used to detect the
	// breakpoint when Breakpoint is empty.
	ViewportWidth int

	// Regions restricts the run to the named regions. Empty means every
	// region of the theme.
	Regions []string

	// Formats selects the artifacts to render. Empty defaults to css.
	Formats []string

	// ClassPrefix overrides the CSS class prefix for region selectors.
	ClassPrefix string

	// Logger receives progress output. Defaults to a discard logger.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks option consistency and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatCSS}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.ClassPrefix == "" {
		o.ClassPrefix = css.DefaultClassPrefix
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}
