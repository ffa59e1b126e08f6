package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gridframe/pkg/breakpoint"
	"github.com/matzehuels/gridframe/pkg/grid"
	"github.com/matzehuels/gridframe/pkg/render/css"
	"github.com/matzehuels/gridframe/pkg/theme"
)

// Runner executes the resolve → render pipeline against one theme.
// A Runner holds no mutable state of its own and is safe for concurrent
// use; the theme must not be mutated while runs are in flight.
type Runner struct {
	theme  *theme.Theme
	logger *log.Logger
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Breakpoint is the breakpoint the regions were resolved at.
	Breakpoint breakpoint.Breakpoint

	// Regions holds the resolved template and span per region name.
	Regions map[string]grid.Result

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RegionCount int
	ResolveTime time.Duration
	RenderTime  time.Duration
}

// NewRunner creates a pipeline runner for the given theme. A nil logger
// discards progress output.
func NewRunner(th *theme.Theme, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{theme: th, logger: logger}
}

// Execute runs the full pipeline: breakpoint selection, region resolution,
// and artifact rendering.
func (r *Runner) Execute(opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	bp := r.pickBreakpoint(opts)
	regions := opts.Regions
	if len(regions) == 0 {
		regions = r.theme.RegionNames()
	}

	res := &Result{
		Breakpoint: bp,
		Regions:    make(map[string]grid.Result, len(regions)),
		Artifacts:  make(map[string][]byte, len(opts.Formats)),
	}

	start := time.Now()
	for _, name := range regions {
		resolved, err := r.theme.ResolveRegion(name, bp)
		if err != nil {
			return nil, err
		}
		res.Regions[name] = resolved
	}
	res.Stats.RegionCount = len(regions)
	res.Stats.ResolveTime = time.Since(start)
	r.logger.Debug("resolved regions", "breakpoint", bp, "count", len(regions), "took", res.Stats.ResolveTime)

	start = time.Now()
	for _, format := range opts.Formats {
		artifact, err := r.render(format, bp, regions, res.Regions, opts)
		if err != nil {
			return nil, err
		}
		res.Artifacts[format] = artifact
	}
	res.Stats.RenderTime = time.Since(start)
	r.logger.Debug("rendered artifacts", "formats", opts.Formats, "took", res.Stats.RenderTime)

	return res, nil
}

// pickBreakpoint applies the Breakpoint > ViewportWidth > smallest
// precedence from Options.
func (r *Runner) pickBreakpoint(opts Options) breakpoint.Breakpoint {
	if opts.Breakpoint != "" {
		return breakpoint.Breakpoint(opts.Breakpoint)
	}
	if opts.ViewportWidth > 0 {
		return r.theme.Detect(opts.ViewportWidth)
	}
	return r.theme.Order()[0]
}

func (r *Runner) render(format string, bp breakpoint.Breakpoint, order []string, resolved map[string]grid.Result, opts Options) ([]byte, error) {
	switch format {
	case FormatCSS:
		sheet, err := css.RenderStylesheet(r.theme,
			css.WithClassPrefix(opts.ClassPrefix),
			css.WithRegions(order...))
		if err != nil {
			return nil, err
		}
		return []byte(sheet), nil

	case FormatJSON:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, name := range order {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
			data, err := css.RenderJSON(name, bp, resolved[name])
			if err != nil {
				return nil, err
			}
			buf.Write(data)
		}
		buf.WriteString("\n]\n")
		return buf.Bytes(), nil

	case FormatTemplate:
		var buf bytes.Buffer
		for _, name := range order {
			res := resolved[name]
			fmt.Fprintf(&buf, "/* %s */\n%s\n", name, css.TemplateValue(res.Template))
			if res.Span != "" {
				fmt.Fprintf(&buf, "/* grid-column: %s */\n", res.Span)
			}
			buf.WriteByte('\n')
		}
		return buf.Bytes(), nil
	}
	// ValidateAndSetDefaults rejects unknown formats before we get here.
	return nil, ValidateFormat(format)
}
