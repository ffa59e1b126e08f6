package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridframe/pkg/grid"
	"github.com/matzehuels/gridframe/pkg/pipeline"
)

// resolveOpts holds the command-line flags for the resolve command.
type resolveOpts struct {
	themePath  string // theme TOML file (empty = built-in default)
	breakpoint string // breakpoint name to resolve at
	width      int    // viewport width in px, used when breakpoint is empty
	format     string // output format: pretty (default), json, template
	output     string // output file path (stdout if empty)
}

// resolveCommand creates the resolve command for inspecting regions at one
// breakpoint.
func (c *CLI) resolveCommand() *cobra.Command {
	var opts resolveOpts

	cmd := &cobra.Command{
		Use:   "resolve [region...]",
		Short: "Resolve regions at a breakpoint",
		Long:  `Resolve the grid template, span, gap, and column count of the named regions at one breakpoint. Without arguments, every region of the theme is resolved. The breakpoint is chosen by --breakpoint, detected from --width, or defaults to the smallest.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runResolve(args, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.themePath, "theme", "t", "", "theme TOML file (default: built-in theme)")
	cmd.Flags().StringVarP(&opts.breakpoint, "breakpoint", "b", "", "breakpoint to resolve at")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "viewport width in px (detects the breakpoint)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: json, template (default: table display)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write output to file instead of stdout")

	return cmd
}

func (c *CLI) runResolve(regions []string, opts *resolveOpts) error {
	runner, err := c.newRunner(opts.themePath)
	if err != nil {
		return err
	}

	pipeOpts := pipeline.Options{
		Breakpoint:    opts.breakpoint,
		ViewportWidth: opts.width,
		Regions:       regions,
		Logger:        c.Logger,
	}
	if opts.format != "" {
		pipeOpts.Formats = parseFormats(opts.format)
	} else {
		pipeOpts.Formats = []string{pipeline.FormatTemplate}
	}

	prog := newProgress(c.Logger)
	res, err := runner.Execute(pipeOpts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Resolved %d regions at %s", res.Stats.RegionCount, res.Breakpoint))

	// Machine-readable formats go to the output file or stdout as-is.
	if opts.format != "" {
		return writeArtifacts(res, pipeOpts.Formats, opts.output)
	}

	printKeyValue("breakpoint", string(res.Breakpoint))
	for _, name := range regionOrder(regions, res) {
		printRegion(name, res.Regions[name])
	}
	return nil
}

// regionOrder preserves the requested region order, falling back to the
// result's sorted keys when no regions were named.
func regionOrder(requested []string, res *pipeline.Result) []string {
	if len(requested) > 0 {
		return requested
	}
	names := make([]string, 0, len(res.Regions))
	for name := range res.Regions {
		names = append(names, name)
	}
	// Regions map iteration order is random; the runner resolved them from
	// the theme's sorted name list, so re-sort for stable display.
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
	return names
}

// printRegion renders one resolved region as a bordered line table.
func printRegion(name string, res grid.Result) {
	fmt.Println()
	fmt.Println(StyleTitle.Render(name))
	printKeyValue("columns", fmt.Sprintf("%d", res.Columns))
	if res.Gap != "" {
		printKeyValue("gap", res.Gap)
	}
	if res.Span != "" {
		printKeyValue("grid-column", res.Span)
	}

	fmt.Println(lineTable(res.Template))
}

// lineTable renders a template's lines as a bordered two-column table.
func lineTable(tmpl grid.Template) string {
	rows := make([][]string, len(tmpl))
	for i, line := range tmpl {
		size := line.Size
		if line.Kind == grid.NameOnly {
			size = StyleDim.Render("—")
		}
		rows[i] = []string{line.Name, size}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Line", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleValue
		})
	return t.Render()
}

// writeArtifacts writes rendered artifacts to output (or stdout). With a
// single format the output path is used directly; with multiple formats the
// format name is appended as an extension.
func writeArtifacts(res *pipeline.Result, formats []string, output string) error {
	if output == "" {
		for _, f := range formats {
			os.Stdout.Write(res.Artifacts[f])
		}
		return nil
	}

	for _, f := range formats {
		path := output
		if len(formats) > 1 {
			path = fmt.Sprintf("%s.%s", strings.TrimSuffix(output, "."+f), f)
		}
		if err := os.WriteFile(path, res.Artifacts[f], 0o644); err != nil {
			return err
		}
		printFile(path)
	}
	return nil
}
