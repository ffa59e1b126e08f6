package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridframe/pkg/render/css"
)

// cssOpts holds the command-line flags for the css command.
type cssOpts struct {
	themePath   string // theme TOML file (empty = built-in default)
	output      string // output file path (stdout if empty)
	classPrefix string // CSS class prefix for region selectors
	regions     []string
}

// cssCommand creates the css command for rendering the full stylesheet.
func (c *CLI) cssCommand() *cobra.Command {
	var opts cssOpts

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Render the responsive stylesheet",
		Long:  `Render the complete stylesheet for a theme: one rule per region per breakpoint, with rules above the smallest breakpoint wrapped in min-width media queries.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCSS(&opts)
		},
	}

	cmd.Flags().StringVarP(&opts.themePath, "theme", "t", "", "theme TOML file (default: built-in theme)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write stylesheet to file instead of stdout")
	cmd.Flags().StringVar(&opts.classPrefix, "class-prefix", css.DefaultClassPrefix, "class prefix for region selectors")
	cmd.Flags().StringSliceVarP(&opts.regions, "region", "r", nil, "restrict output to the named regions")

	return cmd
}

func (c *CLI) runCSS(opts *cssOpts) error {
	th, err := c.loadTheme(opts.themePath)
	if err != nil {
		return err
	}

	renderOpts := []css.StylesheetOption{css.WithClassPrefix(opts.classPrefix)}
	if len(opts.regions) > 0 {
		renderOpts = append(renderOpts, css.WithRegions(opts.regions...))
	}

	prog := newProgress(c.Logger)
	sheet, err := css.RenderStylesheet(th, renderOpts...)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered stylesheet for %d regions", len(th.Regions)))

	if opts.output == "" {
		fmt.Print(sheet)
		return nil
	}
	if err := os.WriteFile(opts.output, []byte(sheet), 0o644); err != nil {
		return err
	}
	printSuccess("Stylesheet written")
	printFile(opts.output)
	return nil
}
