// Package cli implements the gridframe command-line interface.
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridframe/pkg/buildinfo"
	"github.com/matzehuels/gridframe/pkg/pipeline"
	"github.com/matzehuels/gridframe/pkg/theme"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display and class prefixes.
	appName = "gridframe"

	// defaultAddr is the default listen address for the dev server.
	defaultAddr = "localhost:8417"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "gridframe",
		Short:        "Gridframe generates responsive CSS grid layouts from a theme",
		Long:         `Gridframe is a CLI tool for generating named-line CSS grid templates from a theme definition: breakpoints, gap and column scales, and region spans resolve into grid-template-columns values, full stylesheets, and subgrid placements.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.cssCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner loads the theme and creates a pipeline runner for CLI use.
// An empty path selects the built-in default theme.
func (c *CLI) newRunner(themePath string) (*pipeline.Runner, error) {
	th, err := c.loadTheme(themePath)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(th, c.Logger), nil
}

// loadTheme reads a theme from the given TOML file, or returns the built-in
// default theme when the path is empty.
func (c *CLI) loadTheme(path string) (*theme.Theme, error) {
	if path == "" {
		c.Logger.Debug("Using built-in default theme")
		return theme.Default(), nil
	}
	th, err := theme.Load(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("Loaded theme %s: %d breakpoints, %d regions", path, len(th.Breakpoints), len(th.Regions))
	return th, nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatCSS}
	}
	return strings.Split(s, ",")
}
