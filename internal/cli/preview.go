package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridframe/pkg/breakpoint"
	"github.com/matzehuels/gridframe/pkg/theme"
)

// cellPx approximates one terminal cell as a number of CSS pixels so the
// preview's detected breakpoint tracks the terminal width like a browser
// viewport would.
const cellPx = 10

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	themePath string // theme TOML file (empty = built-in default)
}

// previewCommand creates the preview command for the interactive terminal UI.
func (c *CLI) previewCommand() *cobra.Command {
	var opts previewOpts

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the layout interactively",
		Long:  `Open an interactive preview that resolves regions live: resizing the terminal moves through the breakpoint scale the way resizing a browser window would.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := c.loadTheme(opts.themePath)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(newPreviewModel(th), tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.themePath, "theme", "t", "", "theme TOML file (default: built-in theme)")

	return cmd
}

// =============================================================================
// PreviewModel - Live layout preview
// =============================================================================

// previewModel is the bubbletea model for the layout preview. The viewport
// width is derived from the terminal width unless the user pins a breakpoint
// with the left/right keys.
type previewModel struct {
	theme    *theme.Theme
	regions  []string
	order    breakpoint.Sequence
	cursor   int // selected region
	pinned   int // index into order, or -1 to follow the terminal width
	termCols int
}

func newPreviewModel(th *theme.Theme) previewModel {
	return previewModel{
		theme:   th,
		regions: th.RegionNames(),
		order:   th.Order(),
		pinned:  -1,
	}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.regions)-1 {
				m.cursor++
			}
		case "left", "h":
			if m.pinned == -1 {
				m.pinned = m.detectedIndex()
			}
			if m.pinned > 0 {
				m.pinned--
			}
		case "right", "l":
			if m.pinned == -1 {
				m.pinned = m.detectedIndex()
			}
			if m.pinned < len(m.order)-1 {
				m.pinned++
			}
		case "a":
			m.pinned = -1
		}
	case tea.WindowSizeMsg:
		m.termCols = msg.Width
	}
	return m, nil
}

// current returns the breakpoint the preview is showing.
func (m previewModel) current() breakpoint.Breakpoint {
	if m.pinned >= 0 {
		return m.order[m.pinned]
	}
	return m.order[m.detectedIndex()]
}

// detectedIndex maps the terminal width to a breakpoint index.
func (m previewModel) detectedIndex() int {
	bp := m.theme.Detect(m.termCols * cellPx)
	if i := m.order.Index(bp); i >= 0 {
		return i
	}
	return 0
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Gridframe Preview"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ region  ←/→ pin breakpoint  a auto  q quit"))
	b.WriteString("\n\n")

	bp := m.current()
	mode := "auto"
	if m.pinned >= 0 {
		mode = "pinned"
	}
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		StyleHighlight.Render(string(bp)),
		StyleDim.Render(fmt.Sprintf("(%s, ≥%dpx)", mode, m.theme.MinWidth(bp))),
		StyleDim.Render(fmt.Sprintf("viewport ~%dpx", m.termCols*cellPx))))

	if len(m.regions) == 0 {
		b.WriteString("\n" + StyleWarning.Render("theme has no regions") + "\n")
		return b.String()
	}

	for i, name := range m.regions {
		marker := "  "
		style := StyleDim
		if i == m.cursor {
			marker = "▸ "
			style = StyleValue
		}
		b.WriteString(marker + style.Render(name))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	name := m.regions[m.cursor]
	res, err := m.theme.ResolveRegion(name, bp)
	if err != nil {
		b.WriteString(StyleWarning.Render(err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%s %s",
		StyleDim.Render("columns"), StyleNumber.Render(fmt.Sprintf("%d", res.Columns))))
	if res.Gap != "" {
		b.WriteString(fmt.Sprintf("  %s %s", StyleDim.Render("gap"), StyleValue.Render(res.Gap)))
	}
	if res.Span != "" {
		b.WriteString(fmt.Sprintf("  %s %s", StyleDim.Render("grid-column"), StyleValue.Render(res.Span)))
	}
	b.WriteString("\n")
	b.WriteString(lineTable(res.Template))
	b.WriteString("\n")

	return b.String()
}
