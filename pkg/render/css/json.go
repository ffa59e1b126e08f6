package css

import (
	"encoding/json"

	"github.com/matzehuels/gridframe/pkg/breakpoint"
	"github.com/matzehuels/gridframe/pkg/grid"
)

type jsonOutput struct {
	Region     string     `json:"region"`
	Breakpoint string     `json:"breakpoint"`
	Columns    int        `json:"columns"`
	Gap        string     `json:"gap"`
	Span       string     `json:"span,omitempty"`
	Lines      []jsonLine `json:"lines"`
	Template   string     `json:"template"`
}

type jsonLine struct {
	Name string `json:"name"`
	Size string `json:"size,omitempty"`
}

// RenderJSON exports one resolved region as a pretty-printed JSON document:
// the resolved structural values, the ordered line list (name-only lines
// have no size field), and the joined template value. This is the data
// interchange format used by the dev server's region endpoint.
func RenderJSON(region string, bp breakpoint.Breakpoint, res grid.Result) ([]byte, error) {
	out := jsonOutput{
		Region:     region,
		Breakpoint: string(bp),
		Columns:    res.Columns,
		Gap:        res.Gap,
		Span:       res.Span,
		Lines:      make([]jsonLine, len(res.Template)),
		Template:   TemplateValue(res.Template),
	}
	for i, l := range res.Template {
		out.Lines[i] = jsonLine{Name: l.Name, Size: l.Size}
	}
	return json.MarshalIndent(out, "", "  ")
}
