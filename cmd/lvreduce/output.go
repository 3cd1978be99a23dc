package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/lvreduce/coloring"
	"github.com/katalvlaran/lvreduce/config"
	converters "github.com/katalvlaran/lvreduce/converterts"
)

// printer renders reports as text, with colored swatches when enabled.
type printer struct {
	palette  coloring.Palette
	renderer *lipgloss.Renderer
	styled   bool
	title    lipgloss.Style
}

func newPrinter(w io.Writer, cfg config.Config) *printer {
	p := &printer{palette: coloring.Palette(cfg.Palette), renderer: lipgloss.NewRenderer(w)}
	switch cfg.Color {
	case "always":
		p.styled = true
		p.renderer.SetColorProfile(termenv.TrueColor)
	case "auto":
		p.styled = isTerminal(w)
	}
	p.title = p.renderer.NewStyle().Bold(p.styled)

	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// swatch renders "id" on the background of its color's hue.
func (p *printer) swatch(id string, color int) string {
	hex := p.palette.Hex(color)
	if !p.styled || hex == "" {
		return id
	}

	return p.renderer.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color("#000000")).
		Padding(0, 1).
		Render(id)
}

func writeReports(w io.Writer, opts *cliOptions, p *printer, reports []report) error {
	if opts.jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	var b strings.Builder
	for i, r := range reports {
		if i > 0 {
			b.WriteString("\n")
		}
		if opts.dotOut {
			b.WriteString(converters.DOT(r.Name, r.graph, coloring.Coloring(r.Coloring), p.palette))
			continue
		}
		p.render(&b, r)
	}
	_, err := io.WriteString(w, b.String())

	return err
}

func (p *printer) render(b *strings.Builder, r report) {
	fmt.Fprintln(b, p.title.Render(fmt.Sprintf("%s: %s", r.Name, r.Kind)))

	for _, st := range r.Steps {
		if st.Stale {
			fmt.Fprintf(b, "  step %d: (%s,%s) skipped\n", st.Step, st.U, st.V)
			continue
		}
		fmt.Fprintf(b, "  step %d: (%s,%s) -> %s\n", st.Step, st.U, st.V, st.Merged)
	}
	if r.Session != "" {
		fmt.Fprintf(b, "  reduced: %s\n", r.Reduced)
		if r.Pending > 0 {
			fmt.Fprintf(b, "  %d friend pairs still pending\n", r.Pending)
		}
	}
	if r.Coloring != nil {
		for _, id := range r.Vertices {
			c := r.Coloring[id]
			fmt.Fprintf(b, "  %s color %d %s\n", p.swatch(id, c), c, p.palette.Hex(c))
		}
		fmt.Fprintf(b, "  %d colors\n", r.Colors)
		if r.Components > 1 {
			fmt.Fprintf(b, "  %d connected components\n", r.Components)
		}
	}
	for _, m := range r.Messages {
		fmt.Fprintf(b, "  %s\n", m)
	}
}
