// Package display renders the resolution report for the terminal.
package display

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/torsten-liermann/migrate-ejb2spring-sub004/pkg/fragment"
)

// Renderer writes the resolution report. Styling is enabled only when the
// destination is a terminal with a usable color profile.
type Renderer struct {
	out   io.Writer
	color bool

	header lipgloss.Style
	module lipgloss.Style
	root   lipgloss.Style
	muted  lipgloss.Style
	warn   lipgloss.Style
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	color := false
	if f, ok := out.(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			color = termenv.ColorProfile() != termenv.Ascii
		}
	}
	return &Renderer{
		out:    out,
		color:  color,
		header: lipgloss.NewStyle().Bold(true),
		module: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		root:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		muted:  lipgloss.NewStyle().Faint(true),
		warn:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// Report prints the per-module target decisions followed by any advisory
// diagnostics.
func (r *Renderer) Report(decisions map[string]string, diags []fragment.Diagnostic) {
	if len(decisions) == 0 {
		fmt.Fprintln(r.out, r.render(r.muted, "No placement needed."))
	} else {
		fmt.Fprintln(r.out, r.render(r.header, "Target source roots:"))
		for _, module := range sortedKeys(decisions) {
			name := module
			if name == "" {
				name = "<root>"
			}
			fmt.Fprintf(r.out, "  %s -> %s\n",
				r.render(r.module, name),
				r.render(r.root, decisions[module]))
		}
	}

	if len(diags) > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, r.render(r.header, "Diagnostics:"))
		for _, d := range diags {
			fmt.Fprintf(r.out, "  %s\n", r.render(r.warn, d.String()))
		}
	}
}

func (r *Renderer) render(style lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}

func sortedKeys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
