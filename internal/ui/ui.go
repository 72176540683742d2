// Package ui renders research results for the terminal. Styled output
// is used on a TTY; plain text otherwise so piped output stays clean.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/lexafrica/lexsearch/internal/research"
)

// Color palette.
const (
	colorAccent = "75"  // steel blue for headers and scores
	colorGray   = "245" // secondary text
	colorYellow = "220" // warnings / degraded notices
)

// Renderer writes formatted research output.
type Renderer struct {
	out    io.Writer
	styled bool

	header lipgloss.Style
	label  lipgloss.Style
	warn   lipgloss.Style
}

// New creates a renderer for the writer. Styling is enabled only when
// the writer is a terminal.
func New(out io.Writer) *Renderer {
	r := &Renderer{out: out, styled: isTerminal(out)}
	r.header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent))
	r.label = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray))
	r.warn = lipgloss.NewStyle().Foreground(lipgloss.Color(colorYellow))
	return r
}

// Result renders a full research result.
func (r *Renderer) Result(res *research.ResearchResult) {
	r.heading(fmt.Sprintf("Research results (%d documents, confidence %.2f)",
		len(res.Documents), res.OverallConfidence))
	if res.CacheHit {
		r.note("served from cache")
	}

	for i, d := range res.Documents {
		fmt.Fprintf(r.out, "%2d. %s\n", i+1, d.Title)
		r.line(fmt.Sprintf("    %s · %s · %s · relevance %.2f",
			d.Jurisdiction, d.DocumentType, d.PublicationDate.Format("2006"), d.RelevanceScore))
	}

	if len(res.Citations) > 0 {
		r.heading("Citations")
		for _, c := range res.Citations {
			fmt.Fprintf(r.out, "  %s\n", c.LongForm)
		}
	}

	if len(res.Precedents) > 0 {
		r.heading("Precedents")
		for _, p := range res.Precedents {
			fmt.Fprintf(r.out, "  %s - %s (%s)\n", p.CaseName, p.Principle, strings.ToLower(string(p.BindingLevel)))
		}
	}

	if res.Analysis != nil {
		r.heading("Analysis")
		if res.Analysis.Summary != "" {
			fmt.Fprintln(r.out, res.Analysis.Summary)
		}
		for _, l := range res.Analysis.Limitations {
			r.note("limitation: " + l)
		}
	}

	if len(res.Suggestions) > 0 {
		r.heading("Suggestions")
		for _, s := range res.Suggestions {
			fmt.Fprintf(r.out, "  - %s\n", s)
		}
	}
}

// Sources renders the source registry listing.
func (r *Renderer) Sources(sources []research.SourceDescriptor) {
	r.heading(fmt.Sprintf("Registered sources (%d)", len(sources)))
	for _, s := range sources {
		fmt.Fprintf(r.out, "  %-14s tier %d  %s (%s)\n",
			s.Jurisdiction, s.CredibilityTier, s.Name, strings.Join(s.Capabilities, ", "))
	}
}

func (r *Renderer) heading(text string) {
	if r.styled {
		fmt.Fprintln(r.out, r.header.Render(text))
		return
	}
	fmt.Fprintln(r.out, text)
}

func (r *Renderer) line(text string) {
	if r.styled {
		fmt.Fprintln(r.out, r.label.Render(text))
		return
	}
	fmt.Fprintln(r.out, text)
}

func (r *Renderer) note(text string) {
	if r.styled {
		fmt.Fprintln(r.out, r.warn.Render(text))
		return
	}
	fmt.Fprintln(r.out, text)
}

func isTerminal(out io.Writer) bool {
	if f, ok := out.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}
