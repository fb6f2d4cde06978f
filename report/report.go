// Package report renders benchmark results as plain text blocks.
//
// Output written to a color terminal gets a styled header and algorithm
// names; anything else (pipes, files, buffers, NO_COLOR) is plain text.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"pingcap/talentplan/tidb/sortbench/dataset"
	"pingcap/talentplan/tidb/sortbench/harness"
)

// Entry is one measured dataset.
type Entry struct {
	Kind        dataset.Kind
	Measurement harness.Measurement
}

// Series holds the entries of one algorithm, in dataset order.
type Series struct {
	Algorithm string
	Entries   []Entry
}

// Block holds every series measured at one input size.
type Block struct {
	Size   int
	Series []Series
}

// ColorProfile picks the color profile for w: ASCII unless w is a terminal,
// in which case NO_COLOR and CLICOLOR_FORCE are honoured.
func ColorProfile(w io.Writer) termenv.Profile {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}

// Printer writes blocks to a writer.
type Printer struct {
	w         io.Writer
	header    lipgloss.Style
	algorithm lipgloss.Style
}

// NewPrinter returns a Printer for w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(ColorProfile(w))
	return &Printer{
		w:         w,
		header:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		algorithm: r.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
	}
}

// WriteBlock writes b preceded by a blank line.
func (p *Printer) WriteBlock(b Block) error {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(p.header.Render(fmt.Sprintf("Results for size %d:", b.Size)))
	sb.WriteString("\n")
	for _, s := range b.Series {
		sb.WriteString(p.algorithm.Render(s.Algorithm + ":"))
		sb.WriteString("\n")
		for _, e := range s.Entries {
			fmt.Fprintf(&sb, "  %s: Time = %.3f ms, Memory = %.3f KB\n",
				e.Kind, e.Measurement.Millis(), e.Measurement.KB())
		}
	}
	_, err := io.WriteString(p.w, sb.String())
	return err
}
