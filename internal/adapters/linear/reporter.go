// Package linear provides a line-oriented artifact reporter for terminals and CI logs.
package linear

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/ui/output"
	"go.trai.ch/kiln/internal/ui/style"
)

// Reporter implements ports.Reporter by printing one line per artifact.
type Reporter struct {
	output *termenv.Output

	kind    lipgloss.Style
	written lipgloss.Style
	skipped lipgloss.Style
}

// NewReporter creates a new Reporter writing to w. A nil w means stdout.
func NewReporter(w io.Writer) *Reporter {
	return NewReporterWithProfile(w, output.ColorProfileANSI)
}

// NewReporterWithProfile creates a new Reporter with a custom color profile selector.
func NewReporterWithProfile(w io.Writer, profileFn func() termenv.Profile) *Reporter {
	out := output.NewWithProfile(w, profileFn)

	renderer := lipgloss.NewRenderer(out)
	renderer.SetColorProfile(out.Profile)

	return &Reporter{
		output:  out,
		kind:    renderer.NewStyle().Width(style.KindColumnWidth),
		written: renderer.NewStyle().Foreground(style.Green),
		skipped: renderer.NewStyle().Foreground(style.Yellow),
	}
}

// Report prints the artifacts of report followed by a summary line.
func (r *Reporter) Report(report *domain.EmissionReport) {
	if report == nil {
		return
	}

	for _, a := range report.Artifacts {
		rel := relPath(report.OutputDir, a.Path)
		kind := r.kind.Render(a.Kind.String())

		switch a.Status {
		case domain.ArtifactSkipped:
			reason := r.output.String("skipped: " + a.Reason).Faint().String()
			_, _ = fmt.Fprintf(r.output, "%s %s %s %s\n", r.skipped.Render(style.Tilde), kind, rel, reason)
		default:
			size := r.output.String(fmt.Sprintf("(%d B)", a.Size)).Faint().String()
			_, _ = fmt.Fprintf(r.output, "%s %s %s %s\n", r.written.Render(style.Check), kind, rel, size)
		}
	}

	summary := fmt.Sprintf("Wrote %d artifact(s) to %s", report.Written(), report.OutputDir)
	if n := report.Skipped(); n > 0 {
		summary += fmt.Sprintf(", %d skipped", n)
	}
	_, _ = fmt.Fprintln(r.output, summary)
}

func relPath(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
