package progrock

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/vito/progrock"
	"go.trai.ch/kiln/internal/ui/output"
	"go.trai.ch/kiln/internal/ui/style"
)

// Trace is a progrock.Writer that prints each vertex once it finishes or is
// cached, followed by the log output recorded for it.
type Trace struct {
	mu     sync.Mutex
	output *termenv.Output

	logs    map[string][]*progrock.VertexLog
	printed map[string]struct{}

	name   lipgloss.Style
	done   lipgloss.Style
	failed lipgloss.Style
	cached lipgloss.Style
	warn   lipgloss.Style
	detail lipgloss.Style
}

var _ progrock.Writer = (*Trace)(nil)

// NewTrace creates a new Trace writing to w.
func NewTrace(w io.Writer) *Trace {
	return NewTraceWithProfile(w, output.ColorProfileANSI)
}

// NewTraceWithProfile creates a new Trace with a custom color profile selector.
func NewTraceWithProfile(w io.Writer, profileFn func() termenv.Profile) *Trace {
	out := output.NewWithProfile(w, profileFn)

	renderer := lipgloss.NewRenderer(out)
	renderer.SetColorProfile(out.Profile)

	return &Trace{
		output:  out,
		logs:    make(map[string][]*progrock.VertexLog),
		printed: make(map[string]struct{}),
		name:    renderer.NewStyle().Foreground(style.Ember),
		done:    renderer.NewStyle().Foreground(style.Green),
		failed:  renderer.NewStyle().Foreground(style.Red),
		cached:  renderer.NewStyle().Foreground(style.Yellow),
		warn:    renderer.NewStyle().Foreground(style.Yellow),
		detail:  renderer.NewStyle().Foreground(style.Slate),
	}
}

// WriteStatus buffers vertex logs and prints vertices as they finish.
func (t *Trace) WriteStatus(status *progrock.StatusUpdate) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, l := range status.Logs {
		if _, ok := t.printed[l.Vertex]; ok {
			continue
		}
		t.logs[l.Vertex] = append(t.logs[l.Vertex], l)
	}

	for _, v := range status.Vertexes {
		if v.Completed == nil && !v.Cached {
			continue
		}
		if _, ok := t.printed[v.Id]; ok {
			continue
		}
		t.printed[v.Id] = struct{}{}
		if err := t.print(v); err != nil {
			return err
		}
	}
	return nil
}

func (t *Trace) print(v *progrock.Vertex) error {
	defer delete(t.logs, v.Id)

	icon := t.done.Render(style.Check)
	var suffix string
	switch {
	case v.Error != nil:
		icon = t.failed.Render(style.Cross)
		suffix = ": " + t.failed.Render(*v.Error)
	case v.Canceled:
		icon = t.failed.Render(style.Cross)
		suffix = ": canceled"
	case v.Cached:
		icon = t.cached.Render(style.Tilde)
	}

	if _, err := fmt.Fprintf(t.output, "%s %s%s\n", icon, t.name.Render(v.Name), suffix); err != nil {
		return err
	}

	for _, l := range t.logs[v.Id] {
		marker := " "
		if l.Stream == progrock.LogStream_STDERR {
			marker = t.warn.Render(style.Warning)
		}
		for _, line := range strings.Split(strings.TrimRight(string(l.Data), "\n"), "\n") {
			if _, err := fmt.Fprintf(t.output, "  %s %s\n", marker, t.detail.Render(line)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Close releases buffered logs of vertices that never finished.
func (t *Trace) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.logs)
	return nil
}
