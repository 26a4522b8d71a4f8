package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/born-ml/strided/internal/layout"
	"github.com/born-ml/strided/internal/plan"
)

var (
	keyStyle   = lipgloss.NewStyle().Bold(true).Width(12)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	mutedStyle = lipgloss.NewStyle().Faint(true)
)

// renderReport formats a report as aligned key/value lines.
func renderReport(r report) string {
	contiguous := warnStyle.Render("no")
	if r.Contiguous {
		contiguous = okStyle.Render("yes")
	}

	pairs := make([]string, len(r.Mergeable))
	for i, p := range r.Mergeable {
		pairs[i] = fmt.Sprintf("%d-%d", p[0], p[1])
	}
	mergeable := mutedStyle.Render("none")
	if len(pairs) > 0 {
		mergeable = strings.Join(pairs, " ")
	}

	span := fmt.Sprintf("[%d, %d) %d units", r.Span[0], r.Span[1], r.Span[1]-r.Span[0])
	if r.SpanBytes > 0 {
		span += fmt.Sprintf(", %d bytes", r.SpanBytes)
	}

	rows := []string{
		row("layout", formatTuple(r.Layout)),
		row("rank", fmt.Sprint(r.Rank)),
		row("elements", fmt.Sprint(r.Elements)),
		row("span", span),
		row("contiguous", contiguous),
		row("mergeable", mergeable),
		row("canonical", formatTuple(r.Canonical)),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderStep formats one line of a plan trace.
func renderStep(label string, l layout.Layout) string {
	return row(label, l.String())
}

func row(key, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(key), value)
}

func formatTuple(t plan.Tuple) string {
	return fmt.Sprintf("extents %v strides %v offset %d", t.Extents, t.Strides, t.Offset)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
