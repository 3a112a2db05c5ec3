package diag

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorError = lipgloss.Color("#EF4444")
	colorLabel = lipgloss.Color("#06B6D4")
	colorMuted = lipgloss.Color("#94A3B8")
)

// styles is bound to one renderer so that color detection follows the
// destination writer instead of stdout.
type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	cause lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().Foreground(colorError).Bold(true),
		label: r.NewStyle().Foreground(colorLabel).Width(8),
		value: r.NewStyle().Foreground(colorMuted),
		cause: r.NewStyle().Foreground(colorError),
	}
}

// Render writes a human readable report of err to w. A *LineError anywhere in
// the chain produces the full LineNo/Line/State/Error block; any other error
// is reported on its own. Colors are only emitted when w is a terminal.
func Render(w io.Writer, err error) error {
	if err == nil {
		return nil
	}
	s := newStyles(lipgloss.NewRenderer(w))

	var b strings.Builder
	b.WriteString(s.title.Render("Error Parsing File"))
	b.WriteByte('\n')

	var lineErr *LineError
	if errors.As(err, &lineErr) {
		row(&b, s, "LineNo", s.value.Render(strconv.Itoa(lineErr.Line)))
		row(&b, s, "Line", s.value.Render(lineErr.Text))
		row(&b, s, "State", s.value.Render(lineErr.State.String()))
		row(&b, s, "Error", s.cause.Render(lineErr.Err.Error()))
	} else {
		row(&b, s, "Error", s.cause.Render(err.Error()))
	}

	_, werr := io.WriteString(w, b.String())
	if werr != nil {
		return fmt.Errorf("writing diagnostic: %w", werr)
	}
	return nil
}

func row(b *strings.Builder, s styles, label, value string) {
	b.WriteString("  ")
	b.WriteString(s.label.Render(label))
	b.WriteString(value)
	b.WriteByte('\n')
}
