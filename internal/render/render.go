// Package render formats haiku for the terminal.
package render

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/verte-zerg/haiku/internal/model"
)

var (
	lineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6E6E6E")).
			Padding(1, 3)
)

// Plain returns the haiku as three newline-separated lines.
func Plain(h model.Haiku) string {
	return h.String()
}

// Styled centers the lines and draws a frame around them.
func Styled(h model.Haiku) string {
	lines := Center(h)
	for i, line := range lines {
		lines[i] = lineStyle.Render(line)
	}
	return frameStyle.Render(strings.Join(lines, "\n"))
}

// Center pads each line so all lines share the widest line's display width.
func Center(h model.Haiku) []string {
	texts := make([]string, 0, len(h.Lines))
	width := 0
	for _, l := range h.Lines {
		text := l.String()
		texts = append(texts, text)
		if w := runewidth.StringWidth(text); w > width {
			width = w
		}
	}
	for i, text := range texts {
		gap := width - runewidth.StringWidth(text)
		left := gap / 2
		texts[i] = strings.Repeat(" ", left) + text + strings.Repeat(" ", gap-left)
	}
	return texts
}

// ShouldStyle reports whether styled output suits w.
func ShouldStyle(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
