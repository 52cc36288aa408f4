// Package tui provides the Bubble Tea haiku viewer.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/haiku/internal/model"
	"github.com/verte-zerg/haiku/internal/render"
)

// Source produces one haiku per call.
type Source interface {
	Haiku(ctx context.Context) (model.Haiku, error)
}

type haikuMsg struct {
	haiku model.Haiku
	err   error
}

// Model implements the Bubble Tea haiku viewer.
type Model struct {
	ctx    context.Context
	source Source

	spinner    spinner.Model
	generating bool
	haiku      model.Haiku
	hasHaiku   bool
	err        error
	generated  int
	failed     int

	width  int
	height int
}

var (
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// NewModel constructs a viewer that pulls haiku from source.
func NewModel(ctx context.Context, source Source) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = pendingStyle
	return &Model{
		ctx:     ctx,
		source:  source,
		spinner: sp,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "n", " ", "enter":
			return m, m.next()
		default:
			return m, nil
		}
	case haikuMsg:
		m.generating = false
		if msg.err != nil {
			m.err = msg.err
			m.failed++
			return m, nil
		}
		m.err = nil
		m.haiku = msg.haiku
		m.hasHaiku = true
		m.generated++
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

// next starts one generation unless one is already running.
func (m *Model) next() tea.Cmd {
	if m.generating {
		return nil
	}
	m.generating = true
	ctx, source := m.ctx, m.source
	return func() tea.Msg {
		h, err := source.Haiku(ctx)
		return haikuMsg{haiku: h, err: err}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	content := m.renderContent()
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return content + "\n\n" + footer
	}
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderContent() string {
	switch {
	case m.generating:
		return m.spinner.View() + pendingStyle.Render(" listening for words...")
	case m.err != nil:
		return errorStyle.Render(fmt.Sprintf("failed to generate haiku: %v", m.err))
	case m.hasHaiku:
		return render.Styled(m.haiku)
	default:
		return ""
	}
}

func (m *Model) renderFooter() string {
	segments := []string{"n next", "q quit", fmt.Sprintf("Generated %d", m.generated)}
	if m.failed > 0 {
		segments = append(segments, fmt.Sprintf("Failed %d", m.failed))
	}
	return footerStyle.Render(strings.Join(segments, "  ·  "))
}
